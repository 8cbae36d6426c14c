package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/quizpack/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd)
		},
	}
	addServeFlags(cmd)
	return cmd
}

func addServeFlags(cmd *cobra.Command) {
	cmd.Flags().String("addr", "", "Listen address (overrides PORT and QUIZPACK_ADDR; default :8000)")
}

// runServe builds the catalog and optional attempt log, then serves until
// SIGINT or SIGTERM.
func (c *cli) runServe(cmd *cobra.Command) error {
	cat, err := c.loadCatalog()
	if err != nil {
		return err
	}

	opts := server.Options{
		Catalog:   cat,
		Evaluator: c.evaluator(),
		Logger:    c.logger,
	}

	st, err := c.openStore()
	if err != nil {
		return err
	}
	if st != nil {
		defer st.Close()
		opts.Attempts = st.AttemptRepo()
		c.logger.Info("attempt log enabled", zap.String("db", c.cfg.DBPath))
	}

	srv, err := server.New(opts)
	if err != nil {
		return fmt.Errorf("build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx, c.cfg.Addr, c.cfg.ShutdownTimeout)
}
