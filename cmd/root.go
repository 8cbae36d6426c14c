package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/abhisek/quizpack/internal/config"
	"github.com/abhisek/quizpack/internal/grading"
	"github.com/abhisek/quizpack/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// cli carries state shared by every command of one invocation.
type cli struct {
	cfg    *config.Config
	logger *zap.Logger
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "quizpack",
		Short: "Quiz packet service",
		Long: `quizpack serves a catalog of exercise packets over HTTP and checks
submitted answers against each question's correct answer.

Run without a subcommand to start the server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", os.Getenv("QUIZPACK_CONFIG"), "Path to YAML config file (default $QUIZPACK_CONFIG)")
	pf.String("catalog", "", "Path to YAML/JSON catalog file (overrides QUIZPACK_CATALOG; default built-in catalog)")
	pf.String("db", "", "Path to SQLite attempt log (overrides QUIZPACK_DB; empty disables the log)")
	pf.BoolP("verbose", "v", false, "Enable debug logging")
	addServeFlags(root)

	root.AddCommand(newServeCmd(c))
	root.AddCommand(newPacketsCmd(c))
	root.AddCommand(newCheckCmd(c))
	root.AddCommand(newCatalogCmd(c))
	root.AddCommand(newAttemptsCmd(c))
	root.AddCommand(newVersionCmd())
	return root
}

// setup loads configuration, applies flag overrides and builds the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath, _ = flags.GetString("catalog")
	}
	if flags.Changed("db") {
		cfg.DBPath, _ = flags.GetString("db")
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	c.cfg = cfg

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	c.logger = logger
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// loadCatalog returns the configured catalog file, or the built-in one.
func (c *cli) loadCatalog() (*catalog.Catalog, error) {
	if c.cfg.CatalogPath == "" {
		return catalog.Build(), nil
	}
	cat, err := catalog.LoadFile(c.cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func (c *cli) evaluator() grading.Evaluator {
	return grading.Evaluator{Normalize: c.cfg.Answers.Normalize}
}

// openStore opens the attempt log. It returns nil when none is configured.
func (c *cli) openStore() (*store.Store, error) {
	if c.cfg.DBPath == "" {
		return nil, nil
	}
	st, err := store.Open(c.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}
