package cmd

import (
	"fmt"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/spf13/cobra"
)

func newCatalogCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file>",
		Short: "Check a catalog file against the schema and question rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			questions := 0
			for _, key := range cat.Keys() {
				p, _ := cat.Packet(key)
				questions += len(p.Questions)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d packets, %d questions)\n", args[0], cat.Len(), questions)
			return nil
		},
	})
	return cmd
}
