package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/spf13/cobra"
)

func newPacketsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "packets [key]",
		Short: "List packets, or show one packet with its questions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				printPacketList(out, cat)
				return nil
			}

			p, err := cat.Packet(args[0])
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("packet %q not found", args[0])
			}
			if err != nil {
				return err
			}
			printPacket(out, args[0], p)
			return nil
		},
	}
}

func newCheckCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "check <key> <index> <answer>",
		Short: "Check an answer against a question without the server",
		Long: `Check an answer against a question without the server.

Arguments that start with "-" must follow "--", e.g.

  quizpack check -- math -1 4`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, answer := args[0], args[2]
			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid question index %q", args[1])
			}

			cat, err := c.loadCatalog()
			if err != nil {
				return err
			}
			q, err := cat.Question(key, index)
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("question %s/%d not found", key, index)
			}
			if err != nil {
				return err
			}

			printVerdict(cmd.OutOrStdout(), c.evaluator().Evaluate(q, answer))
			return nil
		},
	}
}
