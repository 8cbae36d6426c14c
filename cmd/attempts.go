package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizpack/internal/ui/theme"
	"github.com/spf13/cobra"
)

func newAttemptsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "List recent answer submissions from the attempt log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			st, err := c.openStore()
			if err != nil {
				return err
			}
			if st == nil {
				return errors.New("no attempt log configured: set --db or QUIZPACK_DB")
			}
			defer st.Close()

			attempts, err := st.AttemptRepo().Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("query attempts: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(attempts) == 0 {
				fmt.Fprintln(out, "No attempts found.")
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-19s  %-20s  %5s  %-2s  %s\n",
				"Seq", "Timestamp", "Packet", "Index", "OK", "Answer")
			fmt.Fprintln(out, strings.Repeat("─", 80))
			for _, a := range attempts {
				ok := theme.Correct.Render("✓")
				if !a.Correct {
					ok = theme.Incorrect.Render("✗")
				}
				packet := a.PacketKey
				if len(packet) > 20 {
					packet = packet[:17] + "..."
				}
				fmt.Fprintf(out, "%-6d  %-19s  %-20s  %5d  %s   %s\n",
					a.Sequence, a.Timestamp.Local().Format("2006-01-02 15:04:05"),
					packet, a.QuestionIndex, ok, a.Answer)
			}
			fmt.Fprintf(out, "\n%d attempts\n", len(attempts))
			return nil
		},
	}
	cmd.Flags().Int("limit", 20, "Maximum attempts to show (0 = all)")
	return cmd
}
