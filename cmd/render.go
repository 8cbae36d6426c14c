package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizpack/internal/catalog"
	"github.com/abhisek/quizpack/internal/grading"
	"github.com/abhisek/quizpack/internal/ui/theme"
)

func printPacketList(w io.Writer, cat *catalog.Catalog) {
	fmt.Fprintf(w, "%-20s  %-30s  %s\n", "Key", "Name", "Questions")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	for _, key := range cat.Keys() {
		p, err := cat.Packet(key)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s  %-30s  %d\n", theme.Key.Render(fmt.Sprintf("%-20s", key)), p.Name, len(p.Questions))
	}
	fmt.Fprintf(w, "\n%d packets\n", cat.Len())
}

func printPacket(w io.Writer, key string, p catalog.Packet) {
	fmt.Fprintln(w, theme.Title.Render(p.Name)+" "+theme.Dim.Render("("+key+")"))
	for i, q := range p.Questions {
		fmt.Fprintf(w, "\n%d. %s\n", i, q.Text)
		printAnswer(w, q)
	}
}

func printAnswer(w io.Writer, q catalog.Question) {
	switch q.Kind {
	case catalog.KindMultipleChoice:
		for i, alt := range q.Alternatives {
			if i == q.CorrectAnswerIndex {
				fmt.Fprintf(w, "   %s %s\n", theme.Correct.Render("*"), theme.Correct.Render(alt))
				continue
			}
			fmt.Fprintf(w, "   %s %s\n", theme.Dim.Render("-"), alt)
		}
	default:
		fmt.Fprintf(w, "   %s %s\n", theme.Dim.Render("answer:"), theme.Correct.Render(q.CorrectAnswer))
	}
}

func printVerdict(w io.Writer, v grading.Verdict) {
	if v.Correct {
		fmt.Fprintln(w, theme.Correct.Render(v.Message))
		return
	}
	fmt.Fprintln(w, theme.Incorrect.Render(v.Message))
}
