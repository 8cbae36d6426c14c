package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError lists every structural defect found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validatePackets performs all structural checks on the given packet set.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validatePackets(packets map[string]Packet) error {
	var errs []string

	// Walk keys in order so the report is stable.
	keys := make([]string, 0, len(packets))
	for key := range packets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		p := packets[key]
		if strings.TrimSpace(key) == "" {
			errs = append(errs, "packet key is empty")
		}
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("packet %q: name is empty", key))
		}
		for i, q := range p.Questions {
			prefix := fmt.Sprintf("packet %q question %d", key, i)
			for _, msg := range validateQuestion(q) {
				errs = append(errs, prefix+": "+msg)
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateQuestion(q Question) []string {
	var errs []string
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, "text is empty")
	}

	switch q.Kind {
	case KindFreeText:
		if q.CorrectAnswer == "" {
			errs = append(errs, "correct_answer is empty")
		}
	case KindMultipleChoice:
		if len(q.Alternatives) != AlternativeCount {
			errs = append(errs, fmt.Sprintf("alternatives must have %d entries, got %d", AlternativeCount, len(q.Alternatives)))
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Alternatives) {
			errs = append(errs, fmt.Sprintf("correct_answer_index %d out of range [0,%d)", q.CorrectAnswerIndex, len(q.Alternatives)))
		}
		for i, alt := range q.Alternatives {
			if alt == "" {
				errs = append(errs, fmt.Sprintf("alternative %d is empty", i))
			}
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown kind %q", q.Kind))
	}
	return errs
}
