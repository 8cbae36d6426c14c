// Package grading decides whether a submitted answer matches a question.
package grading

import (
	"strings"

	"github.com/abhisek/quizpack/internal/catalog"
)

// CorrectMessage is the verdict message for a correct answer.
const CorrectMessage = "Correct!"

// Verdict is the outcome of evaluating one submitted answer.
type Verdict struct {
	Correct bool   `json:"correct"`
	Message string `json:"message"`
}

// Evaluator compares submitted answers against questions.
// The zero value compares exactly. It is safe for concurrent use.
type Evaluator struct {
	// Normalize trims surrounding whitespace and ignores case before
	// comparing.
	Normalize bool
}

// Evaluate checks answer against q using exact comparison.
func Evaluate(q catalog.Question, answer string) Verdict {
	return Evaluator{}.Evaluate(q, answer)
}

// Evaluate checks answer against q.
//
// Free-text questions compare against the correct answer. Multiple-choice
// questions compare against the text of the correct alternative; the
// submission is the alternative's text, not its index.
func (e Evaluator) Evaluate(q catalog.Question, answer string) Verdict {
	want := q.Answer()
	if e.match(answer, want) {
		return Verdict{Correct: true, Message: CorrectMessage}
	}
	return Verdict{Correct: false, Message: "Wrong! The correct answer is: " + want}
}

func (e Evaluator) match(got, want string) bool {
	if want == "" {
		return false
	}
	if e.Normalize {
		return strings.EqualFold(strings.TrimSpace(got), strings.TrimSpace(want))
	}
	return got == want
}
