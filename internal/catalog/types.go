package catalog

import (
	"encoding/json"
	"fmt"
)

// Kind identifies which answer representation a question uses.
type Kind string

const (
	// KindFreeText questions carry a single correct answer string.
	KindFreeText Kind = "free_text"

	// KindMultipleChoice questions carry 4 alternatives and the index
	// of the correct one.
	KindMultipleChoice Kind = "multiple_choice"
)

// AlternativeCount is the number of alternatives a multiple-choice
// question must have.
const AlternativeCount = 4

// Question is a single quiz prompt. Kind selects which answer fields are
// meaningful: CorrectAnswer for free-text, Alternatives and
// CorrectAnswerIndex for multiple-choice.
type Question struct {
	Text               string
	Kind               Kind
	CorrectAnswer      string
	Alternatives       []string
	CorrectAnswerIndex int
}

// FreeText returns a free-text question.
func FreeText(text, answer string) Question {
	return Question{Text: text, Kind: KindFreeText, CorrectAnswer: answer}
}

// MultipleChoice returns a multiple-choice question.
func MultipleChoice(text string, alternatives []string, correctIndex int) Question {
	return Question{
		Text:               text,
		Kind:               KindMultipleChoice,
		Alternatives:       alternatives,
		CorrectAnswerIndex: correctIndex,
	}
}

// Answer returns the canonical correct answer text. For multiple choice
// this is the text of the correct alternative. An invalid index yields "".
func (q Question) Answer() string {
	if q.Kind == KindMultipleChoice {
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Alternatives) {
			return ""
		}
		return q.Alternatives[q.CorrectAnswerIndex]
	}
	return q.CorrectAnswer
}

func (q Question) clone() Question {
	if q.Alternatives != nil {
		q.Alternatives = append([]string(nil), q.Alternatives...)
	}
	return q
}

type freeTextWire struct {
	Text          string `json:"text"`
	CorrectAnswer string `json:"correct_answer"`
}

type multipleChoiceWire struct {
	Text               string   `json:"text"`
	Alternatives       []string `json:"alternatives"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

// questionWire is the union used for decoding; the kind is inferred from
// the presence of alternatives.
type questionWire struct {
	Text               string   `json:"text"`
	CorrectAnswer      string   `json:"correct_answer"`
	Alternatives       []string `json:"alternatives"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
}

func (w questionWire) question() Question {
	if w.Alternatives != nil {
		return MultipleChoice(w.Text, w.Alternatives, w.CorrectAnswerIndex)
	}
	return FreeText(w.Text, w.CorrectAnswer)
}

// MarshalJSON encodes the question in the wire shape of its kind.
func (q Question) MarshalJSON() ([]byte, error) {
	switch q.Kind {
	case KindFreeText:
		return json.Marshal(freeTextWire{Text: q.Text, CorrectAnswer: q.CorrectAnswer})
	case KindMultipleChoice:
		alts := q.Alternatives
		if alts == nil {
			alts = []string{}
		}
		return json.Marshal(multipleChoiceWire{
			Text:               q.Text,
			Alternatives:       alts,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
		})
	default:
		return nil, fmt.Errorf("unknown question kind %q", q.Kind)
	}
}

// UnmarshalJSON decodes either wire shape.
func (q *Question) UnmarshalJSON(data []byte) error {
	var w questionWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*q = w.question()
	return nil
}

// Packet is a named, ordered collection of questions. Its key lives in the
// catalog, not on the packet.
type Packet struct {
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

func (p Packet) clone() Packet {
	qs := make([]Question, len(p.Questions))
	for i, q := range p.Questions {
		qs[i] = q.clone()
	}
	p.Questions = qs
	return p
}
