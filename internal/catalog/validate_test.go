package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_SeedPasses(t *testing.T) {
	if err := validatePackets(seedPackets()); err != nil {
		t.Fatalf("seed catalog validation failed: %v", err)
	}
}

func TestValidatePackets(t *testing.T) {
	tests := []struct {
		name    string
		packets map[string]Packet
		want    string
	}{
		{
			name:    "empty key",
			packets: map[string]Packet{"": {Name: "P"}},
			want:    "packet key is empty",
		},
		{
			name:    "empty name",
			packets: map[string]Packet{"p": {Name: " "}},
			want:    "name is empty",
		},
		{
			name: "empty text",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				FreeText("", "a"),
			}}},
			want: "text is empty",
		},
		{
			name: "empty free text answer",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				FreeText("q?", ""),
			}}},
			want: "correct_answer is empty",
		},
		{
			name: "three alternatives",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				MultipleChoice("q?", []string{"a", "b", "c"}, 0),
			}}},
			want: "alternatives must have 4 entries, got 3",
		},
		{
			name: "index past end",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				MultipleChoice("q?", []string{"a", "b", "c", "d"}, 4),
			}}},
			want: "correct_answer_index 4 out of range",
		},
		{
			name: "negative index",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				MultipleChoice("q?", []string{"a", "b", "c", "d"}, -1),
			}}},
			want: "correct_answer_index -1 out of range",
		},
		{
			name: "empty alternative",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				MultipleChoice("q?", []string{"a", "", "c", "d"}, 0),
			}}},
			want: "alternative 1 is empty",
		},
		{
			name: "unknown kind",
			packets: map[string]Packet{"p": {Name: "P", Questions: []Question{
				{Text: "q?"},
			}}},
			want: "unknown kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePackets(tt.packets)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidatePackets_ReportsAllProblems(t *testing.T) {
	packets := map[string]Packet{
		"a": {Name: "", Questions: []Question{FreeText("q?", "")}},
		"b": {Name: "B", Questions: []Question{MultipleChoice("q?", []string{"x"}, 3)}},
	}
	err := validatePackets(packets)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 4 {
		t.Errorf("got %d problems, want 4: %v", len(verr.Problems), verr.Problems)
	}
	if !strings.HasPrefix(verr.Problems[0], `packet "a"`) {
		t.Errorf("problems should be ordered by key, got %v", verr.Problems)
	}
}

func TestMustNew_PanicsOnDefect(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid catalog")
		}
	}()
	MustNew(map[string]Packet{"p": {Name: "P", Questions: []Question{
		MultipleChoice("q?", []string{"a", "b", "c", "d"}, 9),
	}}})
}
