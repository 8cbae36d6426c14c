package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
packets:
  math:
    name: Math Packet
    questions:
      - text: What is 2 + 2?
        alternatives: ["3", "4", "5", "6"]
        correct_answer_index: 1
      - text: What is 3 * 3?
        alternatives: ["6", "7", "8", "9"]
        correct_answer_index: 3
  science:
    name: Science Packet
    questions:
      - text: What planet is known as the Red Planet?
        correct_answer: Mars
      - text: What is the chemical symbol for water?
        correct_answer: H2O
`

func TestParse_YAMLMatchesSeed(t *testing.T) {
	c, err := Parse([]byte(seedYAML))
	require.NoError(t, err)
	if diff := cmp.Diff(Build(), c, cmp.AllowUnexported(Catalog{})); diff != "" {
		t.Errorf("parsed catalog mismatch (-seed +parsed):\n%s", diff)
	}
}

func TestParse_JSON(t *testing.T) {
	c, err := Parse([]byte(`{"packets":{"geo":{"name":"Geo","questions":[{"text":"Capital of France?","correct_answer":"Paris"}]}}}`))
	require.NoError(t, err)

	q, err := c.Question("geo", 0)
	require.NoError(t, err)
	assert.Equal(t, KindFreeText, q.Kind)
	assert.Equal(t, "Paris", q.Answer())
}

func TestParse_NumericKey(t *testing.T) {
	yamlDoc := "packets:\n  2024:\n    name: Year Packet\n    questions:\n      - text: Leap year?\n        correct_answer: \"yes\"\n"
	jsonDoc := `{"packets":{"2024":{"name":"Year Packet","questions":[{"text":"Leap year?","correct_answer":"yes"}]}}}`

	fromYAML, err := Parse([]byte(yamlDoc))
	require.NoError(t, err)
	fromJSON, err := Parse([]byte(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, []string{"2024"}, fromYAML.Keys())
	assert.Equal(t, fromJSON.Keys(), fromYAML.Keys())

	p, err := fromYAML.Packet("2024")
	require.NoError(t, err)
	assert.Equal(t, "Year Packet", p.Name)
}

func TestParse_EmptyPacketList(t *testing.T) {
	c, err := Parse([]byte("packets: {}\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Keys())
}

func TestParse_SchemaRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"missing packets", "other: 1\n"},
		{"missing name", "packets:\n  p:\n    questions: []\n"},
		{"three alternatives", `packets:
  p:
    name: P
    questions:
      - text: q?
        alternatives: [a, b, c]
        correct_answer_index: 0
`},
		{"index out of range", `packets:
  p:
    name: P
    questions:
      - text: q?
        alternatives: [a, b, c, d]
        correct_answer_index: 4
`},
		{"both shapes", `packets:
  p:
    name: P
    questions:
      - text: q?
        correct_answer: a
        alternatives: [a, b, c, d]
        correct_answer_index: 0
`},
		{"unknown field", `packets:
  p:
    name: P
    questions: []
    owner: me
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_ValidationErrorAfterSchema(t *testing.T) {
	// Passes the schema but has an empty alternative.
	_, err := Parse([]byte(`packets:
  p:
    name: P
    questions:
      - text: q?
        alternatives: [a, "", c, d]
        correct_answer_index: 0
`))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Contains(t, verr.Error(), "alternative 1 is empty")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("packets: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "science"}, c.Keys())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
