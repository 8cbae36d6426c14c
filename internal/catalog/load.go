package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileDocument is the on-disk catalog layout:
//
//	packets:
//	  math:
//	    name: Math Packet
//	    questions:
//	      - text: What is 2 + 2?
//	        alternatives: ["3", "4", "5", "6"]
//	        correct_answer_index: 1
type fileDocument struct {
	Packets map[string]Packet `json:"packets"`
}

// LoadFile reads a YAML or JSON catalog file, checks it against
// FileSchema and builds a validated catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse builds a catalog from YAML or JSON bytes. JSON is accepted because
// it is valid YAML.
func Parse(data []byte) (*Catalog, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	// Normalize YAML values (ints, typed maps) into plain JSON values.
	js, err := json.Marshal(stringKeys(raw))
	if err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}
	var doc any
	if err := json.Unmarshal(js, &doc); err != nil {
		return nil, fmt.Errorf("normalize catalog: %w", err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var fd fileDocument
	if err := json.Unmarshal(js, &fd); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(fd.Packets)
}

// stringKeys rewrites mappings whose keys YAML decoded as non-strings
// (e.g. a packet key of 2024) into string-keyed maps so they encode as JSON
// objects.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}
