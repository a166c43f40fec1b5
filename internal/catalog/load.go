package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// record is one question entry as stored in the data file.
type record struct {
	Question string   `json:"question"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
	Reason   string   `json:"reason"`
}

// Load reads and validates the question file at path.
// Any failure is returned as a *LoadError naming the cause.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	c, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return c, nil
}

// Parse builds a Catalog from the raw JSON contents of a question file.
func Parse(data []byte) (*Catalog, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateSchema(doc); err != nil {
		return nil, err
	}

	names, records, err := decodeOrdered(data)
	if err != nil {
		return nil, err
	}

	var problems []string
	questions := make(map[string][]Question, len(names))
	for _, name := range names {
		for i, r := range records[name] {
			q, err := r.toQuestion()
			if err != nil {
				problems = append(problems, fmt.Sprintf("category %q question %d: %v", name, i+1, err))
				continue
			}
			questions[name] = append(questions[name], q)
		}
	}
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	return New(names, questions)
}

// decodeOrdered decodes the top-level object keeping the category order
// of the file. Duplicate category keys are reported as a validation error.
func decodeOrdered(data []byte) ([]string, map[string][]record, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, fmt.Errorf("read document: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("document must be an object of categories")
	}

	var names []string
	var dups []string
	records := make(map[string][]record)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, fmt.Errorf("read category name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}

		var rs []record
		if err := dec.Decode(&rs); err != nil {
			return nil, nil, fmt.Errorf("category %q: %w", name, err)
		}
		if _, exists := records[name]; exists {
			dups = append(dups, fmt.Sprintf("duplicate category %q", name))
			continue
		}
		names = append(names, name)
		records[name] = rs
	}
	if len(dups) > 0 {
		return nil, nil, &ValidationError{Problems: dups}
	}
	return names, records, nil
}

// toQuestion checks a record and decodes its answer letter.
func (r record) toQuestion() (Question, error) {
	if r.Question == "" {
		return Question{}, fmt.Errorf("missing question text")
	}
	if len(r.Choices) != ChoiceCount {
		return Question{}, fmt.Errorf("has %d choices, want %d", len(r.Choices), ChoiceCount)
	}
	idx, err := DecodeAnswer(r.Answer)
	if err != nil {
		return Question{}, err
	}

	q := Question{
		Text:         r.Question,
		CorrectIndex: idx,
		Explanation:  r.Reason,
	}
	copy(q.Choices[:], r.Choices)
	return q, nil
}
