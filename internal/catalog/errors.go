package catalog

import (
	"fmt"
	"strings"
)

// LoadError reports why a question file could not be turned into a Catalog.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load questions: %v", e.Err)
	}
	return fmt.Sprintf("load questions from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError lists every problem found in the question data.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question data validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}
