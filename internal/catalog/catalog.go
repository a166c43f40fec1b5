package catalog

import (
	"errors"
	"fmt"
)

// AllCategories is the pseudo-category selecting every question in the catalog.
const AllCategories = "All"

// ChoiceCount is the number of choices every question carries.
const ChoiceCount = 4

// answerLetters maps a choice position to the letter used in the data file.
var answerLetters = [ChoiceCount]string{"A", "B", "C", "D"}

// ErrUnknownCategory is returned when a category name is not in the catalog.
var ErrUnknownCategory = errors.New("unknown category")

// Question is a single multiple-choice question. It is immutable once loaded.
type Question struct {
	// Text is the prompt shown to the learner.
	Text string

	// Choices holds the four options in presentation order.
	Choices [ChoiceCount]string

	// CorrectIndex is the zero-based position of the correct choice,
	// decoded once from the answer letter at load time.
	CorrectIndex int

	// Explanation is shown when the learner answers incorrectly.
	Explanation string
}

// CorrectChoice returns the text of the correct choice.
func (q Question) CorrectChoice() string {
	return q.Choices[q.CorrectIndex]
}

// ChoiceList returns the choices as a slice.
func (q Question) ChoiceList() []string {
	out := make([]string, ChoiceCount)
	copy(out, q.Choices[:])
	return out
}

// HasChoice reports whether text is one of the question's choices.
func (q Question) HasChoice(text string) bool {
	for _, c := range q.Choices {
		if c == text {
			return true
		}
	}
	return false
}

// DecodeAnswer converts an answer letter ("A".."D") to a zero-based index.
func DecodeAnswer(letter string) (int, error) {
	for i, l := range answerLetters {
		if l == letter {
			return i, nil
		}
	}
	return 0, fmt.Errorf("answer %q is not one of A, B, C, D", letter)
}

// AnswerLetter returns the data-file letter for a choice index.
func AnswerLetter(index int) string {
	if index < 0 || index >= ChoiceCount {
		return "?"
	}
	return answerLetters[index]
}

// Shuffler randomizes the order of n elements using swap.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Catalog is the fixed set of questions grouped by category.
// It is read-only after construction.
type Catalog struct {
	categories []string
	questions  map[string][]Question
}

// New builds a Catalog from categories in display order and their questions.
// It applies the same checks as Load.
func New(categories []string, questions map[string][]Question) (*Catalog, error) {
	var problems []string
	seen := make(map[string]bool, len(categories))

	if len(categories) == 0 {
		problems = append(problems, "catalog has no categories")
	}
	for _, name := range categories {
		switch {
		case name == "":
			problems = append(problems, "category name is empty")
		case name == AllCategories:
			problems = append(problems, fmt.Sprintf("category name %q is reserved", AllCategories))
		case seen[name]:
			problems = append(problems, fmt.Sprintf("duplicate category %q", name))
		}
		seen[name] = true

		qs := questions[name]
		if len(qs) == 0 {
			problems = append(problems, fmt.Sprintf("category %q has no questions", name))
		}
		for i, q := range qs {
			if q.Text == "" {
				problems = append(problems, fmt.Sprintf("category %q question %d: question text is empty", name, i+1))
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= ChoiceCount {
				problems = append(problems, fmt.Sprintf("category %q question %d: correct index %d out of range", name, i+1, q.CorrectIndex))
			}
		}
	}
	for name := range questions {
		if !seen[name] {
			problems = append(problems, fmt.Sprintf("questions given for undeclared category %q", name))
		}
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}

	c := &Catalog{
		categories: append([]string(nil), categories...),
		questions:  make(map[string][]Question, len(categories)),
	}
	for _, name := range categories {
		c.questions[name] = append([]Question(nil), questions[name]...)
	}
	return c, nil
}

// Categories returns the category names in display order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Choices returns the selectable category names: AllCategories first,
// then every category in display order.
func (c *Catalog) Choices() []string {
	out := make([]string, 0, len(c.categories)+1)
	out = append(out, AllCategories)
	return append(out, c.categories...)
}

// Has reports whether name is selectable, including AllCategories.
func (c *Catalog) Has(name string) bool {
	if name == AllCategories {
		return true
	}
	_, ok := c.questions[name]
	return ok
}

// Len returns the total number of questions.
func (c *Catalog) Len() int {
	n := 0
	for _, qs := range c.questions {
		n += len(qs)
	}
	return n
}

// Count returns the number of questions in a category, or in the whole
// catalog for AllCategories. Unknown categories count as zero.
func (c *Catalog) Count(name string) int {
	if name == AllCategories {
		return c.Len()
	}
	return len(c.questions[name])
}

// Questions returns a copy of the questions for a category in file order.
// AllCategories yields the union of every category in display order.
func (c *Catalog) Questions(name string) ([]Question, error) {
	if name == AllCategories {
		out := make([]Question, 0, c.Len())
		for _, cat := range c.categories {
			out = append(out, c.questions[cat]...)
		}
		return out, nil
	}
	qs, ok := c.questions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return append([]Question(nil), qs...), nil
}

// WorkingSet returns a freshly shuffled copy of the questions for a category.
// The catalog itself is never reordered.
func (c *Catalog) WorkingSet(name string, shuffler Shuffler) ([]Question, error) {
	qs, err := c.Questions(name)
	if err != nil {
		return nil, err
	}
	if shuffler != nil {
		shuffler.Shuffle(len(qs), func(i, j int) {
			qs[i], qs[j] = qs[j], qs[i]
		})
	}
	return qs, nil
}
