package session

import (
	"fmt"
	"strings"
)

// Mode selects which practice state machine is live.
type Mode int

const (
	ModeLearning Mode = iota // Repeat wrong answers until all are answered correctly
	ModeExam                 // Fixed-length scored test
	ModeRandom               // Endless cyclic drill
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeLearning, ModeExam, ModeRandom}
}

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLearning:
		return "Learning"
	case ModeExam:
		return "Test-Exam"
	case ModeRandom:
		return "Random"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Slug returns the lowercase identifier used in flags and the journal.
func (m Mode) Slug() string {
	switch m {
	case ModeLearning:
		return "learning"
	case ModeExam:
		return "exam"
	case ModeRandom:
		return "random"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m >= ModeLearning && m <= ModeRandom
}

// Next returns the following mode in menu order, wrapping around.
// An undefined mode restarts the cycle at ModeLearning.
func (m Mode) Next() Mode {
	if !m.Valid() {
		return ModeLearning
	}
	modes := Modes()
	return modes[(int(m)+1)%len(modes)]
}

// ParseMode parses a mode slug or display name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "learning", "learn":
		return ModeLearning, nil
	case "exam", "test-exam", "test":
		return ModeExam, nil
	case "random":
		return ModeRandom, nil
	}
	return 0, fmt.Errorf("invalid mode %q: must be learning, exam, or random", s)
}
