package session

import "github.com/abhisek/mcqdrill/internal/catalog"

// MessageCorrect is the feedback shown for a correct answer.
const MessageCorrect = "Correct!"

// Feedback is the result of checking one answer.
type Feedback struct {
	Message string
	Correct bool
}

// Evaluate checks selected against the question's correct choice.
// The comparison is on the exact choice text, as rendered.
func Evaluate(q catalog.Question, selected string) Feedback {
	if selected == q.CorrectChoice() {
		return Feedback{Message: MessageCorrect, Correct: true}
	}
	return Feedback{Message: "Incorrect. " + q.Explanation, Correct: false}
}
