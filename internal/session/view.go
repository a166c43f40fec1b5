package session

// View is a read-only snapshot of the session. Exactly one of Learning,
// Exam and Random is set, matching Mode.
type View struct {
	Mode     Mode
	Category string
	// Empty reports that the selected category has no questions.
	Empty bool

	Learning *LearningView
	Exam     *ExamView
	Random   *RandomView
}

// LearningView is the renderable state of a learning session.
type LearningView struct {
	Question string
	Choices  []string
	Selected string
	Checked  bool
	Feedback *Feedback

	Remaining int
	Total     int
	Complete  bool

	Answered int
	Correct  int
}

// ExamView is the renderable state of a test.
type ExamView struct {
	Started        bool
	Finished       bool
	RequestedCount int
	MaxCount       int

	Question string
	Choices  []string
	Index    int
	Total    int

	// Summary is set once the test is finished.
	Summary *ExamSummary
}

// RandomView is the renderable state of a random drill.
type RandomView struct {
	Question string
	Choices  []string
	Selected string
	Checked  bool
	Feedback *Feedback

	Answered int
	Correct  int
}
