// Package session implements the practice state machines and the
// controller that owns them.
package session

import (
	"errors"
	"fmt"
	"slices"

	"github.com/abhisek/mcqdrill/internal/catalog"
)

// ModeSession is one of *LearningSession, *ExamSession or *RandomSession.
type ModeSession interface {
	Mode() Mode
	isModeSession()
}

// Outcome describes an accepted submit.
type Outcome struct {
	Mode     Mode
	Question catalog.Question
	Selected string
	Correct  bool
	// Feedback is nil in Test-Exam, which reveals results only in the
	// summary.
	Feedback *Feedback
	// Finished is set when the submit completed a learning session or a
	// test.
	Finished bool
}

// Session is the single owner of practice state: the selected mode and
// category, the working set, and one state machine per mode.
type Session struct {
	catalog  *catalog.Catalog
	cfg      Config
	shuffler catalog.Shuffler

	mode       Mode
	category   string
	workingSet []catalog.Question

	learning *LearningSession
	exam     *ExamSession
	random   *RandomSession
}

// New creates a session in Learning mode over all categories. A nil
// shuffler keeps catalog order.
func New(cat *catalog.Catalog, cfg Config, shuffler catalog.Shuffler) (*Session, error) {
	if cat == nil {
		return nil, errors.New("session: nil catalog")
	}
	if cfg.ExamQuestionCount <= 0 {
		cfg.ExamQuestionCount = DefaultConfig().ExamQuestionCount
	}
	s := &Session{
		catalog:  cat,
		cfg:      cfg,
		shuffler: shuffler,
		mode:     ModeLearning,
		category: catalog.AllCategories,
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset draws a new working set and recreates every mode session.
func (s *Session) reset() error {
	ws, err := s.catalog.WorkingSet(s.category, s.shuffler)
	if err != nil {
		return fmt.Errorf("build working set: %w", err)
	}
	s.workingSet = ws
	s.learning = newLearningSession(ws)
	s.exam = newExamSession(ws, s.cfg.ExamQuestionCount)
	s.random = newRandomSession(ws)
	return nil
}

// SetMode switches the active mode. Switching to a different mode
// reshuffles the working set and resets all progress.
func (s *Session) SetMode(m Mode) error {
	if !m.Valid() {
		return fmt.Errorf("set mode: invalid mode %d", int(m))
	}
	if m == s.mode {
		return nil
	}
	prev := s.mode
	s.mode = m
	if err := s.reset(); err != nil {
		s.mode = prev
		return err
	}
	return nil
}

// SetCategory switches the active category ("All" or a catalog category).
// Switching to a different category reshuffles and resets all progress.
func (s *Session) SetCategory(name string) error {
	if !s.catalog.Has(name) {
		return fmt.Errorf("set category %q: %w", name, catalog.ErrUnknownCategory)
	}
	if name == s.category {
		return nil
	}
	prev := s.category
	s.category = name
	if err := s.reset(); err != nil {
		s.category = prev
		return err
	}
	return nil
}

// NextCategory moves to the next entry of Catalog.Choices, wrapping.
func (s *Session) NextCategory() error {
	choices := s.catalog.Choices()
	i := slices.Index(choices, s.category)
	return s.SetCategory(choices[(i+1)%len(choices)])
}

// Mode returns the active mode.
func (s *Session) Mode() Mode { return s.mode }

// Category returns the active category.
func (s *Session) Category() string { return s.category }

// Catalog returns the catalog the session draws from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

// WorkingSet returns a copy of the current working set.
func (s *Session) WorkingSet() []catalog.Question {
	return slices.Clone(s.workingSet)
}

// Active returns the state machine of the active mode.
func (s *Session) Active() ModeSession {
	switch s.mode {
	case ModeExam:
		return s.exam
	case ModeRandom:
		return s.random
	default:
		return s.learning
	}
}

// Submit answers the current question of the active mode.
func (s *Session) Submit(choice string) (Outcome, error) {
	switch m := s.Active().(type) {
	case *LearningSession:
		q, err := m.Current()
		if err != nil {
			return Outcome{}, err
		}
		fb, err := m.Submit(choice)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Mode:     ModeLearning,
			Question: q,
			Selected: choice,
			Correct:  fb.Correct,
			Feedback: &fb,
			Finished: fb.Correct && m.Remaining() == 1,
		}, nil
	case *ExamSession:
		r, err := m.SubmitAndAdvance(choice)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Mode:     ModeExam,
			Question: r.Question,
			Selected: r.Selected,
			Correct:  r.Correct,
			Finished: m.Finished(),
		}, nil
	case *RandomSession:
		q, err := m.Current()
		if err != nil {
			return Outcome{}, err
		}
		fb, err := m.Submit(choice)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Mode:     ModeRandom,
			Question: q,
			Selected: choice,
			Correct:  fb.Correct,
			Feedback: &fb,
		}, nil
	}
	return Outcome{}, reject(s.mode, ActionSubmit, "unknown mode")
}

// Continue advances past a checked answer in Learning or Random.
func (s *Session) Continue() error {
	switch m := s.Active().(type) {
	case *LearningSession:
		return m.Continue()
	case *RandomSession:
		return m.Continue()
	}
	return reject(s.mode, ActionContinue, "not supported in this mode")
}

// Configure sets the exam question count and returns the clamped value.
func (s *Session) Configure(count int) (int, error) {
	e, ok := s.Active().(*ExamSession)
	if !ok {
		return 0, reject(s.mode, ActionConfigure, "only available in Test-Exam")
	}
	return e.Configure(count)
}

// Start begins a test.
func (s *Session) Start() error {
	e, ok := s.Active().(*ExamSession)
	if !ok {
		return reject(s.mode, ActionStart, "only available in Test-Exam")
	}
	return e.Start()
}

// Restart abandons or clears a test, keeping its working set.
func (s *Session) Restart() error {
	e, ok := s.Active().(*ExamSession)
	if !ok {
		return reject(s.mode, ActionRestart, "only available in Test-Exam")
	}
	return e.Restart()
}

// Summary returns the result of a finished test.
func (s *Session) Summary() (ExamSummary, error) {
	e, ok := s.Active().(*ExamSession)
	if !ok {
		return ExamSummary{}, reject(s.mode, ActionSummary, "only available in Test-Exam")
	}
	return e.Summary()
}

// View returns a read-only snapshot of the active mode for rendering.
func (s *Session) View() View {
	v := View{
		Mode:     s.mode,
		Category: s.category,
		Empty:    len(s.workingSet) == 0,
	}
	switch m := s.Active().(type) {
	case *LearningSession:
		v.Learning = m.view()
	case *ExamSession:
		v.Exam = m.view()
	case *RandomSession:
		v.Random = m.view()
	}
	return v
}
