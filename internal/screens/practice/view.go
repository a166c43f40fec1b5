package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/session"
	"github.com/abhisek/mcqdrill/internal/ui/components"
	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

const startButtonWidth = 18

func (p *PracticeScreen) View(width, height int) string {
	v := p.sess.View()

	var body string
	switch {
	case v.Empty:
		body = renderEmpty(width, v.Category)
	case v.Learning != nil:
		body = p.renderLearning(width, v.Learning)
	case v.Exam != nil:
		body = p.renderExam(width, v.Exam)
	case v.Random != nil:
		body = p.renderRandom(width, v.Random)
	}

	var b strings.Builder
	b.WriteString(body)
	if p.notice != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Hint.Render(p.notice)))
	}
	if p.warning != "" {
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Warning.Render(p.warning)))
	}
	return b.String()
}

func (p *PracticeScreen) renderLearning(width int, lv *session.LearningView) string {
	if lv.Complete {
		var b strings.Builder
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Correct.Render("All questions answered correctly!")))
		b.WriteString("\n\n")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d questions, %d attempts, %d correct", lv.Total, lv.Answered, lv.Correct))))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Hint.Render("Press m or c to practice something else.")))
		return b.String()
	}

	done := lv.Total - lv.Remaining
	info := fmt.Sprintf("Remaining %d of %d   %s %d/%d", lv.Remaining, lv.Total,
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), lv.Correct, lv.Answered)

	var b strings.Builder
	b.WriteString(p.renderInfoLine(width, info, done, lv.Total))
	b.WriteString(p.renderQuestion(width, lv.Question))
	b.WriteString(renderFeedback(width, lv.Feedback))
	return b.String()
}

func (p *PracticeScreen) renderRandom(width int, rv *session.RandomView) string {
	info := fmt.Sprintf("Endless drill   %s %d/%d",
		lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), rv.Correct, rv.Answered)

	var b strings.Builder
	b.WriteString(p.renderInfoLine(width, info, 0, 0))
	b.WriteString(p.renderQuestion(width, rv.Question))
	b.WriteString(renderFeedback(width, rv.Feedback))
	return b.String()
}

func (p *PracticeScreen) renderExam(width int, ev *session.ExamView) string {
	var b strings.Builder

	switch {
	case !ev.Started:
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Title.Render("Test-Exam")))
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Body.Render(
			fmt.Sprintf("How many questions? (1-%d)", ev.MaxCount))))
		b.WriteString("\n\n")
		b.WriteString(centered(width, p.countInput.View()))
		b.WriteString("\n\n")
		b.WriteString(centered(width, components.ArcadeButton("START TEST", true, startButtonWidth)))

	case ev.Finished:
		sum := ev.Summary
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Title.Render("Test finished")))
		b.WriteString("\n\n")
		if sum != nil {
			b.WriteString(centered(width, theme.Body.Render(
				fmt.Sprintf("Score: %d / %d", sum.Correct, sum.Total))))
			b.WriteString("\n\n")
		}
		b.WriteString(centered(width, theme.Hint.Render("Enter to review answers, r to restart")))

	default:
		info := fmt.Sprintf("Question %d of %d", ev.Index+1, ev.Total)
		b.WriteString(p.renderInfoLine(width, info, ev.Index, ev.Total))
		b.WriteString(p.renderQuestion(width, ev.Question))
	}
	return b.String()
}

// renderInfoLine renders the progress line and divider above a question.
// A zero total omits the progress bar.
func (p *PracticeScreen) renderInfoLine(width int, info string, done, total int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + p.sess.Category())
	right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(info)

	line := left
	rightPad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if rightPad > 0 {
		line += strings.Repeat(" ", rightPad) + right
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteString("\n")
	if total > 0 {
		bar := components.NewProgressBar(done, total, min(width-8, 60))
		b.WriteString(centered(width, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")
	return b.String()
}

func (p *PracticeScreen) renderQuestion(width int, text string) string {
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true)

	var b strings.Builder
	b.WriteString(centered(width, questionStyle.Render(text)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, p.choices.View()))
	return b.String()
}

func renderFeedback(width int, fb *session.Feedback) string {
	if fb == nil {
		return ""
	}
	style := theme.Incorrect
	if fb.Correct {
		style = theme.Correct
	}
	msg := lipgloss.NewStyle().Width(min(width-8, 70)).Render(style.Render(fb.Message))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(width, msg))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter to continue...")))
	return b.String()
}

func renderEmpty(width int, category string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  No questions in %q.\n\n  Press c to pick another category.", category))
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
