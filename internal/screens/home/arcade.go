package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/ui/components"
	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const arcadeTitleFull = ` ███╗   ███╗ ██████╗ ██████╗ ██████╗ ██████╗ ██╗██╗     ██╗
 ████╗ ████║██╔════╝██╔═══██╗██╔══██╗██╔══██╗██║██║     ██║
 ██╔████╔██║██║     ██║   ██║██║  ██║██████╔╝██║██║     ██║
 ██║╚██╔╝██║██║     ██║▄▄ ██║██║  ██║██╔══██╗██║██║     ██║
 ██║ ╚═╝ ██║╚██████╗╚██████╔╝██████╔╝██║  ██║██║███████╗███████╗
 ╚═╝     ╚═╝ ╚═════╝ ╚══▀▀═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const arcadeTitleCompact = "M · C · Q · D · R · I · L · L"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < lipgloss.Width(arcadeTitleFull) {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the question count, category count and active
// mode in a bordered box matching content width.
func renderStatsBar(questions, categories int, mode string, cw int, compact bool) string {
	countStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	catStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	modeStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			countStyle.Render(fmt.Sprintf("?%d", questions)),
			catStyle.Render(fmt.Sprintf("◆%d", categories)),
			modeStyle.Render("▸"+mode),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			countStyle.Render(fmt.Sprintf("? %d QUESTIONS", questions)),
			catStyle.Render(fmt.Sprintf("◆ %d CATEGORIES", categories)),
			modeStyle.Render("▸ "+strings.ToUpper(mode)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderCategoryPicker renders the selected category between arrows.
func renderCategoryPicker(category string, cw int) string {
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim)
	name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(arrow.Render("◂  ") + name.Render(category) + arrow.Render("  ▸"))
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderWarning renders a one-line warning in the accent color.
func renderWarning(msg string, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Warning.Render("⚠ " + msg))
}
