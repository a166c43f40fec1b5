package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcqdrill/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ ██████╗ ██████╗ ██████╗ ██████╗ ██╗██╗     ██╗
 ████╗ ████║██╔════╝██╔═══██╗██╔══██╗██╔══██╗██║██║     ██║
 ██╔████╔██║██║     ██║   ██║██║  ██║██████╔╝██║██║     ██║
 ██║╚██╔╝██║██║     ██║▄▄ ██║██║  ██║██╔══██╗██║██║     ██║
 ██║ ╚═╝ ██║╚██████╗╚██████╔╝██████╔╝██║  ██║██║███████╗███████╗
 ╚═╝     ╚═╝ ╚═════╝ ╚══▀▀═╝ ╚═════╝ ╚═╝  ╚═╝╚═╝╚══════╝╚══════╝`

const bannerCompact = "M C Q D R I L L"

// bannerWidth is the column width of bannerArt.
const bannerWidth = 66

// RenderBanner returns the MCQDRILL banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
