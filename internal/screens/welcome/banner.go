package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/conectivo/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██████╗ ███╗   ██╗███████╗ ██████╗████████╗██╗██╗   ██╗ ██████╗
 ██╔════╝██╔═══██╗████╗  ██║██╔════╝██╔════╝╚══██╔══╝██║██║   ██║██╔═══██╗
 ██║     ██║   ██║██╔██╗ ██║█████╗  ██║        ██║   ██║██║   ██║██║   ██║
 ██║     ██║   ██║██║╚██╗██║██╔══╝  ██║        ██║   ██║╚██╗ ██╔╝██║   ██║
 ╚██████╗╚██████╔╝██║ ╚████║███████╗╚██████╗   ██║   ██║ ╚████╔╝ ╚██████╔╝
  ╚═════╝ ╚═════╝ ╚═╝  ╚═══╝╚══════╝ ╚═════╝   ╚═╝   ╚═╝  ╚═══╝   ╚═════╝`

const bannerCompact = "C O N E C T I V O"

// bannerMinWidth is the narrowest terminal that fits bannerArt.
const bannerMinWidth = 76

// RenderBanner returns the banner in the primary color, falling back to
// spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
