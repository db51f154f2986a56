package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/happymatch/internal/core"
)

// styleKey identifies cells that render with the same style.
type styleKey struct {
	color   core.Color
	reverse bool
}

// styles caches lipgloss styles per key. SSH sessions render concurrently.
var styles sync.Map // styleKey -> lipgloss.Style

func styleFor(k styleKey) lipgloss.Style {
	if s, ok := styles.Load(k); ok {
		return s.(lipgloss.Style)
	}

	style := lipgloss.NewStyle()
	if code := k.color.ANSI(); code != "" {
		style = style.Foreground(lipgloss.Color(code))
	}
	if k.reverse {
		style = style.Reverse(true)
	}
	styles.Store(k, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of cells sharing a style are rendered together.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}

		var key styleKey
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			k := styleKey{color: cell.Color, reverse: cell.Reverse}
			if x > 0 && k != key {
				sb.WriteString(styleFor(key).Render(run.String()))
				run.Reset()
			}
			key = k
			run.WriteRune(cell.Rune)
		}
		if run.Len() > 0 {
			sb.WriteString(styleFor(key).Render(run.String()))
			run.Reset()
		}
	}
	return sb.String()
}
