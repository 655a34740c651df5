package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

// styles is the lipgloss rendition of a ui.Theme.
type styles struct {
	title, success, pending, accent, muted, errorText lipgloss.Style
	selected, done, help, frame                       lipgloss.Style

	boxChecked, boxUnchecked, symDone, symPending string
}

func newStyles(t ui.Theme) styles {
	s := styles{
		boxChecked:   t.BoxChecked,
		boxUnchecked: t.BoxUnchecked,
		symDone:      t.SymDone,
		symPending:   t.SymUnchecked,
	}
	base := lipgloss.NewStyle()
	if t.Palette.Plain {
		s.title, s.success, s.pending, s.accent = base, base, base, base
		s.muted, s.errorText, s.selected, s.done, s.help = base, base, base, base, base
		s.frame = base.Border(lipgloss.ASCIIBorder()).Padding(0, 1)
		return s
	}
	fg := func(c string) lipgloss.Style {
		if c == "" {
			return base
		}
		return base.Foreground(lipgloss.Color(c))
	}
	p := t.Palette
	s.title = base.Bold(true)
	s.success = fg(p.Success)
	s.pending = fg(p.Pending)
	s.accent = fg(p.Accent)
	s.muted = base.Faint(true)
	s.errorText = fg(p.Error).Bold(true)
	s.selected = base.Bold(true).Reverse(true)
	s.done = base.Faint(true).Strikethrough(true)
	s.help = base.Faint(true)
	s.frame = base.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Padding(0, 1)
	return s
}
