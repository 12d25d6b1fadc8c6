package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderStatusBar(hints string) string {
	left := ""
	if loaded, ok := a.status.(statusLoaded); ok {
		left = fmt.Sprintf(" %d photos · %s thumbs", len(loaded.photos), a.size)
	}
	if a.err != nil {
		left = " " + errorStyle.Render(a.err.Error())
	}

	right := " " + hints + " "

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(a.width).Render(bar)
}
