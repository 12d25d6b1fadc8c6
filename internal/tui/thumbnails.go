package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/photogroove/pgroove/internal/gallery"
)

// renderThumbs lays the gallery out as a grid of captioned cells, one
// per photo, sized by the chosen thumbnail size.
func (a *App) renderThumbs(st statusLoaded) string {
	cellW := a.size.cellWidth()
	perRow := a.width / (cellW + 2)
	if perRow < 1 {
		perRow = 1
	}

	cells := make([]string, 0, len(st.photos))
	for _, p := range st.photos {
		cells = append(cells, a.renderThumb(p, p.URL == st.selected, cellW))
	}

	var rows []string
	for start := 0; start < len(cells); start += perRow {
		end := start + perRow
		if end > len(cells) {
			end = len(cells)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderThumb(p gallery.Photo, selected bool, width int) string {
	caption := truncateStr(p.Caption(), width-2)
	if selected {
		return thumbSelectedStyle.Width(width).Render(caption)
	}
	return thumbStyle.Width(width).Render(caption)
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
