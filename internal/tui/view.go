package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/photogroove/pgroove/internal/gallery"
)

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  Photo Groove")
	}

	switch st := a.status.(type) {
	case statusErrored:
		return a.withStatusBar(errorStyle.Render("Error: "+st.message), "q quit")
	case statusLoaded:
		return a.viewLoaded(st)
	default:
		return a.withStatusBar(a.spinner.View()+" Loading photos...", "q quit")
	}
}

func (a *App) viewLoaded(st statusLoaded) string {
	hints := "←/→ choose  s surprise me  1/2/3 size  tab sliders  q quit"
	if a.focus == focusSliders {
		hints = "↑/↓ pick slider  ←/→ adjust  tab thumbnails  q quit"
	}

	sections := []string{
		a.renderHeader(),
		activityStyle.Render(a.activityText),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, a.renderSliders(), "    ", a.renderChooser()),
		"",
		a.renderThumbs(st),
		a.renderSelectedSource(st),
		"",
		a.renderCanvas(),
	}

	return a.withStatusBar(lipgloss.JoinVertical(lipgloss.Left, sections...), hints)
}

func (a *App) renderHeader() string {
	left := headerStyle.Render("Photo Groove")
	right := headerDateStyle.Render(time.Now().Format("Jan 2"))
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return left + fmt.Sprintf("%*s", gap, "") + right
}

func (a *App) renderSliders() string {
	rows := make([]string, 0, 3)
	for _, s := range []sliderIndex{sliderHue, sliderRipple, sliderNoise} {
		v := a.sliderValue(s)
		marker := "  "
		if a.focus == focusSliders && s == a.slider {
			marker = sliderMarkerStyle.Render("> ")
		}
		label := sliderLabelStyle.Render(fmt.Sprintf("%-6s", s))
		bar := a.bar.ViewAs(float64(v) / sliderMax)
		value := sliderValueStyle.Render(fmt.Sprintf("%2d", v))
		rows = append(rows, marker+label+" "+bar+" "+value)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (a *App) renderChooser() string {
	parts := []string{chooserLabelStyle.Render("Thumbnail size:")}
	for _, s := range []thumbSize{sizeSmall, sizeMedium, sizeLarge} {
		radio := "( )"
		style := chooserStyle
		if s == a.size {
			radio = "(•)"
			style = chooserActiveStyle
		}
		parts = append(parts, style.Render(radio+" "+s.String()))
	}
	return strings.Join(parts, "  ")
}

// renderSelectedSource echoes the selected thumbnail's source URL.
func (a *App) renderSelectedSource(st statusLoaded) string {
	src := gallery.ThumbURL(a.baseURL(), st.selected)
	return canvasDimStyle.Render(" " + truncateStr(src, a.width-2))
}

// renderCanvas shows what the external renderer was last asked to
// paint: the full-resolution target and the filter amounts.
func (a *App) renderCanvas() string {
	req, ok := a.filterRequest()
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(canvasTitleStyle.Render(truncateStr(req.URL, a.width-8)))
	b.WriteString("\n")
	for i, f := range req.Filters {
		if i > 0 {
			b.WriteString(canvasDimStyle.Render(" · "))
		}
		b.WriteString(canvasDimStyle.Render(fmt.Sprintf("%s %.2f", f.Name, f.Amount)))
	}

	w := a.width - 4
	if w < 20 {
		w = 20
	}
	return canvasPaneStyle.Width(w).Render(b.String())
}

func (a *App) withStatusBar(content string, hints string) string {
	bar := a.renderStatusBar(hints)
	if a.height <= 1 {
		return content + "\n" + bar
	}
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}
