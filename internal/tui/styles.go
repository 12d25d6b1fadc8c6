package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary  = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorText     = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim      = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent   = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorBorder   = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorStatusBg = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen    = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	activityStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			PaddingLeft(1)

	sliderLabelStyle = lipgloss.NewStyle().
				Foreground(colorText)

	sliderValueStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	sliderMarkerStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	chooserLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	chooserStyle = lipgloss.NewStyle().
			Foreground(colorText)

	chooserActiveStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	thumbStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Align(lipgloss.Center)

	thumbSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(colorAccent).
				Foreground(colorAccent).
				Bold(true).
				Align(lipgloss.Center)

	canvasPaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	canvasTitleStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	canvasDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)
