package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("#60a5fa")
	colorPurple = lipgloss.Color("#a78bfa")
	colorText   = lipgloss.Color("#e5e7eb")
	colorMuted  = lipgloss.Color("#9ca3af")
	colorDim    = lipgloss.Color("#4b5563")

	accentColors = map[string]lipgloss.Color{
		"blue":   colorBlue,
		"purple": colorPurple,
		"green":  lipgloss.Color("#4ade80"),
		"yellow": lipgloss.Color("#facc15"),
	}

	// cardGlow runs left to right across a project card; the pointer's
	// horizontal percentage picks the border color.
	cardGlow = []lipgloss.Color{"#60a5fa", "#818cf8", "#a78bfa", "#c084fc", "#e879f9"}

	brandStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	navStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	navActiveStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	heroStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	textStyle      = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)
	tagStyle       = lipgloss.NewStyle().Foreground(colorText).Background(lipgloss.Color("#374151")).Padding(0, 1)
	codeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#93c5fd"))
	buttonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#6366f1")).Padding(0, 2)
	menuStyle      = lipgloss.NewStyle().Foreground(colorText).Background(lipgloss.Color("#1f2937"))
	footerStyle    = lipgloss.NewStyle().Foreground(colorDim)

	cursorDotStyle     = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
	cursorOutlineStyle = lipgloss.NewStyle().Foreground(colorPurple)
	trailFreshStyle    = lipgloss.NewStyle().Foreground(colorBlue)
	trailFadeStyle     = lipgloss.NewStyle().Foreground(colorDim)
)
