package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Severity colors, adaptive to light and dark terminal themes
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	HeadingColor = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#F9FAFB"}
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	PathStyle = lipgloss.NewStyle().
			Foreground(InfoColor).
			Italic(true)
)

// Operation indicator glyphs
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	ErrorIndicator   = ErrorStyle.Render("✗")
	WarningIndicator = WarningStyle.Render("!")
	InfoIndicator    = InfoStyle.Render("•")
)
