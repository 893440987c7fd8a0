package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/natbrooks/orbit/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskColor returns the lipgloss style corresponding to the given risk level.
func RiskColor(risk domain.RiskLevel) lipgloss.Style {
	switch risk {
	case domain.RiskCritical:
		return StyleRed
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskMedium:
		return StyleYellow
	case domain.RiskLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored risk indicator string such as "● CRITICAL".
func RiskIndicator(risk domain.RiskLevel) string {
	switch risk {
	case domain.RiskCritical:
		return StyleRed.Render("● CRITICAL")
	case domain.RiskHigh:
		return StyleRed.Render("● HIGH")
	case domain.RiskMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.RiskLow:
		return StyleGreen.Render("● LOW")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// TrackPill returns a colored indicator for a course's grade tracking status.
func TrackPill(status domain.TrackingStatus) string {
	switch status {
	case domain.TrackOnTrack:
		return StyleGreen.Render("● On Track")
	case domain.TrackSlightlyBehind:
		return StyleYellow.Render("○ Slightly Behind")
	case domain.TrackAtRisk:
		return StyleRed.Render("▲ At Risk")
	default:
		return StyleDim.Render(string(status))
	}
}

// StatusPill returns a colored status indicator for a deliverable status.
func StatusPill(status domain.DeliverableStatus) string {
	switch status {
	case domain.StatusIncomplete:
		return StyleBlue.Render("○ Incomplete")
	case domain.StatusInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.StatusSubmitted:
		return StyleYellow.Render("◆ Submitted")
	case domain.StatusGraded:
		return StyleDim.Render("✔ Graded")
	default:
		return StyleDim.Render(string(status))
	}
}

// TrendArrow returns a colored arrow for a health trend.
func TrendArrow(trend domain.Trend) string {
	switch trend {
	case domain.TrendUp:
		return StyleGreen.Render("↑")
	case domain.TrendDown:
		return StyleRed.Render("↓")
	default:
		return StyleYellow.Render("→")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
