package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mindprint theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconMind    = "🧠"
	IconSparkle = "✨"
	IconQuiz    = "📝"
	IconDone    = "✅"
	IconChart   = "📈"
	IconAvatar  = "🧬"
	IconPet     = "🐾"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconCompass = "🧭"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Dim   = lipgloss.NewStyle().Foreground(cMuted)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold).Background(cPrimary)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// LevelText colors an insight level the way status text is colored.
func LevelText(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "high":
		return Bad.Render("high")
	case "medium":
		return Warn.Render("medium")
	case "low":
		return Good.Render("low")
	default:
		return Muted.Render(level)
	}
}

// ScoreBar renders a signed score in [-1,1] as a fixed-width bar centered on
// zero, e.g. [----|##--] for a mildly positive score.
func ScoreBar(score float64, halfWidth int) string {
	if halfWidth < 2 {
		halfWidth = 2
	}
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	left := strings.Repeat("-", halfWidth)
	right := strings.Repeat("-", halfWidth)
	filled := int(score * float64(halfWidth))
	if filled > 0 {
		right = strings.Repeat("#", filled) + strings.Repeat("-", halfWidth-filled)
	} else if filled < 0 {
		filled = -filled
		left = strings.Repeat("-", halfWidth-filled) + strings.Repeat("#", filled)
	}
	return "[" + left + "|" + right + "]"
}
