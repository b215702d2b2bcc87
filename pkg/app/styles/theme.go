package styles

import "github.com/charmbracelet/lipgloss"

// Gallery palette: bronze frames on a slate wall.
var (
	Bronze  = lipgloss.Color("#E0A96D")
	Umber   = lipgloss.Color("#AD7E47")
	Sage    = lipgloss.Color("#C3E88D")
	Crimson = lipgloss.Color("#E53935")
	Sky     = lipgloss.Color("#82AAFF")
	Slate   = lipgloss.Color("#546E7A")
	Wall    = lipgloss.Color("#37474F")
	Canvas  = lipgloss.Color("#EEFFFF")
)

// Text
var (
	TitleStyle    = lipgloss.NewStyle().Foreground(Bronze).Bold(true).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(Umber).Italic(true)
	TextStyle     = lipgloss.NewStyle().Foreground(Canvas)
	MutedStyle    = lipgloss.NewStyle().Foreground(Slate)
	HelpStyle     = lipgloss.NewStyle().Foreground(Slate).Italic(true).MarginTop(1)
	LinkStyle     = lipgloss.NewStyle().Foreground(Sky).Underline(true)
)

// Artwork cards. The selected card gets a heavier frame.
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Umber).
			Padding(1, 2).
			MarginBottom(1)

	ActiveCardStyle = CardStyle.
			Border(lipgloss.ThickBorder()).
			BorderForeground(Bronze)

	FavoriteStyle = lipgloss.NewStyle().Foreground(Crimson).Bold(true)
)

// Fetch and export states
var (
	BusyStyle   = lipgloss.NewStyle().Foreground(Sky).Bold(true)
	DoneStyle   = lipgloss.NewStyle().Foreground(Sage).Bold(true)
	FailedStyle = lipgloss.NewStyle().Foreground(Crimson).Bold(true)

	ProgressBarStyle = lipgloss.NewStyle().Foreground(Bronze)
)

// Map
var (
	MapGridStyle = lipgloss.NewStyle().Foreground(Slate)
	MapPinStyle  = lipgloss.NewStyle().Foreground(Crimson).Bold(true)
)

// Tabs and keyword input
var (
	ActiveTabStyle   = lipgloss.NewStyle().Foreground(Bronze).Background(Wall).Padding(0, 2).Bold(true)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(Slate).Padding(0, 2)

	InputStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Umber).Padding(0, 1)
	FocusedInputStyle = InputStyle.BorderForeground(Bronze)
)

// StatusStyle picks the style for a fetch state or export status name.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "loading", "fetching", "writing":
		return BusyStyle
	case "loaded", "complete":
		return DoneStyle
	case "failed", "error":
		return FailedStyle
	default:
		return MutedStyle
	}
}
