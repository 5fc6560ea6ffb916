package theme

import "github.com/charmbracelet/lipgloss"

// Palette follows the product identity: purple for mood, blue for sleep,
// pink for stress, green for positive signals.
var (
	Base     = lipgloss.Color("#1b1526")
	Mantle   = lipgloss.Color("#161021")
	Surface0 = lipgloss.Color("#2f2640")
	Surface1 = lipgloss.Color("#443a58")
	Text     = lipgloss.Color("#e8e3f4")
	Subtext0 = lipgloss.Color("#a79fc0")
	Mood     = lipgloss.Color("#9b87f5")
	Sleep    = lipgloss.Color("#3b82f6")
	Stress   = lipgloss.Color("#ec4899")
	Green    = lipgloss.Color("#34d399")
	Amber    = lipgloss.Color("#f59e0b")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Mood)

	Title    = lipgloss.NewStyle().Foreground(Mood).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Hot      = lipgloss.NewStyle().Foreground(Stress).Bold(true)
	Good     = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Warn     = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	MoodFg   = lipgloss.NewStyle().Foreground(Mood)
	SleepFg  = lipgloss.NewStyle().Foreground(Sleep)
	StressFg = lipgloss.NewStyle().Foreground(Stress)
)
