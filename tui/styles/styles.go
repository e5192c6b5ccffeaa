package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7C3AED") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	AccentColor    = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#EF4444") // Red

	// Background colors
	BackgroundColor      = lipgloss.Color("#1F2937")
	PanelBackgroundColor = lipgloss.Color("#111827")
	BorderColor          = lipgloss.Color("#374151")
	FocusBorderColor     = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)
)

// News styles
var (
	NewsSourceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	HeadlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	LinkStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(TextSecondaryColor)
)

// Weather styles
var (
	WeatherHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor)

	WeatherDescriptionStyle = lipgloss.NewStyle().
				Italic(true).
				Foreground(TextSecondaryColor)

	WeatherLabelStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)

	WeatherValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(SecondaryColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(AccentColor)
)

// Helper function to render a title bar for a panel
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}
