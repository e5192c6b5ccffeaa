package panels

import (
	"fmt"
	"path"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/zappabad/kioskboard/tui/styles"
)

// WeatherSlot identifies a weather display field.
type WeatherSlot int

const (
	SlotHeader WeatherSlot = iota
	SlotIcon
	SlotDescription
	SlotRow
)

// WeatherSlotMsg sets one weather field. Row is the 1-based row position
// and is only used with SlotRow.
type WeatherSlotMsg struct {
	Slot  WeatherSlot
	Row   int
	Value string
}

var rowLabels = [...]string{"Feels Like", "Temperature", "Humidity", "Clouds", "Wind"}

// WeatherPanel is the sidebar with the latest weather snapshot.
type WeatherPanel struct {
	header      string
	icon        string
	description string
	rows        [len(rowLabels)]string
	loaded      bool
	focused     bool
	width       int
	height      int
}

// NewWeatherPanel creates a new weather panel.
func NewWeatherPanel() *WeatherPanel {
	return &WeatherPanel{}
}

// Init initializes the panel.
func (p *WeatherPanel) Init() tea.Cmd {
	return nil
}

// Set applies a field update. Rows outside 1..5 are ignored.
func (p *WeatherPanel) Set(msg WeatherSlotMsg) {
	switch msg.Slot {
	case SlotHeader:
		p.header = msg.Value
		p.loaded = true
	case SlotIcon:
		p.icon = msg.Value
	case SlotDescription:
		p.description = msg.Value
	case SlotRow:
		if msg.Row >= 1 && msg.Row <= len(p.rows) {
			p.rows[msg.Row-1] = msg.Value
		}
	}
}

// Row returns the value displayed at the 1-based row position.
func (p *WeatherPanel) Row(pos int) string {
	if pos < 1 || pos > len(p.rows) {
		return ""
	}
	return p.rows[pos-1]
}

// Header returns the displayed location header.
func (p *WeatherPanel) Header() string {
	return p.header
}

// View renders the panel.
func (p *WeatherPanel) View() string {
	var content strings.Builder
	inner := p.width - 4
	if inner < 10 {
		inner = 10
	}

	if !p.loaded {
		content.WriteString(styles.MutedStyle.Render("Waiting for weather..."))
	} else {
		content.WriteString(styles.WeatherHeaderStyle.Render(runewidth.Truncate(p.header, inner, "…")))
		content.WriteString("\n")
		content.WriteString(iconGlyph(p.icon) + " " + styles.MutedStyle.Render(runewidth.Truncate(path.Base(p.icon), inner-3, "…")))
		if p.description != "" {
			content.WriteString("\n")
			content.WriteString(styles.WeatherDescriptionStyle.Render(runewidth.Truncate(p.description, inner, "…")))
		}
		content.WriteString("\n")

		labelWidth := 12
		for i, label := range rowLabels {
			content.WriteString("\n")
			l := styles.WeatherLabelStyle.Render(fmt.Sprintf("%-*s", labelWidth, label))
			v := styles.WeatherValueStyle.Render(runewidth.Truncate(p.rows[i], inner-labelWidth, "…"))
			content.WriteString(l + v)
		}
	}

	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("☀ Weather", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *WeatherPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *WeatherPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// iconGlyph maps an OpenWeather icon file ("10d.png") to a terminal glyph.
func iconGlyph(iconPath string) string {
	code := strings.TrimSuffix(path.Base(iconPath), path.Ext(iconPath))
	if len(code) >= 2 {
		code = code[:2]
	}
	switch code {
	case "01":
		return "☀"
	case "02":
		return "⛅"
	case "03", "04":
		return "☁"
	case "09", "10":
		return "☂"
	case "11":
		return "⚡"
	case "13":
		return "❄"
	case "50":
		return "≋"
	default:
		return "•"
	}
}
