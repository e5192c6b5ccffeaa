package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/zappabad/kioskboard/internal/tape"
	"github.com/zappabad/kioskboard/tui/styles"
)

// NewsSlot identifies one of the three news display slots.
type NewsSlot int

const (
	SlotSource NewsSlot = iota
	SlotHeadline
	SlotLink
)

// NewsSlotMsg sets one news slot.
type NewsSlotMsg struct {
	Slot  NewsSlot
	Value string
}

const recentCapacity = 8

type recentHeadline struct {
	source   string
	headline string
}

// NewsPanel displays the headline currently selected by the ticker,
// followed by the ones shown before it.
type NewsPanel struct {
	source   string
	headline string
	link     string
	shown    int
	recent   *tape.Tape[recentHeadline]
	focused  bool
	width    int
	height   int
}

// NewNewsPanel creates a new news panel.
func NewNewsPanel() *NewsPanel {
	return &NewsPanel{
		recent: tape.New[recentHeadline](recentCapacity),
	}
}

// Init initializes the panel.
func (p *NewsPanel) Init() tea.Cmd {
	return nil
}

// Set applies a slot update.
func (p *NewsPanel) Set(msg NewsSlotMsg) {
	switch msg.Slot {
	case SlotSource:
		p.source = msg.Value
	case SlotHeadline:
		p.headline = msg.Value
	case SlotLink:
		// the link is written last for each headline
		p.link = msg.Value
		p.shown++
		p.recent.Append(recentHeadline{source: p.source, headline: p.headline})
	}
}

// View renders the panel.
func (p *NewsPanel) View() string {
	var content strings.Builder
	inner := p.width - 4
	if inner < 10 {
		inner = 10
	}

	if p.shown == 0 {
		content.WriteString(styles.MutedStyle.Render("Waiting for news..."))
	} else {
		headlineLines := p.height - 7
		recent := p.Recent(p.height - 14)
		if len(recent) > 0 {
			headlineLines = 3
		}

		content.WriteString(styles.NewsSourceStyle.Render(runewidth.Truncate(p.source, inner, "…")))
		content.WriteString("\n\n")
		content.WriteString(styles.HeadlineStyle.Render(wrap(p.headline, inner, headlineLines)))
		content.WriteString("\n\n")
		content.WriteString(styles.LinkStyle.Render(runewidth.Truncate(p.link, inner, "…")))

		if len(recent) > 0 {
			content.WriteString("\n\n")
			content.WriteString(styles.MutedStyle.Render("Earlier"))
			for i := len(recent) - 1; i >= 0; i-- {
				content.WriteString("\n")
				content.WriteString(styles.MutedStyle.Render(runewidth.Truncate(recent[i], inner, "…")))
			}
		}
	}

	// Apply panel styling
	panelStyle := styles.PanelStyle
	if p.focused {
		panelStyle = styles.FocusedPanelStyle
	}

	title := styles.RenderTitle("📰 News", p.focused)
	panel := lipgloss.JoinVertical(lipgloss.Left, title, content.String())

	return panelStyle.Width(p.width - 2).Height(p.height - 2).Render(panel)
}

// SetFocus sets the focus state of the panel.
func (p *NewsPanel) SetFocus(focused bool) {
	p.focused = focused
}

// SetSize sets the panel dimensions.
func (p *NewsPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Link returns the link of the headline on display.
func (p *NewsPanel) Link() string {
	return p.link
}

// Recent returns up to n headlines shown before the current one, oldest
// first, as "source: headline".
func (p *NewsPanel) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	all := p.recent.Last(n + 1)
	if len(all) < 2 {
		return nil
	}
	out := make([]string, 0, len(all)-1)
	for _, r := range all[:len(all)-1] {
		out = append(out, r.source+": "+r.headline)
	}
	return out
}

// Shown returns how many headlines have been displayed.
func (p *NewsPanel) Shown() int {
	return p.shown
}

// wrap breaks s into lines of at most width cells, keeping at most maxLines
// lines and marking a cut with an ellipsis.
func wrap(s string, width, maxLines int) string {
	if maxLines < 1 {
		maxLines = 1
	}

	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	for i, l := range lines {
		lines[i] = runewidth.Truncate(l, width, "…")
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		last := lines[maxLines-1]
		lines[maxLines-1] = runewidth.Truncate(last+" …", width, "…")
	}
	return strings.Join(lines, "\n")
}
