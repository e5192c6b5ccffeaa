package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zappabad/kioskboard/tui/panels"
)

// Sink turns news and weather renders into panel messages for the model.
// Writes block until the model reads them or the sink is closed.
type Sink struct {
	updates   chan tea.Msg
	closed    chan struct{}
	closeOnce sync.Once
}

// NewSink creates a Sink with the given buffer size.
func NewSink(buffer int) *Sink {
	if buffer <= 0 {
		buffer = 64
	}
	return &Sink{
		updates: make(chan tea.Msg, buffer),
		closed:  make(chan struct{}),
	}
}

func (s *Sink) send(msg tea.Msg) {
	select {
	case s.updates <- msg:
	case <-s.closed:
	}
}

// SetSource implements the news view sink.
func (s *Sink) SetSource(source string) {
	s.send(panels.NewsSlotMsg{Slot: panels.SlotSource, Value: source})
}

// SetHeadline implements the news view sink.
func (s *Sink) SetHeadline(headline string) {
	s.send(panels.NewsSlotMsg{Slot: panels.SlotHeadline, Value: headline})
}

// SetLink implements the news view sink.
func (s *Sink) SetLink(url string) {
	s.send(panels.NewsSlotMsg{Slot: panels.SlotLink, Value: url})
}

// SetHeader implements the weather view sink.
func (s *Sink) SetHeader(header string) {
	s.send(panels.WeatherSlotMsg{Slot: panels.SlotHeader, Value: header})
}

// SetIcon implements the weather view sink.
func (s *Sink) SetIcon(path string) {
	s.send(panels.WeatherSlotMsg{Slot: panels.SlotIcon, Value: path})
}

// SetDescription implements the weather view sink.
func (s *Sink) SetDescription(description string) {
	s.send(panels.WeatherSlotMsg{Slot: panels.SlotDescription, Value: description})
}

// SetRow implements the weather view sink.
func (s *Sink) SetRow(pos int, value string) {
	s.send(panels.WeatherSlotMsg{Slot: panels.SlotRow, Row: pos, Value: value})
}

// Updates returns the panel message channel.
func (s *Sink) Updates() <-chan tea.Msg {
	return s.updates
}

// Close makes every further write a no-op and releases blocked writers.
func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}
