package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zappabad/kioskboard/internal/refresh"
	"github.com/zappabad/kioskboard/tui/panels"
)

type fakeRefresher struct {
	events chan refresh.Event
	state  refresh.NewsState
}

func (f *fakeRefresher) Events() <-chan refresh.Event  { return f.events }
func (f *fakeRefresher) NewsState() refresh.NewsState { return f.state }

func newTestModel() (*Model, *Sink, *fakeRefresher) {
	sink := NewSink(8)
	r := &fakeRefresher{events: make(chan refresh.Event, 8), state: refresh.NewsCycling}
	m := NewModel(sink, r)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, sink, r
}

func TestSinkWritesPanelMessages(t *testing.T) {
	sink := NewSink(8)
	sink.SetSource("AP")
	sink.SetRow(2, "70°F")

	msg := <-sink.Updates()
	news, ok := msg.(panels.NewsSlotMsg)
	if !ok || news.Slot != panels.SlotSource || news.Value != "AP" {
		t.Fatalf("unexpected news message %#v", msg)
	}

	msg = <-sink.Updates()
	row, ok := msg.(panels.WeatherSlotMsg)
	if !ok || row.Slot != panels.SlotRow || row.Row != 2 || row.Value != "70°F" {
		t.Fatalf("unexpected weather message %#v", msg)
	}
}

func TestSinkCloseReleasesWriters(t *testing.T) {
	sink := NewSink(1)
	sink.SetLink("https://example.com/a")

	done := make(chan struct{})
	go func() {
		sink.SetLink("https://example.com/b")
		close(done)
	}()

	sink.Close()
	sink.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("write still blocked after close")
	}
}

func TestModelAppliesSlotMessages(t *testing.T) {
	m, _, _ := newTestModel()

	m.Update(panels.NewsSlotMsg{Slot: panels.SlotSource, Value: "BBC"})
	m.Update(panels.NewsSlotMsg{Slot: panels.SlotHeadline, Value: "Rates held"})
	_, cmd := m.Update(panels.NewsSlotMsg{Slot: panels.SlotLink, Value: "https://example.com/r"})
	if cmd == nil {
		t.Error("expected model to keep listening for updates")
	}
	m.Update(panels.WeatherSlotMsg{Slot: panels.SlotHeader, Value: "Reno, NV - USA"})

	view := m.View()
	for _, want := range []string{"BBC", "Rates held", "Reno, NV - USA"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
	if m.newsPanel.Link() != "https://example.com/r" {
		t.Errorf("unexpected link %q", m.newsPanel.Link())
	}
}

func TestModelTracksRefreshEvents(t *testing.T) {
	m, _, _ := newTestModel()
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	m.Update(eventMsg{Task: refresh.TaskNews, Kind: refresh.FetchStarted, Time: at})
	if !m.news.fetching {
		t.Fatal("expected news to be fetching")
	}

	m.Update(eventMsg{Task: refresh.TaskNews, Kind: refresh.FetchSucceeded, Time: at, Count: 3})
	if m.news.fetching || m.news.count != 3 || !m.news.lastOK.Equal(at) {
		t.Errorf("unexpected news status %+v", m.news)
	}
	if !strings.Contains(m.View(), "09:30") {
		t.Error("expected last refresh time in status bar")
	}

	m.Update(eventMsg{Task: refresh.TaskWeather, Kind: refresh.FetchFailed, Time: at, Err: errors.New("boom")})
	if m.weather.err == nil {
		t.Error("expected weather failure to be recorded")
	}
	if m.news.err != nil {
		t.Error("weather failure should not touch news status")
	}
	if !strings.Contains(m.View(), "failed") {
		t.Error("expected failure in status bar")
	}
}

func TestModelKeys(t *testing.T) {
	m, _, _ := newTestModel()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != FocusWeather {
		t.Errorf("expected weather focus, got %d", m.focusedPanel)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedPanel != FocusNews {
		t.Errorf("expected news focus, got %d", m.focusedPanel)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !m.help.ShowAll {
		t.Error("expected full help after ?")
	}

	// Nothing shown yet, so there is no link to copy.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if m.statusMsg != "" {
		t.Errorf("expected no copy without a link, got %q", m.statusMsg)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
