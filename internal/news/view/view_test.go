package view

import (
	"sync"
	"testing"

	"github.com/zappabad/kioskboard/internal/news"
)

type slots struct {
	Source, Headline, URL string
}

type recordingSink struct {
	mu      sync.Mutex
	current slots
	writes  int
	renders []slots
}

func (s *recordingSink) SetSource(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Source = v
	s.writes++
}

func (s *recordingSink) SetHeadline(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Headline = v
	s.writes++
}

func (s *recordingSink) SetLink(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.URL = v
	s.writes++
	s.renders = append(s.renders, s.current)
}

func TestTickerScenario(t *testing.T) {
	sink := &recordingSink{}
	tk := NewTicker(sink)
	tk.Seed([]news.NewsItem{
		{Source: "AP", Headline: "A", URL: "u1"},
		{Source: "BBC", Headline: "B", URL: "u2"},
	})

	tk.RenderNext()
	tk.RenderNext()
	tk.RenderNext()

	want := []slots{
		{"AP", "A", "u1"},
		{"BBC", "B", "u2"},
		{"AP", "A", "u1"},
	}
	if len(sink.renders) != len(want) {
		t.Fatalf("expected %d renders, got %d", len(want), len(sink.renders))
	}
	for i, w := range want {
		if sink.renders[i] != w {
			t.Errorf("render %d: expected %+v, got %+v", i, w, sink.renders[i])
		}
	}
}

func TestTickerVisitsEveryItemOnce(t *testing.T) {
	for n := 1; n <= 7; n++ {
		items := make([]news.NewsItem, n)
		for i := range items {
			items[i] = news.NewsItem{Source: "src", Headline: string(rune('a' + i)), URL: "u"}
		}

		sink := &recordingSink{}
		tk := NewTicker(sink)
		tk.Seed(items)

		seen := make(map[string]int)
		for i := 0; i < n; i++ {
			tk.RenderNext()
		}
		for _, r := range sink.renders {
			seen[r.Headline]++
		}
		if len(seen) != n {
			t.Errorf("n=%d: expected %d distinct headlines, got %d", n, n, len(seen))
		}
		for h, c := range seen {
			if c != 1 {
				t.Errorf("n=%d: headline %q rendered %d times", n, h, c)
			}
		}
		if tk.Cursor() != 0 {
			t.Errorf("n=%d: expected cursor to wrap to 0, got %d", n, tk.Cursor())
		}

		// next full pass repeats the same order
		tk.RenderNext()
		if sink.renders[n].Headline != sink.renders[0].Headline {
			t.Errorf("n=%d: expected wrap to first headline", n)
		}
	}
}

func TestTickerEmpty(t *testing.T) {
	sink := &recordingSink{}
	tk := NewTicker(sink)
	tk.Seed(nil)

	for i := 0; i < 5; i++ {
		tk.RenderNext()
	}

	if sink.writes != 0 {
		t.Errorf("expected no sink writes, got %d", sink.writes)
	}
	if tk.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", tk.Cursor())
	}
}

func TestTickerSeedResetsCursor(t *testing.T) {
	sink := &recordingSink{}
	tk := NewTicker(sink)
	tk.Seed([]news.NewsItem{{Headline: "A"}, {Headline: "B"}, {Headline: "C"}})
	tk.RenderNext()
	tk.RenderNext()

	tk.Seed([]news.NewsItem{{Headline: "X"}, {Headline: "Y"}})
	if tk.Cursor() != 0 {
		t.Fatalf("expected cursor 0 after seed, got %d", tk.Cursor())
	}
	if tk.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", tk.Len())
	}

	tk.RenderNext()
	if got := sink.renders[len(sink.renders)-1].Headline; got != "X" {
		t.Errorf("expected X after reseed, got %q", got)
	}
}

func TestTickerSeedCopiesInput(t *testing.T) {
	sink := &recordingSink{}
	tk := NewTicker(sink)
	items := []news.NewsItem{{Headline: "A"}}
	tk.Seed(items)
	items[0].Headline = "mutated"

	tk.RenderNext()
	if got := sink.renders[0].Headline; got != "A" {
		t.Errorf("expected A, got %q", got)
	}
}
