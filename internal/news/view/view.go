package view

import (
	"sync"

	"github.com/zappabad/kioskboard/internal/news"
)

// Sink receives the rendered news slots.
type Sink interface {
	SetSource(source string)
	SetHeadline(headline string)
	SetLink(url string)
}

// Ticker cycles through a list of news items, rendering one per call.
type Ticker struct {
	mu     sync.Mutex
	sink   Sink
	items  []news.NewsItem
	cursor int
}

// NewTicker creates an empty Ticker that renders into sink.
func NewTicker(sink Sink) *Ticker {
	return &Ticker{sink: sink}
}

// Seed replaces the current items and resets the cursor.
// It does not render and does not touch any running cycling loop.
func (t *Ticker) Seed(items []news.NewsItem) {
	cp := make([]news.NewsItem, len(items))
	copy(cp, items)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = cp
	t.cursor = 0
}

// RenderNext writes the item under the cursor to the sink and advances
// the cursor circularly. Does nothing when there are no items.
func (t *Ticker) RenderNext() {
	t.mu.Lock()
	if len(t.items) == 0 {
		t.mu.Unlock()
		return
	}
	item := t.items[t.cursor]
	t.cursor = (t.cursor + 1) % len(t.items)
	t.mu.Unlock()

	t.sink.SetSource(item.Source)
	t.sink.SetHeadline(item.Headline)
	t.sink.SetLink(item.URL)
}

// Len returns the number of seeded items.
func (t *Ticker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// Cursor returns the index of the next item to render.
func (t *Ticker) Cursor() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor
}
