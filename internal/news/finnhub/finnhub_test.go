package finnhub

import (
	"testing"

	fh "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/go-playground/assert/v2"
	"github.com/zappabad/kioskboard/internal/news"
)

func ptr[T any](v T) *T { return &v }

func TestItems(t *testing.T) {
	res := []fh.MarketNews{
		{
			Source:   ptr("Reuters"),
			Headline: ptr("Stocks close higher"),
			Url:      ptr("https://example.com/stocks"),
		},
		{
			Source: ptr("CNBC"),
			Url:    ptr("https://example.com/empty"),
		},
		{
			Headline: ptr("No source given"),
		},
	}

	want := []news.NewsItem{
		{Source: "Reuters", Headline: "Stocks close higher", URL: "https://example.com/stocks"},
		{Headline: "No source given"},
	}
	assert.Equal(t, want, Items(res))
}

func TestNewSourceDefaults(t *testing.T) {
	s := NewSource("key", "", nil)
	assert.Equal(t, "general", s.category)
	assert.Equal(t, "finnhub", s.Name())
}
