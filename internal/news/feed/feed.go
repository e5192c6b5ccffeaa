package feed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/zappabad/kioskboard/internal/news"
	"github.com/zappabad/kioskboard/internal/refresher"
)

// Source reads headlines from an RSS or Atom feed.
type Source struct {
	url           string
	parser        *gofeed.Parser
	bannedSources []string
}

// NewSource creates a Source for the feed at url.
func NewSource(url string, timeout time.Duration, bannedSources []string) *Source {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	fp := gofeed.NewParser()
	fp.Client = &http.Client{Timeout: timeout}
	return &Source{
		url:           url,
		parser:        fp,
		bannedSources: bannedSources,
	}
}

// Name identifies the news source in logs.
func (s *Source) Name() string {
	return "feed"
}

// FetchNews parses the feed and maps each entry to a news item. The item
// source is the entry author when present, otherwise the feed title.
func (s *Source) FetchNews(ctx context.Context) refresher.Result[[]news.NewsItem] {
	f, err := s.parser.ParseURLWithContext(s.url, ctx)
	if err != nil {
		return refresher.Fail[[]news.NewsItem](fmt.Errorf("feed fetch: %w", err))
	}
	return refresher.Ok(news.WithoutSources(Items(f), s.bannedSources))
}

// Items converts the entries of f, skipping entries without a title.
func Items(f *gofeed.Feed) []news.NewsItem {
	items := make([]news.NewsItem, 0, len(f.Items))
	for _, it := range f.Items {
		title := strings.TrimSpace(it.Title)
		if title == "" {
			continue
		}

		source := strings.TrimSpace(f.Title)
		if it.Author != nil && strings.TrimSpace(it.Author.Name) != "" {
			source = strings.TrimSpace(it.Author.Name)
		}

		items = append(items, news.NewsItem{
			Source:   source,
			Headline: title,
			URL:      it.Link,
		})
	}
	return items
}
