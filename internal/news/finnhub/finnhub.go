package finnhub

import (
	"context"
	"fmt"

	fh "github.com/Finnhub-Stock-API/finnhub-go/v2"
	"github.com/zappabad/kioskboard/internal/news"
	"github.com/zappabad/kioskboard/internal/refresher"
)

// Source reads general market news from Finnhub.
type Source struct {
	client        *fh.DefaultApiService
	category      string
	bannedSources []string
}

// NewSource creates a Source authenticated with apiKey.
func NewSource(apiKey, category string, bannedSources []string) *Source {
	if category == "" {
		category = "general"
	}
	cfg := fh.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &Source{
		client:        fh.NewAPIClient(cfg).DefaultApi,
		category:      category,
		bannedSources: bannedSources,
	}
}

// Name identifies the news source in logs.
func (s *Source) Name() string {
	return "finnhub"
}

// FetchNews returns the latest market headlines.
func (s *Source) FetchNews(ctx context.Context) refresher.Result[[]news.NewsItem] {
	res, _, err := s.client.MarketNews(ctx).Category(s.category).Execute()
	if err != nil {
		return refresher.Fail[[]news.NewsItem](fmt.Errorf("finnhub fetch: %w", err))
	}

	return refresher.Ok(news.WithoutSources(Items(res), s.bannedSources))
}

// Items maps Finnhub market news to headlines. Entries without a headline
// are skipped.
func Items(res []fh.MarketNews) []news.NewsItem {
	items := make([]news.NewsItem, 0, len(res))
	for _, n := range res {
		var item news.NewsItem
		if n.Source != nil {
			item.Source = *n.Source
		}
		if n.Headline != nil {
			item.Headline = *n.Headline
		}
		if n.Url != nil {
			item.URL = *n.Url
		}
		if item.Headline == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
