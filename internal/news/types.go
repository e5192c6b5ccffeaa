package news

import "strings"

// NewsItem represents one headline shown by the ticker.
type NewsItem struct {
	Source   string `json:"src"`
	Headline string `json:"art"`
	URL      string `json:"url"`
}

// WithoutSources returns the items whose source is not in banned.
// Matching ignores case and surrounding whitespace. The input slice is not modified.
func WithoutSources(items []NewsItem, banned []string) []NewsItem {
	if len(banned) == 0 {
		return items
	}

	skip := make(map[string]struct{}, len(banned))
	for _, b := range banned {
		skip[normalizeSource(b)] = struct{}{}
	}

	out := make([]NewsItem, 0, len(items))
	for _, item := range items {
		if _, ok := skip[normalizeSource(item.Source)]; ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

func normalizeSource(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
