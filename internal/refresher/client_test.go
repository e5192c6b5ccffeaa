package refresher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
	"github.com/zappabad/kioskboard/internal/news"
	"github.com/zappabad/kioskboard/internal/weather"
)

func newTestServer(t *testing.T, path string, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchNews(t *testing.T) {
	payload := []map[string]string{
		{"src": "AP", "art": "A", "url": "u1"},
		{"src": "BBC", "art": "B", "url": "u2"},
	}
	raw, _ := json.Marshal(payload)
	srv := newTestServer(t, NewsPath, http.StatusOK, string(raw))

	res := NewClient(srv.URL+"/", time.Second, nil).FetchNews(context.Background())

	assert.Equal(t, true, res.OK())
	assert.Equal(t, []news.NewsItem{
		{Source: "AP", Headline: "A", URL: "u1"},
		{Source: "BBC", Headline: "B", URL: "u2"},
	}, res.Value)
	assert.NotEqual(t, time.Time{}, res.FetchedAt)
}

func TestFetchNewsBannedSource(t *testing.T) {
	srv := newTestServer(t, NewsPath, http.StatusOK, `[{"src":"AP","art":"A","url":"u1"},{"src":"Spam","art":"S","url":"u2"}]`)

	res := NewClient(srv.URL, time.Second, []string{"spam"}).FetchNews(context.Background())

	assert.Equal(t, true, res.OK())
	assert.Equal(t, 1, len(res.Value))
	assert.Equal(t, "AP", res.Value[0].Source)
}

func TestFetchNewsNull(t *testing.T) {
	srv := newTestServer(t, NewsPath, http.StatusOK, "null")

	res := NewClient(srv.URL, time.Second, nil).FetchNews(context.Background())

	assert.Equal(t, true, res.OK())
	assert.Equal(t, 0, len(res.Value))
}

func TestFetchNewsStatus(t *testing.T) {
	srv := newTestServer(t, NewsPath, http.StatusInternalServerError, "boom")

	res := NewClient(srv.URL, time.Second, nil).FetchNews(context.Background())

	assert.Equal(t, false, res.OK())
	assert.Equal(t, true, errors.Is(res.Err, ErrStatus))
	assert.Equal(t, 0, len(res.Value))
}

func TestFetchNewsMalformed(t *testing.T) {
	srv := newTestServer(t, NewsPath, http.StatusOK, `[{"src":`)

	res := NewClient(srv.URL, time.Second, nil).FetchNews(context.Background())

	assert.Equal(t, false, res.OK())
}

func TestFetchNewsUnreachable(t *testing.T) {
	srv := newTestServer(t, NewsPath, http.StatusOK, "[]")
	url := srv.URL
	srv.Close()

	res := NewClient(url, time.Second, nil).FetchNews(context.Background())

	assert.Equal(t, false, res.OK())
}

func TestFetchWeather(t *testing.T) {
	srv := newTestServer(t, WeatherPath, http.StatusOK,
		`{"city":"X","temp":70,"feel":68,"humid":40,"clouds":10,"wind":"5mph NE"}`)

	res := NewClient(srv.URL, time.Second, nil).FetchWeather(context.Background())

	assert.Equal(t, true, res.OK())
	assert.Equal(t, true, res.Value != nil)
	assert.Equal(t, "X", res.Value.City)
	assert.Equal(t, weather.Reading("70"), res.Value.Temp)
	assert.Equal(t, "", res.Value.Icon)
}

func TestFetchWeatherAbsent(t *testing.T) {
	for _, body := range []string{"", "null", "false", "0", `""`} {
		srv := newTestServer(t, WeatherPath, http.StatusOK, body)

		res := NewClient(srv.URL, time.Second, nil).FetchWeather(context.Background())

		assert.Equal(t, true, res.OK())
		assert.Equal(t, true, res.Value == nil)
	}
}

func TestFetchWeatherMalformed(t *testing.T) {
	srv := newTestServer(t, WeatherPath, http.StatusOK, `{"city":`)

	res := NewClient(srv.URL, time.Second, nil).FetchWeather(context.Background())

	assert.Equal(t, false, res.OK())
	assert.Equal(t, true, res.Value == nil)
}

func TestFetchCancelled(t *testing.T) {
	srv := newTestServer(t, WeatherPath, http.StatusOK, `{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := NewClient(srv.URL, time.Second, nil).FetchWeather(ctx)

	assert.Equal(t, true, errors.Is(res.Err, context.Canceled))
}
