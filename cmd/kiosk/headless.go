package main

import (
	"log/slog"
	"sync"

	weatherview "github.com/zappabad/kioskboard/internal/weather/view"
)

// logSink writes each rendered headline and weather snapshot to the logger.
type logSink struct {
	log *slog.Logger

	mu       sync.Mutex
	source   string
	headline string
	header   string
	icon     string
	desc     string
	rows     [weatherview.RowWind + 1]string
}

func newLogSink(logger *slog.Logger) *logSink {
	return &logSink{log: logger}
}

func (s *logSink) SetSource(source string) {
	s.mu.Lock()
	s.source = source
	s.mu.Unlock()
}

func (s *logSink) SetHeadline(headline string) {
	s.mu.Lock()
	s.headline = headline
	s.mu.Unlock()
}

// SetLink is the last news write for an item.
func (s *logSink) SetLink(url string) {
	s.mu.Lock()
	source, headline := s.source, s.headline
	s.mu.Unlock()

	s.log.Info("headline", "source", source, "headline", headline, "url", url)
}

func (s *logSink) SetHeader(header string) {
	s.mu.Lock()
	s.header = header
	s.mu.Unlock()
}

func (s *logSink) SetIcon(path string) {
	s.mu.Lock()
	s.icon = path
	s.mu.Unlock()
}

func (s *logSink) SetDescription(description string) {
	s.mu.Lock()
	s.desc = description
	s.mu.Unlock()
}

// SetRow logs the snapshot once the wind row, the last one, is written.
func (s *logSink) SetRow(pos int, value string) {
	if pos < weatherview.RowFeel || pos > weatherview.RowWind {
		return
	}

	s.mu.Lock()
	s.rows[pos] = value
	if pos != weatherview.RowWind {
		s.mu.Unlock()
		return
	}
	header, icon, desc, rows := s.header, s.icon, s.desc, s.rows
	s.mu.Unlock()

	s.log.Info("weather",
		"location", header,
		"icon", icon,
		"description", desc,
		"feel", rows[weatherview.RowFeel],
		"temp", rows[weatherview.RowTemp],
		"humid", rows[weatherview.RowHumidity],
		"clouds", rows[weatherview.RowClouds],
		"wind", rows[weatherview.RowWind],
	)
}
