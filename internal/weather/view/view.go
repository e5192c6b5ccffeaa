package view

import (
	"strings"

	"github.com/zappabad/kioskboard/internal/weather"
)

// IconDir is the path prefix for weather icons.
const IconDir = "/static/weather_icon/"

// DefaultIcon is used when a snapshot carries no icon.
const DefaultIcon = "default.png"

// Value rows, addressed by position.
const (
	RowFeel     = 1
	RowTemp     = 2
	RowHumidity = 3
	RowClouds   = 4
	RowWind     = 5
)

// Sink receives the rendered weather fields.
type Sink interface {
	SetHeader(header string)
	SetIcon(path string)
	SetDescription(description string)
	SetRow(pos int, value string)
}

// Panel formats weather snapshots into a Sink. It keeps no state of its own.
type Panel struct {
	sink Sink
}

// NewPanel creates a Panel that renders into sink.
func NewPanel(sink Sink) *Panel {
	return &Panel{sink: sink}
}

// Render overwrites every displayed field with s.
// A nil snapshot leaves the previous values in place.
func (p *Panel) Render(s *weather.Snapshot) {
	if s == nil {
		return
	}

	p.sink.SetHeader(Header(s))
	p.sink.SetIcon(IconPath(s))
	p.sink.SetDescription(s.Description)
	p.sink.SetRow(RowFeel, s.Feel.String()+"°F")
	p.sink.SetRow(RowTemp, s.Temp.String()+"°F")
	p.sink.SetRow(RowHumidity, s.Humid.String()+"%")
	p.sink.SetRow(RowClouds, s.Clouds.String()+"%")
	p.sink.SetRow(RowWind, s.Wind)
}

// Header builds "City, State - Country", dropping whichever of state and
// country is missing together with its separator.
func Header(s *weather.Snapshot) string {
	state := strings.TrimSpace(s.State)
	country := strings.TrimSpace(s.Country)

	tail := state
	if state != "" && country != "" {
		tail += " - "
	}
	tail += country

	if tail == "" {
		return s.City
	}
	return s.City + ", " + tail
}

// IconPath returns the icon location for s.
func IconPath(s *weather.Snapshot) string {
	icon := strings.TrimSpace(s.Icon)
	if icon == "" {
		icon = DefaultIcon
	}
	return IconDir + icon
}
