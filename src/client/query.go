package client

import "strings"

// Sections selects which parts of the report are requested and printed.
type Sections struct {
	Now      bool
	Forecast bool
	Extended bool
	Hourly   bool
	Alerts   bool
}

// Empty reports whether no section is selected.
func (s Sections) Empty() bool {
	return !(s.Now || s.Forecast || s.Extended || s.Hourly || s.Alerts)
}

// WithDefault returns s, selecting current conditions when nothing else is.
func (s Sections) WithDefault() Sections {
	if s.Empty() {
		s.Now = true
	}
	return s
}

// API feature paths. Conditions and alerts are always fetched together since
// the alerts printer needs the observed location.
const (
	featureConditions = "conditions/alerts/"
	featureHourly     = "hourly/"
	featureForecast   = "forecast/"
	featureExtended   = "forecast10day/"
)

// QueryPath returns the feature segment of the API URL for s.
func QueryPath(s Sections) string {
	var b strings.Builder
	if s.Now || s.Alerts {
		b.WriteString(featureConditions)
	}
	if s.Hourly {
		b.WriteString(featureHourly)
	}
	if s.Forecast {
		b.WriteString(featureForecast)
	}
	if s.Extended {
		b.WriteString(featureExtended)
	}
	return b.String()
}

// LocationQuery joins the words of a location with underscores, or asks the
// API to geolocate the caller's IP address when there are none.
func LocationQuery(words []string) string {
	if len(words) == 0 {
		return "autoip"
	}
	return strings.Join(words, "_")
}
