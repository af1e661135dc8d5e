// Package settings resolves the configuration for one invocation of the
// weather tool from built-in defaults, the persisted weatherrc file (with the
// WEATHER_* environment laid over it) and command-line overrides.
//
// Resolution is a pure function of its inputs. Nothing is cached between
// calls, so resolving the same inputs twice yields equal Settings.
package settings

import (
	"fmt"

	"github.com/jackwink/weather/src/units"
)

// DummyAPIKey is the placeholder written to a fresh weatherrc file.
const DummyAPIKey = "your-api-key"

// Settings is the fully resolved configuration. Every field is set.
type Settings struct {
	APIKey string           `json:"api_key" yaml:"api_key"`
	Date   units.DateFormat `json:"date" yaml:"date"`
	Time   units.TimeFormat `json:"time" yaml:"time"`
	Units  units.UnitSystem `json:"units" yaml:"units"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		APIKey: DummyAPIKey,
		Date:   units.Date,
		Time:   units.Civilian,
		Units:  units.English,
	}
}

// HasAPIKey reports whether the API key has been changed from the placeholder.
func (s Settings) HasAPIKey() bool {
	return s.APIKey != "" && s.APIKey != DummyAPIKey
}

// Layer is one configuration source. Nil fields are not defined by the
// source and leave the lower layer's value in place.
type Layer struct {
	APIKey *string `json:"api_key,omitempty"`
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
	Units  *string `json:"units,omitempty"`

	// Metric is the boolean written by early versions of the tool. It only
	// applies when Units is not set.
	Metric *bool `json:"metric,omitempty"`
}

// Merge returns l with every field that top defines replaced by top's value.
func (l Layer) Merge(top Layer) Layer {
	if top.APIKey != nil {
		l.APIKey = top.APIKey
	}
	if top.Date != nil {
		l.Date = top.Date
	}
	if top.Time != nil {
		l.Time = top.Time
	}
	if top.Units != nil {
		l.Units = top.Units
		l.Metric = nil
	} else if top.Metric != nil {
		l.Metric = top.Metric
		l.Units = nil
	}
	return l
}

// LayerOf converts resolved settings back into a fully populated layer.
func LayerOf(s Settings) Layer {
	apiKey, date, tf, u := s.APIKey, s.Date.String(), s.Time.String(), s.Units.String()
	return Layer{APIKey: &apiKey, Date: &date, Time: &tf, Units: &u}
}

// Overrides carries the values supplied on the command line. It has no API
// key field; the key only comes from the file or the environment.
type Overrides struct {
	Units *string
	Time  *string
	Date  *string
}

// Resolve computes the effective settings. persisted may be nil when no
// configuration file exists.
func Resolve(persisted *Layer, overrides Overrides) (Settings, error) {
	d := Defaults()
	apiKey := d.APIKey
	unitName, timeName, dateName := d.Units.String(), d.Time.String(), d.Date.String()

	if persisted != nil {
		if persisted.APIKey != nil {
			apiKey = *persisted.APIKey
		}
		switch {
		case persisted.Units != nil:
			unitName = *persisted.Units
		case persisted.Metric != nil && *persisted.Metric:
			unitName = units.Metric.String()
		case persisted.Metric != nil:
			unitName = units.English.String()
		}
		if persisted.Time != nil {
			timeName = *persisted.Time
		}
		if persisted.Date != nil {
			dateName = *persisted.Date
		}
	}

	if overrides.Units != nil {
		unitName = *overrides.Units
	}
	if overrides.Time != nil {
		timeName = *overrides.Time
	}
	if overrides.Date != nil {
		dateName = *overrides.Date
	}

	s := Settings{APIKey: apiKey}
	var err error
	if s.Units, err = units.ParseUnitSystem(unitName); err != nil {
		return Settings{}, &ConfigurationError{Field: "units", Value: unitName, Err: err}
	}
	if s.Time, err = units.ParseTimeFormat(timeName); err != nil {
		return Settings{}, &ConfigurationError{Field: "time", Value: timeName, Err: err}
	}
	if s.Date, err = units.ParseDateFormat(dateName); err != nil {
		return Settings{}, &ConfigurationError{Field: "date", Value: dateName, Err: err}
	}
	return s, nil
}

// ConfigurationError reports a setting that could not be resolved.
type ConfigurationError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid configuration for %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid configuration for %s: %q", e.Field, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
