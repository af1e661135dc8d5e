// Package printer writes Weather Underground results as formatted text:
// alerts, current conditions, the hourly table and the forecast table.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/jackwink/weather/src/format"
	"github.com/jackwink/weather/src/settings"
	"github.com/jackwink/weather/src/table"
	"github.com/jackwink/weather/src/units"
)

// ANSI sequences wrapped around each alert.
const (
	alertStart = "\x1b[91m"
	alertEnd   = "\x1b[0m"
)

var (
	hourlyHeader   = []string{"Date", "Hour", "Temperature", "Chance of Rain", "Weather"}
	forecastHeader = []string{"Date", "Condition", "Chance of Rain", "Temp (Hi/Lo)", "Wind", "Humidity"}
)

// Printer renders results for one invocation using its resolved settings.
type Printer struct {
	out      io.Writer
	settings settings.Settings
	color    bool
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor enables or disables the terminal colour around alerts.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.color = enabled
	}
}

// New returns a Printer writing to out. Colour is on unless disabled.
func New(out io.Writer, s settings.Settings, opts ...Option) *Printer {
	p := &Printer{out: out, settings: s, color: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Alerts prints each alert in data["alerts"] with its expiry, or a single
// "No alerts" line naming the observed location.
func (p *Printer) Alerts(data format.Record) error {
	alerts, err := format.LookupList(data, "alerts")
	if err != nil {
		return err
	}

	if len(alerts) == 0 {
		location, err := format.LookupString(data, "current_observation", "display_location", "full")
		if err != nil {
			return err
		}
		return p.println("No alerts for " + location)
	}

	for i, a := range alerts {
		alert, ok := a.(map[string]any)
		if !ok {
			return &format.FormatError{Field: fmt.Sprintf("alert %d", i), Keys: []string{"message", "expires"}}
		}
		message, err := format.LookupString(alert, "message")
		if err != nil {
			return err
		}
		expires, err := format.LookupString(alert, "expires")
		if err != nil {
			return err
		}

		text := strings.TrimRight(message, "\n") + "\nExpires: " + expires
		if p.color {
			text = alertStart + text + alertEnd
		}
		if err := p.println(text); err != nil {
			return err
		}
	}
	return nil
}

// CurrentConditions prints the current_observation block, listing the
// temperature in the preferred unit first.
func (p *Printer) CurrentConditions(obs format.Record) error {
	location, err := format.LookupString(obs, "display_location", "full")
	if err != nil {
		return err
	}
	tempC, err := format.Lookup(obs, "temp_c")
	if err != nil {
		return err
	}
	tempF, err := format.Lookup(obs, "temp_f")
	if err != nil {
		return err
	}
	weather, err := format.LookupString(obs, "weather")
	if err != nil {
		return err
	}
	wind, err := format.LookupString(obs, "wind_string")
	if err != nil {
		return err
	}
	humidity, err := format.LookupString(obs, "relative_humidity")
	if err != nil {
		return err
	}

	celsius, err := format.Temperature(format.Record{"metric": tempC}, units.Metric)
	if err != nil {
		return err
	}
	fahrenheit, err := format.Temperature(format.Record{"english": tempF}, units.English)
	if err != nil {
		return err
	}

	preferred, other := fahrenheit, celsius
	switch p.settings.Units {
	case units.Metric:
		preferred, other = celsius, fahrenheit
	case units.English:
	default:
		return &settings.ConfigurationError{Field: "units", Value: p.settings.Units.String()}
	}

	return p.println(
		"Weather for "+location,
		fmt.Sprintf("Currently: %s (%s) %s", preferred, other, weather),
		"Wind: "+wind,
		"Humidity: "+humidity,
	)
}

// Hourly prints the hourly_forecast list as a table.
func (p *Printer) Hourly(items []any) error {
	rows := [][]string{hourlyHeader}
	for i, it := range items {
		item, ok := it.(map[string]any)
		if !ok {
			return &format.FormatError{Field: fmt.Sprintf("hourly item %d", i), Keys: []string{"FCTTIME"}}
		}
		row, err := p.hourlyRow(item)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return p.printTable("36 Hour Hourly Forecast:", rows)
}

func (p *Printer) hourlyRow(item format.Record) ([]string, error) {
	fcttime, err := format.LookupRecord(item, "FCTTIME")
	if err != nil {
		return nil, err
	}
	temps, err := format.LookupRecord(item, "temp")
	if err != nil {
		return nil, err
	}
	pop, err := format.LookupString(item, "pop")
	if err != nil {
		return nil, err
	}
	condition, err := format.LookupString(item, "condition")
	if err != nil {
		return nil, err
	}

	date, err := format.Date(fcttime, p.settings.Date)
	if err != nil {
		return nil, err
	}
	hour, err := format.Hour(fcttime, p.settings.Time)
	if err != nil {
		return nil, err
	}
	temp, err := format.Temperature(temps, p.settings.Units)
	if err != nil {
		return nil, err
	}
	return []string{date, hour, temp, pop + "%", condition}, nil
}

// Forecast prints the simpleforecast forecastday list as a table.
func (p *Printer) Forecast(days []any) error {
	rows := [][]string{forecastHeader}
	for i, d := range days {
		day, ok := d.(map[string]any)
		if !ok {
			return &format.FormatError{Field: fmt.Sprintf("forecast day %d", i), Keys: []string{"date"}}
		}
		row, err := p.forecastRow(day)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}
	return p.printTable("Weather Forecast:", rows)
}

func (p *Printer) forecastRow(day format.Record) ([]string, error) {
	dateFields, err := format.LookupRecord(day, "date")
	if err != nil {
		return nil, err
	}
	high, err := format.LookupRecord(day, "high")
	if err != nil {
		return nil, err
	}
	low, err := format.LookupRecord(day, "low")
	if err != nil {
		return nil, err
	}
	avewind, err := format.LookupRecord(day, "avewind")
	if err != nil {
		return nil, err
	}
	conditions, err := format.LookupString(day, "conditions")
	if err != nil {
		return nil, err
	}
	pop, err := format.LookupString(day, "pop")
	if err != nil {
		return nil, err
	}
	humidity, err := format.LookupString(day, "avehumidity")
	if err != nil {
		return nil, err
	}

	date, err := format.Date(dateFields, p.settings.Date)
	if err != nil {
		return nil, err
	}
	hi, err := format.Temperature(high, p.settings.Units)
	if err != nil {
		return nil, err
	}
	lo, err := format.Temperature(low, p.settings.Units)
	if err != nil {
		return nil, err
	}
	wind, err := format.Windspeed(avewind, p.settings.Units)
	if err != nil {
		return nil, err
	}
	return []string{date, conditions, pop + "%", hi + " / " + lo, wind, humidity + "%"}, nil
}

func (p *Printer) printTable(caption string, rows [][]string) error {
	lines, err := table.Render(rows)
	if err != nil {
		return err
	}
	return p.println(append([]string{caption}, lines...)...)
}

func (p *Printer) println(lines ...string) error {
	for _, line := range lines {
		if _, err := io.WriteString(p.out, line+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}
