package printer

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackwink/weather/src/format"
	"github.com/jackwink/weather/src/settings"
	"github.com/jackwink/weather/src/table"
	"github.com/jackwink/weather/src/units"
)

func loadFixture(t *testing.T) format.Record {
	t.Helper()
	f, err := os.Open("testdata/response.json")
	require.NoError(t, err)
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var data format.Record
	require.NoError(t, dec.Decode(&data))
	return data
}

func english() settings.Settings { return settings.Defaults() }

func metric() settings.Settings {
	s := settings.Defaults()
	s.Units = units.Metric
	return s
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func assertLines(t *testing.T, want []string, buf *bytes.Buffer) {
	t.Helper()
	if diff := cmp.Diff(want, lines(buf)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestAlerts_None(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, english())

	err := p.Alerts(format.Record{
		"alerts":              []any{},
		"current_observation": map[string]any{"display_location": map[string]any{"full": "Ann Arbor"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "No alerts for Ann Arbor\n", buf.String())
}

func TestAlerts_Message(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, english())

	err := p.Alerts(format.Record{"alerts": []any{
		map[string]any{"message": "1234", "expires": "never!"},
	}})
	require.NoError(t, err)
	assert.Equal(t, "\x1b[91m1234\nExpires: never!\x1b[0m\n", buf.String())
}

func TestAlerts_Fixture(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, english(), WithColor(false))

	require.NoError(t, p.Alerts(loadFixture(t)))
	assertLines(t, []string{
		"...Winter weather advisory remains in effect until 6 AM EST Friday...",
		"Expires: 6:00 AM EST on January 02, 2015",
	}, &buf)
}

func TestAlerts_MissingLocation(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, english()).Alerts(format.Record{"alerts": []any{}})

	var fe *format.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Empty(t, buf.String())
}

func TestCurrentConditions(t *testing.T) {
	obs, err := format.LookupRecord(loadFixture(t), "current_observation")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, english()).CurrentConditions(obs))
	assertLines(t, []string{
		"Weather for Ann Arbor, MI",
		"Currently: 45.3°F (7.4°C) Partly Cloudy",
		"Wind: From the NW at 5.0 MPH",
		"Humidity: 65%",
	}, &buf)

	buf.Reset()
	require.NoError(t, New(&buf, metric()).CurrentConditions(obs))
	assert.Equal(t, "Currently: 7.4°C (45.3°F) Partly Cloudy", lines(&buf)[1])
}

func TestCurrentConditions_Padding(t *testing.T) {
	obs := format.Record{
		"display_location":  map[string]any{"full": "Nome, AK"},
		"temp_f":            json.Number("5"),
		"temp_c":            json.Number("-15"),
		"weather":           "Clear",
		"wind_string":       "Calm",
		"relative_humidity": "80%",
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, english()).CurrentConditions(obs))
	assert.Equal(t, "Currently:   5°F (-15°C) Clear", lines(&buf)[1])
}

func TestCurrentConditions_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, english()).CurrentConditions(format.Record{
		"display_location": map[string]any{"full": "Nowhere"},
		"temp_c":           json.Number("1"),
	})

	var fe *format.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Contains(t, err.Error(), "temp_f")
}

func TestHourly(t *testing.T) {
	items, err := format.LookupList(loadFixture(t), "hourly_forecast")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, english()).Hourly(items))
	assertLines(t, []string{
		"36 Hour Hourly Forecast:",
		"Date         Hour  Temperature  Chance of Rain         Weather",
		"--------------------------------------------------------------------",
		"Jan 1     7:00 AM         31°F             80%            Snow",
		"Jan 1     1:00 PM         34°F             40%  Chance of Snow",
	}, &buf)
}

func TestHourly_Military(t *testing.T) {
	items, err := format.LookupList(loadFixture(t), "hourly_forecast")
	require.NoError(t, err)

	s := english()
	s.Time = units.Military

	var buf bytes.Buffer
	require.NoError(t, New(&buf, s).Hourly(items))
	assertLines(t, []string{
		"36 Hour Hourly Forecast:",
		"Date       Hour  Temperature  Chance of Rain         Weather",
		"------------------------------------------------------------------",
		"Jan 1     07:00         31°F             80%            Snow",
		"Jan 1     13:00         34°F             40%  Chance of Snow",
	}, &buf)
}

func TestHourly_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, english()).Hourly(nil))
	assertLines(t, []string{
		"36 Hour Hourly Forecast:",
		"Date   Hour  Temperature  Chance of Rain  Weather",
		"-------------------------------------------------------",
	}, &buf)
}

func TestHourly_MalformedItem(t *testing.T) {
	var buf bytes.Buffer
	err := New(&buf, english()).Hourly([]any{"not an object"})

	var fe *format.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Empty(t, buf.String())
}

func TestForecast(t *testing.T) {
	days, err := format.LookupList(loadFixture(t), "forecast", "simpleforecast", "forecastday")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, english()).Forecast(days))
	assertLines(t, []string{
		"Weather Forecast:",
		"Date              Condition  Chance of Rain   Temp (Hi/Lo)        Wind  Humidity",
		"---------------------------------------------------------------------------------------",
		"January 1              Snow             80%   34°F /  22°F  ~12mph N         84%",
		"January 2     Partly Cloudy             10%   30°F /  18°F  ~7 mph WNW       70%",
	}, &buf)
}

func TestForecast_MetricWeekday(t *testing.T) {
	days, err := format.LookupList(loadFixture(t), "forecast", "simpleforecast", "forecastday")
	require.NoError(t, err)

	s := metric()
	s.Date = units.Weekday

	var buf bytes.Buffer
	require.NoError(t, New(&buf, s).Forecast(days))
	assertLines(t, []string{
		"Weather Forecast:",
		"Date       Condition  Chance of Rain   Temp (Hi/Lo)        Wind  Humidity",
		"--------------------------------------------------------------------------------",
		"Thu             Snow             80%    1°C /  -6°C  ~19kph N         84%",
		"Fri    Partly Cloudy             10%   -1°C /  -8°C  ~11kph WNW       70%",
	}, &buf)
}

func TestForecast_MissingWind(t *testing.T) {
	days := []any{map[string]any{
		"date":        map[string]any{"day": 1, "monthname": "May"},
		"high":        map[string]any{"fahrenheit": "70"},
		"low":         map[string]any{"fahrenheit": "50"},
		"avewind":     map[string]any{"kph": 3, "dir": "East"},
		"conditions":  "Clear",
		"pop":         0,
		"avehumidity": 40,
	}}

	var buf bytes.Buffer
	err := New(&buf, english()).Forecast(days)

	var fe *format.FormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"mph"}, fe.Keys)
}

func TestPrinter_TableErrorsPropagate(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, english())

	err := p.printTable("caption", [][]string{{"a", "b"}, {"1"}})
	var re *table.RenderError
	require.True(t, errors.As(err, &re))
	assert.Empty(t, buf.String())
}
