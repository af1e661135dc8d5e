// Package format turns single fields of Weather Underground records into
// display strings: temperatures, wind speeds, hours and dates.
//
// The functions are pure. Values are only ever converted to text and padded,
// never parsed or converted arithmetically.
package format

import (
	"fmt"
	"strings"

	"github.com/jackwink/weather/src/units"
)

const degree = "°"

// Temperature formats a temperature pair such as {"fahrenheit": "45",
// "celsius": "7"} in the requested unit system: "  7°C". The explicit unit
// name (celsius, fahrenheit) is preferred over the unit system name (metric,
// english) when both are present.
func Temperature(values Record, u units.UnitSystem) (string, error) {
	var keys []string
	switch u {
	case units.Metric:
		keys = []string{"celsius", "metric"}
	case units.English:
		keys = []string{"fahrenheit", "english"}
	default:
		return "", fmt.Errorf("cannot format temperature: %w", errUnitSystem(u))
	}

	v, ok := first(values, keys...)
	if !ok {
		return "", &FormatError{Field: "temperature", Keys: keys}
	}
	return fmt.Sprintf("%3s%s%s", String(v), degree, u.TemperatureSymbol()), nil
}

// Windspeed formats an average wind record {"kph", "mph", "dir"} as
// "~5 mph Northwest". Cardinal directions are abbreviated to one letter.
func Windspeed(values Record, u units.UnitSystem) (string, error) {
	if !u.Valid() {
		return "", fmt.Errorf("cannot format wind: %w", errUnitSystem(u))
	}
	key := u.SpeedUnit()

	speed, ok := first(values, key)
	if !ok {
		return "", &FormatError{Field: "wind", Keys: []string{key}}
	}
	dir, ok := first(values, "dir")
	if !ok {
		return "", &FormatError{Field: "wind", Keys: []string{"dir"}}
	}
	return fmt.Sprintf("~%-2s%s %-3s", String(speed), key, units.Shorthand(String(dir))), nil
}

// Hour formats the FCTTIME block of an hourly item. Civilian time is the
// pre-formatted "civil" string from the API, passed through as is.
func Hour(fields Record, f units.TimeFormat) (string, error) {
	switch f {
	case units.Military:
		hour, ok := first(fields, "hour_padded")
		if !ok {
			return "", &FormatError{Field: "hour", Keys: []string{"hour_padded"}}
		}
		minute, ok := first(fields, "min")
		if !ok {
			return "", &FormatError{Field: "hour", Keys: []string{"min"}}
		}
		m := String(minute)
		if len(m) < 2 {
			m = strings.Repeat("0", 2-len(m)) + m
		}
		return String(hour) + ":" + m, nil
	case units.Civilian:
		civil, ok := first(fields, "civil")
		if !ok {
			return "", &FormatError{Field: "hour", Keys: []string{"civil"}}
		}
		return String(civil), nil
	}
	return "", fmt.Errorf("cannot format hour: %w %s", units.ErrUnknownValue, f)
}

// Date formats either a forecast day's date block (monthname, day) or an
// hourly item's FCTTIME block (mon_abbrev, mday). The weekday format falls
// back to the month and day when the record has no weekday name.
func Date(fields Record, f units.DateFormat) (string, error) {
	switch f {
	case units.Weekday:
		if wd, ok := first(fields, "weekday_short", "weekday_name_abbrev"); ok {
			return String(wd), nil
		}
	case units.Date:
	default:
		return "", fmt.Errorf("cannot format date: %w %s", units.ErrUnknownValue, f)
	}

	month, day := "monthname", "day"
	if _, ok := first(fields, month); !ok {
		month, day = "mon_abbrev", "mday"
	}
	m, ok := first(fields, month)
	if !ok {
		return "", &FormatError{Field: "date", Keys: []string{"monthname", "mon_abbrev"}}
	}
	d, ok := first(fields, day)
	if !ok {
		return "", &FormatError{Field: "date", Keys: []string{day}}
	}
	return fmt.Sprintf("%s %-3s", String(m), String(d)), nil
}

func errUnitSystem(u units.UnitSystem) error {
	return fmt.Errorf("%w %s", units.ErrUnknownValue, u)
}
