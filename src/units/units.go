// Package units defines the closed value sets that control how weather data is
// displayed: the unit system, the clock format and the date format.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownValue is wrapped by every Parse function when the input is not a
// member of the enumeration.
var ErrUnknownValue = errors.New("unknown value")

// UnitSystem selects metric or english units for temperature and wind speed.
// The zero value is not a valid unit system.
type UnitSystem uint8

const (
	Metric UnitSystem = iota + 1
	English
)

// TimeFormat selects 24-hour or 12-hour clock rendering.
type TimeFormat uint8

const (
	Military TimeFormat = iota + 1
	Civilian
)

// DateFormat selects month/day or weekday rendering.
type DateFormat uint8

const (
	Date DateFormat = iota + 1
	Weekday
)

var (
	unitNames = map[UnitSystem]string{Metric: "metric", English: "english"}
	timeNames = map[TimeFormat]string{Military: "military", Civilian: "civilian"}
	dateNames = map[DateFormat]string{Date: "date", Weekday: "weekday"}
)

// UnitSystemValues returns the accepted unit system names.
func UnitSystemValues() []string { return []string{"metric", "english"} }

// TimeFormatValues returns the accepted time format names.
func TimeFormatValues() []string { return []string{"military", "civilian"} }

// DateFormatValues returns the accepted date format names.
func DateFormatValues() []string { return []string{"date", "weekday"} }

// ParseUnitSystem parses "metric" or "english".
func ParseUnitSystem(s string) (UnitSystem, error) {
	for u, name := range unitNames {
		if s == name {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %s", ErrUnknownValue, s, strings.Join(UnitSystemValues(), ", "))
}

// ParseTimeFormat parses "military" or "civilian".
func ParseTimeFormat(s string) (TimeFormat, error) {
	for f, name := range timeNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %s", ErrUnknownValue, s, strings.Join(TimeFormatValues(), ", "))
}

// ParseDateFormat parses "date" or "weekday".
func ParseDateFormat(s string) (DateFormat, error) {
	for f, name := range dateNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w %q: expected one of %s", ErrUnknownValue, s, strings.Join(DateFormatValues(), ", "))
}

// Valid reports whether u is Metric or English.
func (u UnitSystem) Valid() bool {
	_, ok := unitNames[u]
	return ok
}

func (f TimeFormat) Valid() bool {
	_, ok := timeNames[f]
	return ok
}

func (f DateFormat) Valid() bool {
	_, ok := dateNames[f]
	return ok
}

func (u UnitSystem) String() string {
	if name, ok := unitNames[u]; ok {
		return name
	}
	return fmt.Sprintf("UnitSystem(%d)", uint8(u))
}

func (f TimeFormat) String() string {
	if name, ok := timeNames[f]; ok {
		return name
	}
	return fmt.Sprintf("TimeFormat(%d)", uint8(f))
}

func (f DateFormat) String() string {
	if name, ok := dateNames[f]; ok {
		return name
	}
	return fmt.Sprintf("DateFormat(%d)", uint8(f))
}

// TemperatureSymbol returns the letter printed after the degree sign.
func (u UnitSystem) TemperatureSymbol() string {
	switch u {
	case Metric:
		return "C"
	case English:
		return "F"
	}
	return ""
}

// SpeedUnit returns the wind speed abbreviation, which is also the key the
// upstream API uses for the value.
func (u UnitSystem) SpeedUnit() string {
	switch u {
	case Metric:
		return "kph"
	case English:
		return "mph"
	}
	return ""
}

func (u UnitSystem) MarshalText() ([]byte, error) {
	if !u.Valid() {
		return nil, fmt.Errorf("units: cannot marshal %s", u)
	}
	return []byte(u.String()), nil
}

func (u *UnitSystem) UnmarshalText(text []byte) error {
	v, err := ParseUnitSystem(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (f TimeFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("units: cannot marshal %s", f)
	}
	return []byte(f.String()), nil
}

func (f *TimeFormat) UnmarshalText(text []byte) error {
	v, err := ParseTimeFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (f DateFormat) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("units: cannot marshal %s", f)
	}
	return []byte(f.String()), nil
}

func (f *DateFormat) UnmarshalText(text []byte) error {
	v, err := ParseDateFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
