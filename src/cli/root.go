// Package cli implements the weather command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jackwink/weather/src/client"
	"github.com/jackwink/weather/src/format"
	"github.com/jackwink/weather/src/logging"
	"github.com/jackwink/weather/src/printer"
	"github.com/jackwink/weather/src/settings"
	"github.com/jackwink/weather/src/units"
)

// options holds the flag values shared by the command tree.
type options struct {
	sections client.Sections

	units  string
	time   string
	date   string
	metric bool

	configPath string
	baseURL    string
	noColor    bool
	debug      bool

	logger *zap.Logger
}

// NewRootCommand builds the weather command and its subcommands.
func NewRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "weather [location...]",
		Short: "Display the current weather, or forecast",
		Long: `weather prints current conditions, alerts, and hourly or daily forecasts
from Weather Underground. The location is any query the API understands
("Ann Arbor, MI", a zip code, an airport code); without one the location
is looked up from your IP address.

Settings are read from ~/.weatherrc (or $WEATHER_CONFIG), then from the
WEATHER_API_KEY, WEATHER_UNITS, WEATHER_TIME and WEATHER_DATE environment
variables, then from the flags below.`,
		Example: `  weather
  weather -f Ann Arbor, MI
  weather -a -o -t military 48104`,
		Args:          cobra.ArbitraryArgs,
		Version:       client.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, args)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
	}
	cmd.SetVersionTemplate(versionText())
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewUsageError(err.Error())
	})

	f := cmd.Flags()
	f.BoolVarP(&o.sections.Now, "now", "n", false, "Get the current conditions (default)")
	f.BoolVarP(&o.sections.Forecast, "forecast", "f", false, "Get the current forecast")
	f.BoolVarP(&o.sections.Extended, "extended", "e", false, "Get the 10 day forecast")
	f.BoolVarP(&o.sections.Hourly, "hourly", "o", false, "Get the hourly forecast")
	f.BoolVarP(&o.sections.Alerts, "alerts", "a", false, "View any current weather alerts")
	f.StringVarP(&o.time, "time", "t", "", "Time format: "+strings.Join(units.TimeFormatValues(), ", "))
	f.StringVarP(&o.date, "date", "d", "", "Date format: "+strings.Join(units.DateFormatValues(), ", "))
	f.StringVarP(&o.units, "units", "u", "", "Units: "+strings.Join(units.UnitSystemValues(), ", "))
	f.BoolVarP(&o.metric, "metric", "m", false, "Use metric units instead of English units")
	f.StringVar(&o.baseURL, "api-url", client.DefaultBaseURL, "Weather Underground API base URL")
	_ = f.MarkHidden("api-url")
	cmd.MarkFlagsMutuallyExclusive("units", "metric")

	pf := cmd.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "Config file (default $WEATHER_CONFIG or ~/.weatherrc)")
	pf.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	pf.BoolVar(&o.debug, "debug", false, "Log requests and configuration to stderr")

	cmd.AddCommand(newConfigCommand(o), newSetupCommand(o))
	return cmd
}

func versionText() string {
	return fmt.Sprintf("weather v{{.Version}}\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s\n",
		client.GitCommit, client.BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// setup creates the logger and loads an optional .env file from the working
// directory. Variables already set in the environment win.
func (o *options) setup() error {
	logger, err := logging.New(o.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	o.logger = logger

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		o.logger.Warn("ignoring .env file", zap.Error(err))
	}
	return nil
}

func (o *options) store() *settings.Store {
	path := o.configPath
	if path == "" {
		path = settings.DefaultPath()
	}
	return settings.NewStore(path, o.logger)
}

// overrides collects the flags that were set on the command line.
func (o *options) overrides(cmd *cobra.Command) settings.Overrides {
	var ov settings.Overrides
	flags := cmd.Flags()
	if flags.Changed("units") {
		ov.Units = &o.units
	}
	if flags.Changed("metric") {
		u := units.English.String()
		if o.metric {
			u = units.Metric.String()
		}
		ov.Units = &u
	}
	if flags.Changed("time") {
		ov.Time = &o.time
	}
	if flags.Changed("date") {
		ov.Date = &o.date
	}
	return ov
}

// resolve loads the file (creating it on first run), lays the environment
// over it and applies the command-line overrides.
func (o *options) resolve(store *settings.Store, ov settings.Overrides) (settings.Settings, error) {
	persisted, err := store.LoadOrCreate()
	if err != nil {
		return settings.Settings{}, err
	}

	var base settings.Layer
	if persisted != nil {
		base = *persisted
	}
	merged := base.Merge(settings.EnvLayer(os.LookupEnv))
	return settings.Resolve(&merged, ov)
}

func (o *options) run(cmd *cobra.Command, location []string) error {
	store := o.store()
	s, err := o.resolve(store, o.overrides(cmd))
	if err != nil {
		return err
	}
	o.logger.Debug("resolved settings",
		zap.Stringer("units", s.Units),
		zap.Stringer("time", s.Time),
		zap.Stringer("date", s.Date),
	)
	if !s.HasAPIKey() {
		o.logger.Warn("no API key configured, set api_key in the config file or run 'weather setup'",
			zap.String("path", store.Path))
	}

	sections := o.sections.WithDefault()
	c := client.New(s.APIKey, client.WithBaseURL(o.baseURL), client.WithLogger(o.logger))
	data, err := c.Fetch(cmd.Context(), sections, location)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := client.CheckResponse(data); err != nil {
		var amb *client.AmbiguousLocationError
		if errors.As(err, &amb) {
			fmt.Fprintln(out, amb.Error())
			if len(amb.Matches) > 0 {
				fmt.Fprintln(out, amb.Details())
			}
			return NewUsageError(fmt.Sprintf("%q matched %d locations", client.LocationQuery(location), len(amb.Matches)))
		}
		return err
	}

	p := printer.New(out, s, printer.WithColor(colorEnabled(o.noColor, os.Getenv, out)))
	return printReport(out, p, sections, data)
}

// printReport writes the selected sections in a fixed order, each followed
// by a blank line.
func printReport(out io.Writer, p *printer.Printer, s client.Sections, data format.Record) error {
	var steps []func() error
	if s.Alerts {
		steps = append(steps, func() error { return p.Alerts(data) })
	}
	if s.Now {
		steps = append(steps, func() error {
			obs, err := format.LookupRecord(data, "current_observation")
			if err != nil {
				return err
			}
			return p.CurrentConditions(obs)
		})
	}
	if s.Hourly {
		steps = append(steps, func() error {
			items, err := format.LookupList(data, "hourly_forecast")
			if err != nil {
				return err
			}
			return p.Hourly(items)
		})
	}
	if s.Forecast || s.Extended {
		steps = append(steps, func() error {
			days, err := format.LookupList(data, "forecast", "simpleforecast", "forecastday")
			if err != nil {
				return err
			}
			return p.Forecast(days)
		})
	}

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewUsageError(fmt.Sprintf("%s accepts %d arg(s), received %d", cmd.CommandPath(), n, len(args)))
		}
		return nil
	}
}
