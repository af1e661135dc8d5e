package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jackwink/weather/src/settings"
)

// configKeys are the keys of the weatherrc file, sorted.
var configKeys = []string{"api_key", "date", "time", "units"}

func newConfigCommand(o *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), o.store().Path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings as YAML",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := o.resolve(o.store(), settings.Overrides{})
				if err != nil {
					return err
				}
				data, err := yaml.Marshal(s)
				if err != nil {
					return fmt.Errorf("encode settings: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			},
		},
		&cobra.Command{
			Use:   "get KEY",
			Short: "Print one effective setting",
			Long:  "Print one effective setting. KEY is one of: " + strings.Join(configKeys, ", "),
			Args:  exactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := o.resolve(o.store(), settings.Overrides{})
				if err != nil {
					return err
				}
				value, err := getSetting(s, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Change one setting in the configuration file",
			Long:  "Change one setting in the configuration file. KEY is one of: " + strings.Join(configKeys, ", "),
			Args:  exactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return setSetting(o.store(), args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write a default configuration file",
			Args:  exactArgs(0),
			RunE: func(cmd *cobra.Command, args []string) error {
				store := o.store()
				if err := store.Init(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", store.Path)
				return nil
			},
		},
	)
	return cmd
}

func getSetting(s settings.Settings, key string) (string, error) {
	switch key {
	case "api_key":
		return s.APIKey, nil
	case "date":
		return s.Date.String(), nil
	case "time":
		return s.Time.String(), nil
	case "units":
		return s.Units.String(), nil
	}
	return "", unknownKey(key)
}

// setSetting validates value by resolving the file with it applied, then
// rewrites the file. The environment is not consulted so that it never leaks
// into the saved file.
func setSetting(store *settings.Store, key, value string) error {
	persisted, err := store.LoadOrCreate()
	if err != nil {
		return err
	}
	layer := *persisted

	switch key {
	case "api_key":
		layer.APIKey = &value
	case "date":
		layer.Date = &value
	case "time":
		layer.Time = &value
	case "units":
		layer.Units = &value
		layer.Metric = nil
	default:
		return unknownKey(key)
	}

	s, err := settings.Resolve(&layer, settings.Overrides{})
	if err != nil {
		return err
	}
	return store.Save(s)
}

func unknownKey(key string) error {
	return NewUsageError(fmt.Sprintf("unknown setting %q: expected one of %s", key, strings.Join(configKeys, ", ")))
}
