package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kangmoesss/ckanext-dcat/config"
	"github.com/kangmoesss/ckanext-dcat/licenses"
	"github.com/kangmoesss/ckanext-dcat/profiles"
	"github.com/kangmoesss/ckanext-dcat/processor"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	configPath   string
	licensesPath string
	profileNames []string
	compat       bool
	logLevel     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "dcat",
		Short:         "Convert between dataset records and DCAT RDF",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML site configuration")
	cmd.PersistentFlags().StringVar(&opts.licensesPath, "licenses", "", "Path to a JSON license registry")
	cmd.PersistentFlags().StringSliceVarP(&opts.profileNames, "profile", "p", processor.DefaultProfiles, "Profile chain, applied in order")
	cmd.PersistentFlags().BoolVar(&opts.compat, "compat", false, "Emit records in the legacy layout")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(newParseCommand(opts))
	cmd.AddCommand(newSerializeCommand(opts))
	cmd.AddCommand(newCatalogCommand(opts))
	return cmd
}

func (o *rootOptions) setupLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(o.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// processorOptions assembles the shared processor configuration from the
// root flags.
func (o *rootOptions) processorOptions() (processor.Options, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return processor.Options{}, err
		}
		cfg = loaded
	}

	var registry licenses.Register
	if o.licensesPath != "" {
		loaded, err := licenses.LoadFile(o.licensesPath)
		if err != nil {
			return processor.Options{}, err
		}
		registry = loaded
	}

	return processor.Options{
		Profiles: o.profileNames,
		Profile: profiles.Options{
			Config:        cfg,
			Compatibility: o.compat,
			Licenses:      registry,
		},
		Logger: o.setupLogger(),
	}, nil
}
