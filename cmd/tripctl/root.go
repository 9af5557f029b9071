package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tripnest/storefront/internal/app"
	"github.com/tripnest/storefront/internal/config"
	"github.com/tripnest/storefront/internal/infrastructure/logger"
)

// rootOptions holds the persistent flags and the shared dependencies of every subcommand.
type rootOptions struct {
	verbose bool
	noColor bool

	out    io.Writer
	errOut io.Writer

	// newStorefront builds the search services from configuration
	newStorefront func(cfg *config.Config, log *logger.Logger) (*app.Storefront, error)
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{
		out:           out,
		errOut:        errOut,
		newStorefront: app.New,
	}
	return opts.command()
}

func (o *rootOptions) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tripctl",
		Short: "Search the travel storefront from the command line",
		Long: `tripctl runs storefront searches against the bundled inventory and prints
one page of filtered, sorted results with the cheapest price per filter value.

Configuration is read from the same environment variables as the server.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if o.noColor {
				color.NoColor = true
			}
			if o.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.WarnLevel)
			}
		},
	}
	cmd.SetOut(o.out)
	cmd.SetErr(o.errOut)

	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "log search execution to stderr")
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(
		newSearchCmd(o),
		newVerticalsCmd(o),
	)
	return cmd
}

// load reads configuration and builds the storefront with a console logger on stderr.
func (o *rootOptions) load() (*app.Storefront, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logCfg := logger.DefaultConfig()
	logCfg.Format = "console"
	logCfg.NoColor = o.noColor
	logCfg.Level = "warn"
	if o.verbose {
		logCfg.Level = "debug"
	}
	log := logger.NewWithOutput(logCfg, o.errOut)

	storefront, err := o.newStorefront(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("build storefront: %w", err)
	}
	return storefront, cfg, nil
}
