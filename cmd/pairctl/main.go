package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lightningnetwork/tightpair/benchcfg"
	"github.com/urfave/cli"
)

const version = "0.1.0"

var defaultConfigFile = filepath.Join(
	defaultAppDir(), benchcfg.DefaultConfigFilename,
)

// defaultAppDir returns the directory holding the pairctl config file.
func defaultAppDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	return filepath.Join(dir, "pairctl")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[pairctl] %v\n", err)
	os.Exit(1)
}

// actionDecorator loads the config and sets up logging before running the
// command, and tears logging down afterwards.
func actionDecorator(f func(*cli.Context, *benchcfg.Config) error) func(
	*cli.Context) error {

	return func(ctx *cli.Context) error {
		cfg, err := loadConfig(ctx)
		if err != nil {
			return err
		}

		cleanUp, err := initLogging(cfg)
		if err != nil {
			return err
		}
		defer cleanUp()

		return f(ctx, cfg)
	}
}

// loadConfig reads the config file and applies the command line overrides
// on top of it.
func loadConfig(ctx *cli.Context) (*benchcfg.Config, error) {
	cfg, err := benchcfg.LoadFile(ctx.GlobalString("configfile"))
	if err != nil {
		return nil, err
	}

	if ctx.GlobalIsSet("debuglevel") {
		cfg.DebugLevel = ctx.GlobalString("debuglevel")
	}
	if ctx.GlobalIsSet("logdir") {
		cfg.LogDir = ctx.GlobalString("logdir")
	}
	if ctx.IsSet("size") {
		cfg.Size = ctx.Int("size")
	}
	if ctx.IsSet("runs") {
		cfg.Runs = ctx.Int("runs")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("distribution") {
		cfg.Distributions = ctx.StringSlice("distribution")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// newApp returns the pairctl application with its global flags and commands.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "pairctl"
	app.Version = version
	app.Usage = "inspect and benchmark compressed pair layouts"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "configfile",
			Value: defaultConfigFile,
			Usage: "path to the config file",
		},
		cli.StringFlag{
			Name: "debuglevel",
			Usage: "logging level for all subsystems {trace, " +
				"debug, info, warn, error, critical}",
		},
		cli.StringFlag{
			Name:  "logdir",
			Usage: "directory to write rotated log files to",
		},
	}
	app.Commands = []cli.Command{
		layoutCommand,
		benchCommand,
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fatal(err)
	}
}
