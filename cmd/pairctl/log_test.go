package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/lightningnetwork/tightpair"
	"github.com/lightningnetwork/tightpair/benchcfg"
	"github.com/lightningnetwork/tightpair/pairbench"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"
)

// resetLogging swaps the rotator error output for a buffer and restores the
// package loggers once the test is done. Tests using it replace package level
// state and must not run in parallel.
func resetLogging(t *testing.T) *bytes.Buffer {
	t.Helper()

	var errBuf bytes.Buffer
	logErrOutput = &errBuf

	t.Cleanup(func() {
		logErrOutput = os.Stderr
		log = btclog.Disabled
		tightpair.DisableLog()
		pairbench.DisableLog()
		benchcfg.DisableLog()
	})

	return &errBuf
}

// TestInitLoggingLogDir asserts that log lines reach the rotated log file and
// that a regular shutdown of the rotator reports nothing.
func TestInitLoggingLogDir(t *testing.T) {
	errBuf := resetLogging(t)

	cfg := benchcfg.Default()
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")
	require.NoError(t, cfg.Validate())

	cleanUp, err := initLogging(cfg)
	require.NoError(t, err)

	log.Infof("hello rotator")
	log.Debugf("below the configured level")
	cleanUp()

	contents, err := os.ReadFile(filepath.Join(cfg.LogDir, logFilename))
	require.NoError(t, err)
	require.Contains(t, string(contents), "[INF] PCTL: hello rotator")
	require.NotContains(t, string(contents), "below the configured level")

	require.Empty(t, errBuf.String())
}

// TestInitLoggingStdoutOnly asserts that no log file is created without a log
// directory.
func TestInitLoggingStdoutOnly(t *testing.T) {
	errBuf := resetLogging(t)

	cfg := benchcfg.Default()
	cleanUp, err := initLogging(cfg)
	require.NoError(t, err)

	log.Infof("stdout only")
	cleanUp()

	require.Empty(t, errBuf.String())
}

// captureConfig runs the application with a command that records the config
// produced by actionDecorator.
func captureConfig(t *testing.T, args ...string) (*benchcfg.Config, error) {
	t.Helper()

	var captured *benchcfg.Config

	app := newApp()
	app.Commands = []cli.Command{
		{
			Name:  "capture",
			Flags: benchCommand.Flags,
			Action: actionDecorator(func(_ *cli.Context,
				cfg *benchcfg.Config) error {

				captured = cfg
				return nil
			}),
		},
	}

	err := app.Run(append([]string{"pairctl"}, args...))

	return captured, err
}

// TestLoadConfigOverrides asserts that only flags given on the command line
// override the config file, and that flag defaults do not.
func TestLoadConfigOverrides(t *testing.T) {
	resetLogging(t)

	path := filepath.Join(t.TempDir(), benchcfg.DefaultConfigFilename)
	contents := "[Application Options]\nsize=2048\nruns=3\nseed=11\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	cfg, err := captureConfig(
		t, "--configfile", path, "--debuglevel", "warn", "capture",
		"--runs", "7", "--distribution", "shuffled",
		"--distribution", "ascending",
	)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 2048, cfg.Size)
	require.Equal(t, 7, cfg.Runs)
	require.Equal(t, int64(11), cfg.Seed)
	require.Equal(t, "warn", cfg.DebugLevel)
	require.Equal(t, []string{"shuffled", "ascending"}, cfg.Distributions)
	require.Empty(t, cfg.LogDir)
}

// TestLoadConfigInvalid asserts that an out of range override is rejected
// before the command runs.
func TestLoadConfigInvalid(t *testing.T) {
	resetLogging(t)

	missing := filepath.Join(t.TempDir(), benchcfg.DefaultConfigFilename)
	cfg, err := captureConfig(
		t, "--configfile", missing, "capture", "--size", "0",
	)
	require.ErrorIs(t, err, benchcfg.ErrInvalidSize)
	require.Nil(t, cfg)
}
