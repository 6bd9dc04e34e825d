package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"
	"github.com/lightningnetwork/tightpair"
	"github.com/lightningnetwork/tightpair/benchcfg"
	"github.com/lightningnetwork/tightpair/pairbench"
)

const logFilename = "pairctl.log"

// log is the logger of the pairctl subsystem.
var log = btclog.Disabled

// logErrOutput receives failures of the log rotator, which cannot be logged
// through the logger it feeds.
var logErrOutput io.Writer = os.Stderr

// logWriter writes to stdout and, when a log directory is configured, to the
// pipe feeding the log rotator.
type logWriter struct {
	rotatorPipe *io.PipeWriter
}

// Write writes the log line to stdout and the rotated log file.
func (w *logWriter) Write(b []byte) (int, error) {
	os.Stdout.Write(b)
	if w.rotatorPipe != nil {
		w.rotatorPipe.Write(b)
	}

	return len(b), nil
}

// initLogging creates the backend shared by all subsystem loggers and hands
// a logger to every package. The returned closure flushes and closes the log
// file.
func initLogging(cfg *benchcfg.Config) (func(), error) {
	writer := &logWriter{}
	cleanUp := func() {}

	if cfg.LogDir != "" {
		err := os.MkdirAll(cfg.LogDir, 0700)
		if err != nil {
			return nil, fmt.Errorf("unable to create log "+
				"directory: %w", err)
		}

		logFile := filepath.Join(cfg.LogDir, logFilename)
		logRotator, err := rotator.New(
			logFile, int64(cfg.MaxLogFileSize*1024), false,
			cfg.MaxLogFiles,
		)
		if err != nil {
			return nil, fmt.Errorf("unable to create file "+
				"rotator: %w", err)
		}

		pr, pw := io.Pipe()
		done := make(chan struct{})
		go func() {
			defer close(done)

			// Closing the pipe on shutdown ends the run with
			// io.EOF.
			err := logRotator.Run(pr)
			if err != nil && !errors.Is(err, io.EOF) {
				fmt.Fprintf(logErrOutput, "failed to run file "+
					"rotator: %v\n", err)
			}
		}()

		writer.rotatorPipe = pw
		cleanUp = func() {
			pw.Close()
			<-done
			logRotator.Close()
		}
	}

	backend := btclog.NewBackend(writer)
	level := cfg.Level()

	subLogger := func(subsystem string) btclog.Logger {
		logger := backend.Logger(subsystem)
		logger.SetLevel(level)

		return logger
	}

	log = subLogger("PCTL")
	tightpair.UseLogger(subLogger(tightpair.Subsystem))
	pairbench.UseLogger(subLogger(pairbench.Subsystem))
	benchcfg.UseLogger(subLogger(benchcfg.Subsystem))

	return cleanUp, nil
}
