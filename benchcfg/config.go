package benchcfg

import (
	"errors"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	flags "github.com/jessevdk/go-flags"
)

const (
	// DefaultConfigFilename is the name of the optional config file.
	DefaultConfigFilename = "pairctl.conf"

	// DefaultSize is the number of pairs sorted in each run.
	DefaultSize = 100_000

	// DefaultRuns is how many times every contender sorts every
	// distribution.
	DefaultRuns = 5

	// DefaultSeed seeds the generator of the input distributions.
	DefaultSeed = 1

	// DefaultDebugLevel is the log level used when none is configured.
	DefaultDebugLevel = "info"

	// DefaultMaxLogFiles is the number of rotated log files kept.
	DefaultMaxLogFiles = 3

	// DefaultMaxLogFileSize is the size in MB at which a log file is
	// rotated.
	DefaultMaxLogFileSize = 10
)

var (
	// ErrInvalidSize is returned when the sample size is not positive.
	ErrInvalidSize = errors.New("sample size must be positive")

	// ErrInvalidRuns is returned when the run count is not positive.
	ErrInvalidRuns = errors.New("run count must be positive")

	// ErrInvalidDebugLevel is returned for an unknown log level.
	ErrInvalidDebugLevel = errors.New("invalid debug level")

	// ErrInvalidLogRotation is returned when the log rotation settings
	// are out of range.
	ErrInvalidLogRotation = errors.New("invalid log rotation settings")
)

// Config houses the settings of the pair benchmark. It is read from an
// optional ini file and can be overridden from the command line.
//
//nolint:lll
type Config struct {
	Size int `long:"size" description:"Number of pairs sorted in each run"`

	Runs int `long:"runs" description:"Number of runs per distribution and contender, the median is reported"`

	Seed int64 `long:"seed" description:"Seed of the input generator, equal seeds produce equal inputs"`

	Distributions []string `long:"distribution" description:"Input distribution to sort, may be repeated. All distributions are used if none is given"`

	DebugLevel string `long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical}"`

	LogDir string `long:"logdir" description:"Directory to write rotated log files to, logs only go to stdout if empty"`

	MaxLogFiles int `long:"maxlogfiles" description:"Maximum logfiles to keep (0 for no rotation)"`

	MaxLogFileSize int `long:"maxlogfilesize" description:"Maximum logfile size in MB"`
}

// Default returns a config populated with the default values.
func Default() *Config {
	return &Config{
		Size:           DefaultSize,
		Runs:           DefaultRuns,
		Seed:           DefaultSeed,
		DebugLevel:     DefaultDebugLevel,
		MaxLogFiles:    DefaultMaxLogFiles,
		MaxLogFileSize: DefaultMaxLogFileSize,
	}
}

// LoadFile returns the default config overlaid with the options of the ini
// file at path. A missing file is not an error. The result is not validated
// since command line overrides are usually applied afterwards.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Debugf("Config file %v not found, using defaults", path)
		return cfg, nil
	}

	parser := flags.NewParser(cfg, flags.Default)
	err := flags.NewIniParser(parser).ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse config file %v: %w",
			path, err)
	}

	log.Debugf("Loaded config file %v", path)

	return cfg, nil
}

// Validate checks that the config values are usable.
func (c *Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Size)
	}

	if c.Runs <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRuns, c.Runs)
	}

	if _, ok := btclog.LevelFromString(c.DebugLevel); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidDebugLevel, c.DebugLevel)
	}

	if c.MaxLogFiles < 0 {
		return fmt.Errorf("%w: maxlogfiles=%d", ErrInvalidLogRotation,
			c.MaxLogFiles)
	}

	if c.LogDir != "" && c.MaxLogFileSize <= 0 {
		return fmt.Errorf("%w: maxlogfilesize=%d",
			ErrInvalidLogRotation, c.MaxLogFileSize)
	}

	return nil
}

// Level returns the parsed log level. It falls back to info for a config
// that has not been validated.
func (c *Config) Level() btclog.Level {
	level, ok := btclog.LevelFromString(c.DebugLevel)
	if !ok {
		return btclog.LevelInfo
	}

	return level
}
