// Package config parses the process's command-line flags and
// environment variables into a single Config, the way the teacher's
// config package turns DB/server settings into one struct consumed by
// main. Flags are defined with github.com/urfave/cli/v2, which gives
// the -a/-p/-d/-l flags their short aliases and every flag an
// environment-variable fallback.
package config

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/arnav-k/autocompleted/internal/constant"
)

// Config bundles every knob the process needs at startup.
type Config struct {
	Addr              string
	Port              int
	DataDir           string
	Locale            string
	SnapshotInterval  time.Duration
	MaxElems          int
	SearchLimit       int
	LogLevel          string
}

const (
	flagAddr             = "addr"
	flagPort             = "port"
	flagDataDir          = "data-dir"
	flagLocale           = "locale"
	flagSnapshotInterval = "snapshot-interval"
	flagMaxElems         = "max-elems"
	flagSearchLimit      = "search-limit"
	flagLogLevel         = "log-level"
)

// Flags returns the urfave/cli flag set for the autocompleted command.
// Pair with FromContext inside the app's Action to get a validated Config.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagAddr,
			Aliases: []string{"a"},
			Value:   "0.0.0.0",
			Usage:   "listen address",
			EnvVars: []string{constant.EnvAddr},
		},
		&cli.IntFlag{
			Name:    flagPort,
			Aliases: []string{"p"},
			Value:   8080,
			Usage:   "listen port",
			EnvVars: []string{constant.EnvPort},
		},
		&cli.StringFlag{
			Name:    flagDataDir,
			Aliases: []string{"d"},
			Value:   "",
			Usage:   "snapshot persistence directory (empty disables persistence)",
			EnvVars: []string{constant.EnvDataDir},
		},
		&cli.StringFlag{
			Name:    flagLocale,
			Aliases: []string{"l"},
			Value:   "en_US",
			Usage:   "default locale (parsed but not applied: requests without a locale use the root locale)",
			EnvVars: []string{constant.EnvLocale},
		},
		&cli.DurationFlag{
			Name:    flagSnapshotInterval,
			Value:   60 * time.Second,
			Usage:   "background snapshot sweep period",
			EnvVars: []string{constant.EnvSnapshotInterval},
		},
		&cli.IntFlag{
			Name:    flagMaxElems,
			Value:   1000,
			Usage:   "per-namespace eviction ceiling",
			EnvVars: []string{constant.EnvMaxElems},
		},
		&cli.IntFlag{
			Name:    flagSearchLimit,
			Value:   100,
			Usage:   "default search result limit",
			EnvVars: []string{constant.EnvSearchLimit},
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Value:   "info",
			Usage:   "log level: debug selects console logging at debug level; any other value selects JSON logging at info level",
			EnvVars: []string{constant.EnvLogLevel},
		},
	}
}

// FromContext reads every flag value back out of a cli.Context into a
// Config, after cli has applied flag defaults and env var fallbacks.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Addr:             c.String(flagAddr),
		Port:             c.Int(flagPort),
		DataDir:          c.String(flagDataDir),
		Locale:           c.String(flagLocale),
		SnapshotInterval: c.Duration(flagSnapshotInterval),
		MaxElems:         c.Int(flagMaxElems),
		SearchLimit:      c.Int(flagSearchLimit),
		LogLevel:         c.String(flagLogLevel),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("config: invalid port %d", cfg.Port)
	}
	if cfg.MaxElems <= 0 {
		return Config{}, fmt.Errorf("config: max-elems must be positive, got %d", cfg.MaxElems)
	}
	return cfg, nil
}

// ListenAddr formats the address/port pair for net/http.Server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Addr, c.Port)
}
