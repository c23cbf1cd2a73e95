// Package config provides runtime configuration values for the service.
package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	defaultPort            = "8080"
	defaultGraphQLPath     = "/"
	defaultShutdownTimeout = 15 * time.Second
	defaultAPQTTL          = 5 * time.Minute
	defaultLoaderWait      = 2 * time.Millisecond
	defaultMaxBodyBytes    = 1 << 20
)

// Config holds the knobs shared by the HTTP server and the Lambda handler.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string
	// GraphQLPath is where the endpoint and the explorer are mounted.
	GraphQLPath     string
	Playground      bool
	LogLevel        string
	LogJSON         bool
	ShutdownTimeout time.Duration
	// APQTTL is how long a persisted query stays registered.
	APQTTL time.Duration
	// LoaderWait is how long a dataloader batch collects keys.
	LoaderWait   time.Duration
	MaxBodyBytes int64
	// SeedData loads the sample products and sellers at start.
	SeedData bool
}

// Default returns the configuration used when no flag or variable is set.
func Default() Config {
	return Config{
		Addr:            ":" + defaultPort,
		GraphQLPath:     defaultGraphQLPath,
		Playground:      true,
		LogLevel:        "info",
		LogJSON:         true,
		ShutdownTimeout: defaultShutdownTimeout,
		APQTTL:          defaultAPQTTL,
		LoaderWait:      defaultLoaderWait,
		MaxBodyBytes:    defaultMaxBodyBytes,
		SeedData:        true,
	}
}

// Flags declares every setting as a command line flag backed by an
// environment variable.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen address, overrides --port",
			EnvVars: []string{"HTTP_ADDR"},
		},
		&cli.StringFlag{
			Name:    "port",
			Usage:   "listen port on all interfaces",
			Value:   defaultPort,
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "graphql-path",
			Usage:   "path of the GraphQL endpoint",
			Value:   d.GraphQLPath,
			EnvVars: []string{"GRAPHQL_PATH"},
		},
		&cli.BoolFlag{
			Name:    "playground",
			Usage:   "serve the query explorer to browsers",
			Value:   d.Playground,
			EnvVars: []string{"PLAYGROUND"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "debug, info, warn or error",
			Value:   d.LogLevel,
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "log-json",
			Usage:   "log as JSON instead of console text",
			Value:   d.LogJSON,
			EnvVars: []string{"LOG_JSON"},
		},
		&cli.DurationFlag{
			Name:    "shutdown-timeout",
			Usage:   "grace period for in-flight requests on shutdown",
			Value:   d.ShutdownTimeout,
			EnvVars: []string{"SHUTDOWN_TIMEOUT"},
		},
		&cli.DurationFlag{
			Name:    "apq-ttl",
			Usage:   "lifetime of automatic persisted queries",
			Value:   d.APQTTL,
			EnvVars: []string{"APQ_TTL"},
		},
		&cli.DurationFlag{
			Name:    "loader-wait",
			Usage:   "batch window of the dataloaders",
			Value:   d.LoaderWait,
			EnvVars: []string{"LOADER_WAIT"},
		},
		&cli.Int64Flag{
			Name:    "max-body-bytes",
			Usage:   "largest accepted request body",
			Value:   d.MaxBodyBytes,
			EnvVars: []string{"MAX_BODY_BYTES"},
		},
		&cli.BoolFlag{
			Name:    "seed",
			Usage:   "load sample products and sellers at start",
			Value:   d.SeedData,
			EnvVars: []string{"SEED_DATA"},
		},
	}
}

// FromContext reads the flags declared by Flags and validates the result.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Addr:            c.String("addr"),
		GraphQLPath:     c.String("graphql-path"),
		Playground:      c.Bool("playground"),
		LogLevel:        c.String("log-level"),
		LogJSON:         c.Bool("log-json"),
		ShutdownTimeout: c.Duration("shutdown-timeout"),
		APQTTL:          c.Duration("apq-ttl"),
		LoaderWait:      c.Duration("loader-wait"),
		MaxBodyBytes:    c.Int64("max-body-bytes"),
		SeedData:        c.Bool("seed"),
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + c.String("port")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case !strings.HasPrefix(c.GraphQLPath, "/"):
		return errors.Errorf("graphql path %q must start with /", c.GraphQLPath)
	case c.ShutdownTimeout <= 0:
		return errors.Errorf("shutdown timeout must be positive, got %s", c.ShutdownTimeout)
	case c.APQTTL <= 0:
		return errors.Errorf("apq ttl must be positive, got %s", c.APQTTL)
	case c.LoaderWait <= 0:
		return errors.Errorf("loader wait must be positive, got %s", c.LoaderWait)
	case c.MaxBodyBytes <= 0:
		return errors.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}
