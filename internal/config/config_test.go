package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// load runs a throwaway app with the given arguments and returns the parsed
// configuration.
func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	var (
		cfg    Config
		cfgErr error
	)
	app := &cli.App{
		Name:  "test",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			cfg, cfgErr = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return cfg, cfgErr
}

// clearEnv unsets every variable Flags reads. An empty variable still counts
// as set for the cli package, so t.Setenv(key, "") is not enough.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HTTP_ADDR", "PORT", "GRAPHQL_PATH", "PLAYGROUND", "LOG_LEVEL",
		"LOG_JSON", "SHUTDOWN_TIMEOUT", "APQ_TTL", "LOADER_WAIT", "MAX_BODY_BYTES", "SEED_DATA"} {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GRAPHQL_PATH", "/graphql")
	t.Setenv("PLAYGROUND", "false")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("APQ_TTL", "30s")
	t.Setenv("LOADER_WAIT", "10ms")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("SEED_DATA", "false")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "/graphql", cfg.GraphQLPath)
	assert.False(t, cfg.Playground)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.APQTTL)
	assert.Equal(t, 10*time.Millisecond, cfg.LoaderWait)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.False(t, cfg.SeedData)
}

func TestAddrOverridesPort(t *testing.T) {
	clearEnv(t)
	cfg, err := load(t, "--addr", "127.0.0.1:7000", "--port", "9000")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Addr)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "RelativePath", mutate: func(c *Config) { c.GraphQLPath = "graphql" }},
		{name: "ZeroShutdown", mutate: func(c *Config) { c.ShutdownTimeout = 0 }},
		{name: "ZeroAPQTTL", mutate: func(c *Config) { c.APQTTL = 0 }},
		{name: "NegativeLoaderWait", mutate: func(c *Config) { c.LoaderWait = -time.Second }},
		{name: "ZeroBody", mutate: func(c *Config) { c.MaxBodyBytes = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)
	_, err := load(t, "--graphql-path", "nope")
	assert.Error(t, err)
}
