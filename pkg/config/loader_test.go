package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/marketkit/pkg/config"
)

type testConfig struct {
	Name    string   `env:"TEST_CFG_NAME" envDefault:"default-name"`
	Limit   int64    `env:"TEST_CFG_LIMIT" envDefault:"5"`
	Allowed []string `env:"TEST_CFG_ALLOWED" envDefault:"a,b"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "default-name", cfg.Name)
		assert.Equal(t, int64(5), cfg.Limit)
		assert.Equal(t, []string{"a", "b"}, cfg.Allowed)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("TEST_CFG_NAME", "from-env")
		t.Setenv("TEST_CFG_LIMIT", "10")
		t.Setenv("TEST_CFG_ALLOWED", "x,y,z")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, int64(10), cfg.Limit)
		assert.Equal(t, []string{"x", "y", "z"}, cfg.Allowed)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("reports unparsable values", func(t *testing.T) {
		t.Setenv("TEST_CFG_LIMIT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on bad configuration", func(t *testing.T) {
		t.Setenv("TEST_CFG_LIMIT", "boom")

		var cfg testConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("loads valid configuration", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})
}
