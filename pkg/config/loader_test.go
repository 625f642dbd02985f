package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intellistudy/studykit/pkg/config"
)

type testConfig struct {
	Name    string        `env:"STUDYKIT_TEST_NAME" envDefault:"studykit"`
	Count   int           `env:"STUDYKIT_TEST_COUNT" envDefault:"3"`
	Timeout time.Duration `env:"STUDYKIT_TEST_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Token string `env:"STUDYKIT_TEST_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "studykit", cfg.Name)
		assert.Equal(t, 3, cfg.Count)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads environment overrides", func(t *testing.T) {
		config.Reset()
		t.Setenv("STUDYKIT_TEST_NAME", "custom")
		t.Setenv("STUDYKIT_TEST_COUNT", "7")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "custom", cfg.Name)
		assert.Equal(t, 7, cfg.Count)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("STUDYKIT_TEST_NAME", "first")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		require.Equal(t, "first", cfg.Name)

		// A later environment change is not observed until Reset.
		t.Setenv("STUDYKIT_TEST_NAME", "second")
		var again testConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)

		config.Reset()
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "second", again.Name)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		config.Reset()

		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("succeeds with defaults", func(t *testing.T) {
		config.Reset()

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "studykit", cfg.Name)
	})
}
