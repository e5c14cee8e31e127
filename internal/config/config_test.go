package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"lead_qualifier/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load("testdata/does-not-exist.env")
	rq.NoError(err)

	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal(76, cfg.Leads.Count)
	rq.Nil(cfg.Leads.Seed.Pointer())
	rq.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), cfg.Leads.WindowStart.Time)
	rq.Equal(5*time.Minute, cfg.Leads.CacheTTL)
	rq.Equal("info", cfg.App.LogLevel)
	rq.True(cfg.HTTP.MaskSensitiveData)
}

func TestLoadFromEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("LEADS_COUNT", "10")
	t.Setenv("LEADS_SEED", "42")
	t.Setenv("LEADS_WINDOW_START", "2025-06-01")
	t.Setenv("HTTP_LISTEN_ADDRESS", ":18080")

	cfg, err := config.Load("testdata/does-not-exist.env")
	rq.NoError(err)

	rq.Equal(10, cfg.Leads.Count)
	rq.NotNil(cfg.Leads.Seed.Pointer())
	rq.Equal(int64(42), *cfg.Leads.Seed.Pointer())
	rq.Equal(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), cfg.Leads.WindowStart.Time)
	rq.Equal(":18080", cfg.HTTP.ListenAddress)
}

func TestLoadInvalid(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "Seed is not a number", key: "LEADS_SEED", value: "abc"},
		{name: "Window start is not a date", key: "LEADS_WINDOW_START", value: "01/01/2024"},
		{name: "Count is not a number", key: "LEADS_COUNT", value: "many"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load("testdata/does-not-exist.env")
			rq.Error(err)
		})
	}
}
