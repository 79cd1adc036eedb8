package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/cash-office/config"
)

func noEnvFile(t *testing.T) string {
	return "-env=" + filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load([]string{noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, config.Defaults(), cfg)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, 10, s.MaxCashDropsPerDay)
	assert.Equal(t, "200.00", s.StartingAmount.StringFixed(2))
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DB_PATH", "/tmp/env.db")
	t.Setenv("MAX_CASH_DROPS_PER_DAY", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load([]string{noEnvFile(t), "-db=:memory:"})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, ":memory:", cfg.DBPath, "flag wins over env")
	assert.Equal(t, 3, cfg.MaxDropsPerDay)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestSettings_CarriesCatalogs(t *testing.T) {
	t.Setenv("SHIFTS", "AM, PM")
	t.Setenv("WORKSTATIONS", "R1,R2,R3")

	cfg, err := config.Load([]string{noEnvFile(t)})
	require.NoError(t, err)

	s, err := cfg.Settings()
	require.NoError(t, err)
	assert.Equal(t, []string{"AM", "PM"}, s.Shifts)
	assert.Equal(t, []string{"R1", "R2", "R3"}, s.Workstations)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("STARTING_AMOUNT=150.00\nBUSINESS_TIMEZONE=UTC\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("STARTING_AMOUNT")
		os.Unsetenv("BUSINESS_TIMEZONE")
	})

	cfg, err := config.Load([]string{"-env=" + path})
	require.NoError(t, err)

	assert.Equal(t, "150.00", cfg.StartingAmount)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cases := map[string]func(*config.Config){
		"port":     func(c *config.Config) { c.Port = 0 },
		"level":    func(c *config.Config) { c.LogLevel = "loud" },
		"format":   func(c *config.Config) { c.LogFormat = "xml" },
		"max":      func(c *config.Config) { c.MaxDropsPerDay = 0 },
		"amount":   func(c *config.Config) { c.StartingAmount = "lots" },
		"negative": func(c *config.Config) { c.StartingAmount = "-5" },
		"subcent":  func(c *config.Config) { c.StartingAmount = "200.005" },
		"timezone": func(c *config.Config) { c.Timezone = "Mars/Olympus_Mons" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Defaults()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := config.NewLogger("debug", "text")
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logger.Formatter)

	_, err = config.NewLogger("chatty", "json")
	assert.Error(t, err)
}
