package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLEANCO_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "CleanCo", cfg.UI.Brand)
	require.Equal(t, "RM", cfg.UI.CurrencySymbol)
	require.False(t, cfg.Booking.RejectPastDates)
	require.Equal(t, "info", cfg.Log.Level)
	require.Contains(t, cfg.Log.Path, filepath.Join(".local", "state", "cleanco"))
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[ui]
currency_symbol = "USD"

[booking]
reject_past_dates = true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("CLEANCO_CONFIG", path)
	t.Setenv("CLEANCO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "USD", cfg.UI.CurrencySymbol)
	require.True(t, cfg.Booking.RejectPastDates)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "CleanCo", cfg.UI.Brand)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("CLEANCO_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Config{
		UI:      UIConfig{Brand: "Sparkle", CurrencySymbol: "$"},
		Booking: BookingConfig{RejectPastDates: true},
		Log:     LogConfig{Path: "", Level: "warn", Development: true},
	}
	require.NoError(t, Save(want, path))

	t.Setenv("CLEANCO_CONFIG", path)
	got, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}
