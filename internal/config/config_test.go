package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, SourceCSV, cfg.Source.Kind)
	assert.Equal(t, "data/sample_data.csv", cfg.Source.CSVPath)
	assert.Equal(t, "price_bars", cfg.Source.Table)
	assert.Equal(t, "0 0 22 * * 1-5", cfg.Schedule.ReportCron)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.True(t, cfg.Display.MovingAverages)
	assert.True(t, cfg.Display.EMA)
	assert.True(t, cfg.Display.Momentum)
	assert.True(t, cfg.Display.Volume)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
source:
  kind: SQLite
  sqlite_path: /tmp/bars.db
  symbol: ETH
display:
  show_ema: false
  show_volume: false
log_level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceSQLite, cfg.Source.Kind)
	assert.Equal(t, "/tmp/bars.db", cfg.Source.SQLitePath)
	assert.Equal(t, "ETH", cfg.Source.Symbol)
	assert.True(t, cfg.Display.MovingAverages)
	assert.False(t, cfg.Display.EMA)
	assert.True(t, cfg.Display.Momentum)
	assert.False(t, cfg.Display.Volume)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "source:\n  csv_path: from-file.csv\n")
	t.Setenv("SENTINEL_CSV_PATH", "from-env.csv")
	t.Setenv("SENTINEL_SYMBOL", "SPX")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "123")
	t.Setenv("CRON_REPORT", "0 30 9 * * *")
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("RUN_ON_START", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", cfg.Source.CSVPath)
	assert.Equal(t, "SPX", cfg.Source.Symbol)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.True(t, cfg.Schedule.RunOnStart)
	assert.NoError(t, cfg.ValidateTelegram())
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "source: [unterminated"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	cfg.Source.Kind = "ftp"
	assert.Error(t, cfg.Validate())

	cfg.Source.Kind = SourceMock
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestValidateTelegram(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Error(t, cfg.ValidateTelegram())

	cfg.Telegram.BotToken = "tok"
	cfg.Telegram.ChatID = "1"
	assert.NoError(t, cfg.ValidateTelegram())

	cfg.Schedule.ReportCron = "every day"
	assert.Error(t, cfg.ValidateTelegram())
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv("CONFIG_PATH", "/etc/sentinel.yaml")
	assert.Equal(t, "/etc/sentinel.yaml", Path())
}
