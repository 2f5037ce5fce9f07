package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"adapter": {"http_address": "127.0.0.1:4000", "request_timeout": "3s"},
		"storage": {"db": {"dsn": "quiz.db"}},
		"server": {"http_address": "0.0.0.0:4000", "request_timeout": 5000000000, "quiz_file": "quiz.yaml", "allowed_origins": ["*"]},
		"workers": {"tick_interval": "1s", "resync_interval": "10s"},
		"log": {"file": "client.log"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:4000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "quiz.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "quiz.yaml", cfg.Server.QuizFile)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, time.Second, cfg.Workers.TickInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.ResyncInterval)
	assert.Equal(t, "client.log", cfg.Log.File)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"adapter":`), 0o600))

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duration.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"workers":{"tick_interval":"every second"}}`), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
