package providers

import (
	"os"
	"path/filepath"
	"pitwall/internal/structures"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
webServer:
  host: 127.0.0.1
  port: 9090
logger:
  level: debug
  mode: 420
  dir: /tmp
feed:
  interval: 2s
  unifyKind: true
auth:
  provider: memory
cache:
  enabled: true
  size: 4
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestNewConfigProvider_ReadsFileAndDefaults(t *testing.T) {
	path := writeConfig(t, testConfigYAML)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, AppName, conf.AppName)
	assert.True(t, conf.Debug)
	assert.Equal(t, path, conf.Path)
	assert.Equal(t, "127.0.0.1", conf.WebServer.Host)
	assert.Equal(t, 9090, conf.WebServer.Port)
	assert.Equal(t, 2*time.Second, conf.Feed.Interval)
	assert.True(t, conf.Feed.UnifyKind)
	assert.Equal(t, "memory", conf.Auth.Provider)
	assert.True(t, conf.Cache.Enabled)

	// defaults
	assert.Equal(t, 3, conf.Feed.SeedCount)
	assert.Equal(t, "X-Session-Token", conf.Session.Header)
	assert.True(t, conf.Auth.GuardRoutes)
	assert.Equal(t, "pitwall.feed", conf.Broker.SubjectPrefix)
}

func TestNewConfigProvider_EnvOverride(t *testing.T) {
	path := writeConfig(t, testConfigYAML)
	t.Setenv("PITWALL_AUTH_PROVIDER", "mock")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "mock", conf.Auth.Provider)
}

func TestNewConfigProvider_MissingFile(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")})
	assert.Error(t, err)
}

func TestNewConfigProvider_InvalidConfig(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: loud\n  dir: /tmp\n")
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}

func TestNewConfigProvider_ShippedConfig(t *testing.T) {
	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: "../../config.yaml"})
	require.NoError(t, err)

	assert.True(t, filepath.IsAbs(conf.Logger.Dir))
	assert.Equal(t, "logs", filepath.Base(conf.Logger.Dir))
	assert.True(t, conf.Cache.Enabled)
	assert.Positive(t, conf.Cache.Size)
	assert.LessOrEqual(t, conf.Cache.Size, 1024, "cache size is in MB")
	assert.Equal(t, 5*time.Second, conf.Feed.Interval)
}

func TestNewConfigProvider_RelativeLogDir(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: info\n  dir: ./logs\n")

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "logs"), conf.Logger.Dir)
}

func TestNewConfigProvider_CacheSizeTooLarge(t *testing.T) {
	path := writeConfig(t, "logger:\n  level: info\n  dir: /tmp\ncache:\n  enabled: true\n  size: 33554432\n")
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
