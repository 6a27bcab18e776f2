package providers

import (
	"fmt"
	"path/filepath"
	"pitwall/internal/structures"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const AppName = "PitWall"

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "0.0.0.0")
	v.SetDefault("webServer.port", 8080)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("feed.interval", 5*time.Second)
	v.SetDefault("feed.seedCount", 3)
	v.SetDefault("session.header", "X-Session-Token")
	v.SetDefault("session.idleTTL", 30*time.Minute)
	v.SetDefault("session.sweepInterval", time.Minute)
	v.SetDefault("auth.provider", "mock")
	v.SetDefault("auth.guardRoutes", true)
	v.SetDefault("cache.ttl", 10*time.Second)
	v.SetDefault("broker.subjectPrefix", "pitwall.feed")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	setDefaults(v)

	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")

	_ = v.BindEnv("logger.level", "PITWALL_LOG_LEVEL")
	_ = v.BindEnv("feed.interval", "PITWALL_FEED_INTERVAL")
	_ = v.BindEnv("auth.provider", "PITWALL_AUTH_PROVIDER")
	_ = v.BindEnv("cache.enabled", "PITWALL_CACHE_ENABLED")
	_ = v.BindEnv("broker.url", "PITWALL_BROKER_URL")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.Logger.Dir, err = filepath.Abs(conf.Logger.Dir)
	if err != nil {
		return nil, fmt.Errorf("logger dir: %w", err)
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
