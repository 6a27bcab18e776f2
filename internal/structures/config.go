package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required"`
}

type FeedConfig struct {
	Interval    time.Duration `yaml:"interval" validate:"required|min:1"`
	SeedCount   int           `yaml:"seedCount" validate:"uint"`
	CatalogPath string        `yaml:"catalogPath"`
	UnifyKind   bool          `yaml:"unifyKind"`
}

type SessionConfig struct {
	Header        string        `yaml:"header" validate:"required"`
	IdleTTL       time.Duration `yaml:"idleTTL" validate:"required|min:1"`
	SweepInterval time.Duration `yaml:"sweepInterval" validate:"required|min:1"`
}

type AuthConfig struct {
	Provider    string `yaml:"provider" validate:"required|in:mock,memory"`
	GuardRoutes bool   `yaml:"guardRoutes"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size" validate:"uint|max:4096"` // MB
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type BrokerConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	SubjectPrefix string `yaml:"subjectPrefix"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Logger    LoggerConfig  `yaml:"logger"`
	Feed      FeedConfig    `yaml:"feed"`
	Session   SessionConfig `yaml:"session"`
	Auth      AuthConfig    `yaml:"auth"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
	Broker    BrokerConfig  `yaml:"broker"`
}
