package config

import "time"

// Config is the root client configuration.
type Config struct {
	API          APIConfig          `yaml:"api"`
	Session      SessionConfig      `yaml:"session"`
	Chat         ChatConfig         `yaml:"chat"`
	Notification NotificationConfig `yaml:"notification"`
	Participant  ParticipantConfig  `yaml:"participant"`
	Push         PushConfig         `yaml:"push"`
	Notice       NoticeConfig       `yaml:"notice"`
	Metrics      MetricsConfig      `yaml:"metrics"`
	Log          LogConfig          `yaml:"log"`
}

// APIConfig holds REST backend settings.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"         env:"API_BASE_URL"         env-required:"true"`
	Timeout        time.Duration `yaml:"timeout"          env:"API_TIMEOUT"          env-default:"10s"`
	RateLimitRPS   float64       `yaml:"rate_limit_rps"   env:"API_RATE_LIMIT_RPS"   env-default:"0"`
	RateLimitBurst int           `yaml:"rate_limit_burst" env:"API_RATE_LIMIT_BURST" env-default:"5"`
}

// SessionConfig holds the bearer token of the signed-in user.
// TokenFile is read when Token is empty.
type SessionConfig struct {
	Token     string `yaml:"token"      env:"SESSION_TOKEN"`
	TokenFile string `yaml:"token_file" env:"SESSION_TOKEN_FILE"`
	UserID    string `yaml:"user_id"    env:"SESSION_USER_ID"`
}

// ChatConfig holds chat refresh settings.
type ChatConfig struct {
	PollInterval time.Duration `yaml:"poll_interval" env:"CHAT_POLL_INTERVAL" env-default:"5s"`
}

// NotificationConfig holds notification refresh settings. LookupConcurrency
// bounds parallel user and event lookups per refresh.
type NotificationConfig struct {
	PollInterval      time.Duration `yaml:"poll_interval"      env:"NOTIFICATION_POLL_INTERVAL"      env-default:"5s"`
	LookupConcurrency int           `yaml:"lookup_concurrency" env:"NOTIFICATION_LOOKUP_CONCURRENCY" env-default:"4"`
}

// ParticipantConfig holds participant list settings.
type ParticipantConfig struct {
	PollInterval    time.Duration `yaml:"poll_interval"    env:"PARTICIPANT_POLL_INTERVAL"    env-default:"10s"`
	BulkConcurrency int           `yaml:"bulk_concurrency" env:"PARTICIPANT_BULK_CONCURRENCY" env-default:"4"`
}

// PushConfig holds the optional websocket refresh channel. Empty URL disables it.
type PushConfig struct {
	URL            string        `yaml:"url"             env:"PUSH_URL"`
	ReconnectDelay time.Duration `yaml:"reconnect_delay" env:"PUSH_RECONNECT_DELAY" env-default:"2s"`
}

// NoticeConfig holds transient banner settings.
type NoticeConfig struct {
	TTL time.Duration `yaml:"ttl" env:"NOTICE_TTL" env-default:"6s"`
}

// MetricsConfig holds the Prometheus listener. Empty Addr disables it.
type MetricsConfig struct {
	Addr string `yaml:"addr" env:"METRICS_ADDR"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// PushEnabled reports whether a push URL is configured.
func (c PushConfig) PushEnabled() bool { return c.URL != "" }

// MetricsEnabled reports whether the metrics listener should start.
func (c MetricsConfig) MetricsEnabled() bool { return c.Addr != "" }
