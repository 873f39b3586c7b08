package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	intervals := []struct {
		name string
		d    time.Duration
	}{
		{"chat.poll_interval", c.Chat.PollInterval},
		{"notification.poll_interval", c.Notification.PollInterval},
		{"participant.poll_interval", c.Participant.PollInterval},
		{"notice.ttl", c.Notice.TTL},
	}
	for _, iv := range intervals {
		if iv.d <= 0 {
			return fmt.Errorf("%s must be > 0 (got %v)", iv.name, iv.d)
		}
	}

	if c.Notification.LookupConcurrency < 1 {
		return fmt.Errorf("notification.lookup_concurrency must be >= 1 (got %d)", c.Notification.LookupConcurrency)
	}
	if c.Participant.BulkConcurrency < 1 {
		return fmt.Errorf("participant.bulk_concurrency must be >= 1 (got %d)", c.Participant.BulkConcurrency)
	}

	if c.Push.PushEnabled() {
		u, err := url.Parse(c.Push.URL)
		if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") {
			return fmt.Errorf("push.url must be a ws:// or wss:// URL (got %q)", c.Push.URL)
		}
		if c.Push.ReconnectDelay <= 0 {
			return fmt.Errorf("push.reconnect_delay must be > 0 (got %v)", c.Push.ReconnectDelay)
		}
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (a *APIConfig) validate() error {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must be an absolute http(s) URL (got %q)", a.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url has no host (got %q)", a.BaseURL)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}
	if a.RateLimitRPS < 0 {
		return fmt.Errorf("rate_limit_rps must be >= 0 (got %v)", a.RateLimitRPS)
	}
	if a.RateLimitRPS > 0 && a.RateLimitBurst < 1 {
		return fmt.Errorf("rate_limit_burst must be >= 1 when rate limiting is on (got %d)", a.RateLimitBurst)
	}
	return nil
}
