package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration accepts both Go duration strings ("30s", "5m") and bare integer
// second values in the config file.
type Duration time.Duration

// UnmarshalText lets Viper decode values such as "30s" or plain "30".
func (d *Duration) UnmarshalText(text []byte) error {
	raw := strings.TrimSpace(string(text))
	if raw == "" {
		*d = Duration(0)
		return nil
	}

	if parsed, err := time.ParseDuration(raw); err == nil {
		*d = Duration(parsed)
		return nil
	}

	if intVal, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*d = Duration(time.Duration(intVal) * time.Second)
		return nil
	}

	return fmt.Errorf("invalid duration value: %s", raw)
}

// DurationValue returns the underlying time.Duration.
func (d Duration) DurationValue() time.Duration {
	return time.Duration(d)
}

// Config describes the whole runtime behaviour of the proxy. A single
// instance serves one relay endpoint, so there is no per-site section.
type Config struct {
	ListenPort    int    `mapstructure:"ListenPort"`
	LogLevel      string `mapstructure:"LogLevel"`
	LogFilePath   string `mapstructure:"LogFilePath"`
	LogMaxSize    int    `mapstructure:"LogMaxSize"`
	LogMaxBackups int    `mapstructure:"LogMaxBackups"`
	LogCompress   bool   `mapstructure:"LogCompress"`

	// Upstream fetch behaviour.
	UpstreamTimeout Duration `mapstructure:"UpstreamTimeout"`
	MaxRedirects    int      `mapstructure:"MaxRedirects"`

	// Request headers sent upstream when the inbound request does not
	// carry its own.
	UserAgent      string `mapstructure:"UserAgent"`
	Accept         string `mapstructure:"Accept"`
	AcceptLanguage string `mapstructure:"AcceptLanguage"`
}
