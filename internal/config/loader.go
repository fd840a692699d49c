package config

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Default header values used when the inbound request does not forward its
// own. The User-Agent identifies as a generic browser so origins do not
// special-case the proxy.
const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)

// Load reads and parses the TOML config file, injecting defaults and running
// semantic validation. A missing file is not an error: the proxy is fully
// functional on defaults alone.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.toml"
	}

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(durationDecodeHook())); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ListenPort", 8080)
	v.SetDefault("LogLevel", "info")
	v.SetDefault("LogFilePath", "")
	v.SetDefault("LogMaxSize", 100)
	v.SetDefault("LogMaxBackups", 10)
	v.SetDefault("LogCompress", true)
	v.SetDefault("UpstreamTimeout", "30s")
	v.SetDefault("MaxRedirects", 10)
	v.SetDefault("UserAgent", DefaultUserAgent)
	v.SetDefault("Accept", DefaultAccept)
	v.SetDefault("AcceptLanguage", DefaultAcceptLanguage)
}

func applyDefaults(cfg *Config) {
	if cfg.ListenPort == 0 {
		cfg.ListenPort = 8080
	}
	if cfg.UpstreamTimeout.DurationValue() == 0 {
		cfg.UpstreamTimeout = Duration(30 * time.Second)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Accept == "" {
		cfg.Accept = DefaultAccept
	}
	if cfg.AcceptLanguage == "" {
		cfg.AcceptLanguage = DefaultAcceptLanguage
	}
}

// durationDecodeHook lets mapstructure route strings and bare integers
// through Duration.UnmarshalText.
func durationDecodeHook() mapstructure.DecodeHookFunc {
	durationType := reflect.TypeOf(Duration(0))
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != durationType {
			return data, nil
		}
		var d Duration
		if err := d.UnmarshalText([]byte(fmt.Sprintf("%v", data))); err != nil {
			return nil, err
		}
		return d, nil
	}
}
