package config

import "errors"

// Validate performs semantic checks beyond what decoding enforces, so an
// invalid config refuses to start the service instead of misbehaving later.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.ListenPort <= 0 || c.ListenPort > 65535 {
		return newFieldError("ListenPort", "must be between 1 and 65535")
	}
	if c.UpstreamTimeout.DurationValue() <= 0 {
		return newFieldError("UpstreamTimeout", "must be greater than 0")
	}
	if c.MaxRedirects < 0 {
		return newFieldError("MaxRedirects", "must not be negative")
	}
	if c.LogMaxSize < 0 {
		return newFieldError("LogMaxSize", "must not be negative")
	}
	if c.LogMaxBackups < 0 {
		return newFieldError("LogMaxBackups", "must not be negative")
	}

	return nil
}
