package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	// MaxMessageBytes caps a single inbound WebSocket frame.
	MaxMessageBytes int64 `mapstructure:"max_message_bytes" yaml:"max_message_bytes"`
	// EventBuffer is the per-connection outbound event queue; events beyond
	// it are dropped rather than blocking the room.
	EventBuffer int `mapstructure:"event_buffer" yaml:"event_buffer"`
	// WSMessagesPerMinute limits inbound frames per connection. 0 disables
	// the limit.
	WSMessagesPerMinute int `mapstructure:"ws_messages_per_minute" yaml:"ws_messages_per_minute"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:                ":8080",
		ReadHeaderTimeout:   5 * time.Second,
		ShutdownTimeout:     5 * time.Second,
		LogLevel:            "info",
		MaxMessageBytes:     32 << 10,
		EventBuffer:         32,
		WSMessagesPerMinute: 600,
	}
}

// UpdateFrom overwrites non-zero values from other config into receiver.
func (c *Config) UpdateFrom(other Config) {
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.ReadHeaderTimeout != 0 {
		c.ReadHeaderTimeout = other.ReadHeaderTimeout
	}
	if other.ShutdownTimeout != 0 {
		c.ShutdownTimeout = other.ShutdownTimeout
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.MaxMessageBytes != 0 {
		c.MaxMessageBytes = other.MaxMessageBytes
	}
	if other.EventBuffer != 0 {
		c.EventBuffer = other.EventBuffer
	}
	if other.WSMessagesPerMinute != 0 {
		c.WSMessagesPerMinute = other.WSMessagesPerMinute
	}
}
