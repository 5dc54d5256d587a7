package config

import (
	"go.uber.org/zap/zapcore"
)

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithoutScheduler() Option {
	return func(c *Config) {
		c.Scheduler.Enabled = false
	}
}
