// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Twilio     TwilioConfig     `mapstructure:"twilio"`
	Call       CallConfig       `mapstructure:"call"`
	Middleware MiddlewareConfig `mapstructure:"middleware"`
}

type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

type TwilioConfig struct {
	AccountSID     string               `mapstructure:"account_sid"`
	AuthToken      string               `mapstructure:"auth_token"`
	PhoneNumber    string               `mapstructure:"phone_number"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

type CallConfig struct {
	RingTimeout int  `mapstructure:"ring_timeout"`
	Record      bool `mapstructure:"record"`
}

type CircuitBreakerConfig struct {
	MaxRequests      uint32  `mapstructure:"max_requests"`
	Interval         int     `mapstructure:"interval"`
	Timeout          int     `mapstructure:"timeout"`
	FailureRatio     float64 `mapstructure:"failure_ratio"`
	ConsecutiveFails uint32  `mapstructure:"consecutive_fails"`
}

type MiddlewareConfig struct {
	RateLimit      int      `mapstructure:"rate_limit"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
	EnableCORS     bool     `mapstructure:"enable_cors"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func LoadConfig(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 30)
	viper.SetDefault("call.ring_timeout", 30)
	viper.SetDefault("call.record", false)
	viper.SetDefault("twilio.circuit_breaker.max_requests", 3)
	viper.SetDefault("twilio.circuit_breaker.interval", 60)
	viper.SetDefault("twilio.circuit_breaker.timeout", 60)
	viper.SetDefault("twilio.circuit_breaker.failure_ratio", 0.6)
	viper.SetDefault("twilio.circuit_breaker.consecutive_fails", 5)
	viper.SetDefault("middleware.rate_limit", 100)
	viper.SetDefault("middleware.rate_limit_burst", 1000)
	viper.SetDefault("middleware.enable_cors", true)
	viper.SetDefault("middleware.allowed_origins", []string{"*"})

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER override
	// the file so credentials never have to live on disk.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// HasCredentials reports whether all three required Twilio values are present.
func (t *TwilioConfig) HasCredentials() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.PhoneNumber != ""
}
