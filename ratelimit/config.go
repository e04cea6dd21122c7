/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package ratelimit

import (
	"errors"
	"time"

	"github.com/acronis/go-crptapi/config"
)

// Default values.
const (
	DefaultAlgorithm = AlgorithmFixedWindow
	DefaultLimit     = 10
	DefaultWindow    = time.Minute
)

const (
	cfgKeyAlgorithm = "algorithm"
	cfgKeyLimit     = "limit"
	cfgKeyWindow    = "window"
)

var availableAlgorithms = []string{
	string(AlgorithmFixedWindow),
	string(AlgorithmSlidingWindow),
	string(AlgorithmLeakyBucket),
	string(AlgorithmTokenBucket),
}

// Config represents a set of configuration parameters for the rate limiter.
type Config struct {
	// Algorithm is a rate limiting algorithm.
	Algorithm Algorithm `mapstructure:"algorithm" yaml:"algorithm" json:"algorithm"`

	// Limit is the maximum number of calls admitted per Window.
	Limit int `mapstructure:"limit" yaml:"limit" json:"limit"`

	// Window is the length of the time unit the Limit is applied to.
	Window config.TimeDuration `mapstructure:"window" yaml:"window" json:"window"`

	keyPrefix string
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// NewConfig creates a new instance of the Config.
func NewConfig() *Config {
	return NewConfigWithKeyPrefix("")
}

// NewConfigWithKeyPrefix creates a new instance of the Config.
// Allows specifying key prefix which will be used for parsing configuration parameters.
func NewConfigWithKeyPrefix(keyPrefix string) *Config {
	return &Config{keyPrefix: keyPrefix}
}

// NewDefaultConfig creates a new instance of the Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Limit:     DefaultLimit,
		Window:    config.TimeDuration(DefaultWindow),
	}
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
func (c *Config) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults is part of config interface implementation.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyAlgorithm, string(DefaultAlgorithm))
	dp.SetDefault(cfgKeyLimit, DefaultLimit)
	dp.SetDefault(cfgKeyWindow, DefaultWindow.String())
}

// Set is part of config interface implementation.
func (c *Config) Set(dp config.DataProvider) error {
	algorithm, err := dp.GetStringFromSet(cfgKeyAlgorithm, availableAlgorithms, false)
	if err != nil {
		return err
	}
	c.Algorithm = Algorithm(algorithm)

	limit, err := dp.GetInt(cfgKeyLimit)
	if err != nil {
		return err
	}
	if limit <= 0 {
		return dp.WrapKeyErr(cfgKeyLimit, errors.New("must be positive"))
	}
	c.Limit = limit

	window, err := dp.GetDuration(cfgKeyWindow)
	if err != nil {
		return err
	}
	if window <= 0 {
		return dp.WrapKeyErr(cfgKeyWindow, errors.New("must be positive"))
	}
	c.Window = config.TimeDuration(window)

	return nil
}
