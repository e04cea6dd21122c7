/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package documents

import (
	"errors"
	"net/url"

	"github.com/acronis/go-crptapi/config"
	"github.com/acronis/go-crptapi/ratelimit"
)

// DefaultEndpoint is the registry URL for creating documents.
const DefaultEndpoint = "https://ismp.crpt.ru/api/v3/lk/documents/create"

const cfgDefaultKeyPrefix = "documents"

const (
	cfgKeyEndpoint  = "endpoint"
	cfgKeySignature = "signature"
	cfgKeyRateLimit = "rateLimit"
)

// Config represents a set of configuration parameters for the documents client.
type Config struct {
	// Endpoint is an absolute http(s) URL the documents are sent to.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`

	// Signature is an opaque value sent in the Signature header of every request.
	Signature string `mapstructure:"signature" yaml:"signature" json:"signature"`

	// RateLimit limits the number of submissions per time window.
	RateLimit ratelimit.Config `mapstructure:"rateLimit" yaml:"rateLimit" json:"rateLimit"`

	keyPrefix string
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// NewConfig creates a new instance of the Config that is read under the "documents" key prefix.
func NewConfig() *Config {
	return &Config{keyPrefix: cfgDefaultKeyPrefix}
}

// NewDefaultConfig creates a new instance of the Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		keyPrefix: cfgDefaultKeyPrefix,
		Endpoint:  DefaultEndpoint,
		RateLimit: *ratelimit.NewDefaultConfig(),
	}
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
func (c *Config) KeyPrefix() string {
	return c.keyPrefix
}

// SetProviderDefaults is part of config interface implementation.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyEndpoint, DefaultEndpoint)
	c.RateLimit.SetProviderDefaults(dp.Sub(cfgKeyRateLimit))
}

// Set is part of config interface implementation.
func (c *Config) Set(dp config.DataProvider) error {
	endpoint, err := dp.GetString(cfgKeyEndpoint)
	if err != nil {
		return err
	}
	if err = validateEndpoint(endpoint); err != nil {
		return dp.WrapKeyErr(cfgKeyEndpoint, err)
	}
	c.Endpoint = endpoint

	if c.Signature, err = dp.GetString(cfgKeySignature); err != nil {
		return err
	}

	return c.RateLimit.Set(dp.Sub(cfgKeyRateLimit))
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("must be an absolute http(s) URL")
	}
	return nil
}
