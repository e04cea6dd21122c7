/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package config loads configuration values from files, readers and environment variables
// and sets them into configuration objects that implement the Config interface.
package config

// Config is implemented by configuration objects that Loader can fill.
type Config interface {
	SetProviderDefaults(dp DataProvider)
	Set(dp DataProvider) error
}

// KeyPrefixProvider is implemented by Config objects that live under a key prefix.
type KeyPrefixProvider interface {
	KeyPrefix() string
}

// DataProviderFor scopes dp to the key prefix of cfg, if it has one.
func DataProviderFor(dp DataProvider, cfg Config) DataProvider {
	if kp, ok := cfg.(KeyPrefixProvider); ok {
		return dp.Sub(kp.KeyPrefix())
	}
	return dp
}
