/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ViperAdapter is a Source backed by a viper instance.
// Providers returned by Sub share the instance and differ only in the key prefix.
type ViperAdapter struct {
	v      *viper.Viper
	prefix string
}

var _ Source = (*ViperAdapter)(nil)

// NewViperAdapter creates a ViperAdapter over a fresh viper instance.
func NewViperAdapter() *ViperAdapter {
	return &ViperAdapter{v: viper.New()}
}

// UseEnvVars makes every key resolvable from an environment variable.
// With prefix "crpt" the key "documents.signature" is read from CRPT_DOCUMENTS_SIGNATURE.
func (va *ViperAdapter) UseEnvVars(prefix string) {
	va.v.SetEnvPrefix(prefix)
	va.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	va.v.AutomaticEnv()
}

// ReadFile merges configuration data from the file.
func (va *ViperAdapter) ReadFile(path string, dataType DataType) error {
	va.v.SetConfigFile(path)
	va.v.SetConfigType(string(dataType))
	return va.v.ReadInConfig()
}

// Read merges configuration data from r.
func (va *ViperAdapter) Read(r io.Reader, dataType DataType) error {
	va.v.SetConfigType(string(dataType))
	return va.v.ReadConfig(r)
}

// Sub returns a provider that resolves keys under prefix.
func (va *ViperAdapter) Sub(prefix string) DataProvider {
	if prefix == "" {
		return va
	}
	return &ViperAdapter{v: va.v, prefix: va.fullKey(prefix)}
}

func (va *ViperAdapter) fullKey(key string) string {
	if va.prefix == "" {
		return key
	}
	return va.prefix + "." + key
}

// Set overrides the value of the key.
func (va *ViperAdapter) Set(key string, value interface{}) {
	va.v.Set(va.fullKey(key), value)
}

// SetDefault sets the value used when neither data nor environment provide the key.
func (va *ViperAdapter) SetDefault(key string, value interface{}) {
	va.v.SetDefault(va.fullKey(key), value)
}

// GetBool returns the value of the key as bool.
func (va *ViperAdapter) GetBool(key string) (bool, error) {
	res, err := cast.ToBoolE(va.v.Get(va.fullKey(key)))
	return res, va.wrapIfErr(key, err)
}

// GetInt returns the value of the key as int.
func (va *ViperAdapter) GetInt(key string) (int, error) {
	res, err := cast.ToIntE(va.v.Get(va.fullKey(key)))
	return res, va.wrapIfErr(key, err)
}

// GetString returns the value of the key as string.
func (va *ViperAdapter) GetString(key string) (string, error) {
	res, err := cast.ToStringE(va.v.Get(va.fullKey(key)))
	return res, va.wrapIfErr(key, err)
}

// GetStringFromSet returns the value of the key if it's one of set.
func (va *ViperAdapter) GetStringFromSet(key string, set []string, ignoreCase bool) (string, error) {
	str, err := va.GetString(key)
	if err != nil {
		return "", err
	}
	if !slices.ContainsFunc(set, func(s string) bool { return s == str || (ignoreCase && strings.EqualFold(s, str)) }) {
		return "", va.WrapKeyErr(key, fmt.Errorf("unknown value %q, should be one of %v", str, set))
	}
	return str, nil
}

// GetDuration returns the value of the key as time.Duration.
// Strings are parsed with time.ParseDuration, numbers are nanoseconds. A missing key yields zero.
func (va *ViperAdapter) GetDuration(key string) (time.Duration, error) {
	var res time.Duration
	if err := va.decode(key, &res); err != nil {
		return 0, err
	}
	return res, nil
}

// GetByteSize returns the value of the key as ByteSize.
// Both numbers and human-readable strings ("250M", "1Gi") are accepted. A missing key yields zero.
func (va *ViperAdapter) GetByteSize(key string) (ByteSize, error) {
	var res ByteSize
	if err := va.decode(key, &res); err != nil {
		return 0, err
	}
	return res, nil
}

// WrapKeyErr prefixes err with the full path of the key.
func (va *ViperAdapter) WrapKeyErr(key string, err error) error {
	return WrapKeyErr(va.fullKey(key), err)
}

func (va *ViperAdapter) wrapIfErr(key string, err error) error {
	if err == nil {
		return nil
	}
	return va.WrapKeyErr(key, err)
}

// decode converts the raw value of the key into out with mapstructure.
func (va *ViperAdapter) decode(key string, out interface{}) error {
	raw := va.v.Get(va.fullKey(key))
	if raw == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			rejectNegativeNumbers,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Result: out,
	})
	if err != nil {
		return va.WrapKeyErr(key, err)
	}
	return va.wrapIfErr(key, dec.Decode(raw))
}

// rejectNegativeNumbers fails numeric input for sizes and durations below zero.
func rejectNegativeNumbers(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if to != reflect.TypeOf(ByteSize(0)) && to != reflect.TypeOf(time.Duration(0)) {
		return data, nil
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if v.Int() < 0 {
			return nil, fmt.Errorf("negative value is not allowed: %d", v.Int())
		}
	case reflect.Float32, reflect.Float64:
		if v.Float() < 0 {
			return nil, fmt.Errorf("negative value is not allowed: %v", v.Float())
		}
	}
	return data, nil
}
