/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// DataType is a format of configuration data.
type DataType string

// Supported formats.
const (
	DataTypeYAML DataType = "yaml"
	DataTypeJSON DataType = "json"
)

var dataTypesByExt = map[string]DataType{
	".yaml": DataTypeYAML,
	".yml":  DataTypeYAML,
	".json": DataTypeJSON,
}

// DataTypeFromPath detects the format by the file extension.
func DataTypeFromPath(path string) (DataType, error) {
	ext := filepath.Ext(path)
	if dt, ok := dataTypesByExt[strings.ToLower(ext)]; ok {
		return dt, nil
	}
	return "", fmt.Errorf("unsupported config file extension %q, should be one of [.yaml, .yml, .json]", ext)
}

// DataProvider gives typed access to configuration values.
// Keys are dot-separated paths relative to the provider's prefix.
type DataProvider interface {
	// Sub returns a provider that resolves keys under the given prefix.
	Sub(prefix string) DataProvider

	SetDefault(key string, value interface{})

	GetBool(key string) (bool, error)
	GetInt(key string) (int, error)
	GetString(key string) (string, error)
	GetStringFromSet(key string, set []string, ignoreCase bool) (string, error)
	GetDuration(key string) (time.Duration, error)
	GetByteSize(key string) (ByteSize, error)

	// WrapKeyErr prefixes err with the full path of the key.
	WrapKeyErr(key string, err error) error
}

// Source is a DataProvider that can read configuration data.
type Source interface {
	DataProvider
	ReadFile(path string, dataType DataType) error
	Read(r io.Reader, dataType DataType) error
}

// WrapKeyErr prefixes err with the key.
func WrapKeyErr(key string, err error) error {
	return fmt.Errorf("%s: %w", key, err)
}
