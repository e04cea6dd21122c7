/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"fmt"
	"strings"

	"github.com/acronis/go-crptapi/config"
)

const cfgDefaultKeyPrefix = "log"

// Level is a minimal severity of entries that are written.
type Level string

// Levels.
const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// Format is an encoding of log entries.
type Format string

// Formats.
const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Output is a destination of log entries.
type Output string

// Outputs.
const (
	OutputStdout Output = "stdout"
	OutputStderr Output = "stderr"
	OutputFile   Output = "file"
)

// Rotation limits.
const (
	DefaultFileRotationMaxSizeBytes = 250 << 20
	MinFileRotationMaxSizeBytes     = 1 << 20
	DefaultFileRotationMaxBackups   = 10
	MinFileRotationMaxBackups       = 1
)

var (
	levels  = []Level{LevelError, LevelWarn, LevelInfo, LevelDebug}
	formats = []Format{FormatJSON, FormatText}
	outputs = []Output{OutputStdout, OutputStderr, OutputFile}
)

// Config configures NewLogger. It's read under the "log" key:
//
//	log:
//	  level: info           # error, warn, info, debug
//	  format: json          # json, text
//	  output: file          # stdout, stderr, file
//	  nocolor: false        # text format only
//	  addCaller: false
//	  file:
//	    path: crptapi-{{pid}}.log
//	    rotation: {maxSize: 250M, maxBackups: 10, maxAgeDays: 0, compress: false}
type Config struct {
	Level     Level            `yaml:"level" json:"level"`
	Format    Format           `yaml:"format" json:"format"`
	Output    Output           `yaml:"output" json:"output"`
	NoColor   bool             `yaml:"nocolor" json:"nocolor"`
	AddCaller bool             `yaml:"addCaller" json:"addCaller"`
	File      FileOutputConfig `yaml:"file" json:"file"`

	keyPrefix string
}

// FileOutputConfig is used when Output is OutputFile.
type FileOutputConfig struct {
	Path     string             `yaml:"path" json:"path"`
	Rotation FileRotationConfig `yaml:"rotation" json:"rotation"`
}

// FileRotationConfig controls lumberjack rotation. MaxAgeDays = 0 keeps old files forever.
type FileRotationConfig struct {
	MaxSize    config.ByteSize `yaml:"maxSize" json:"maxSize"`
	MaxBackups int             `yaml:"maxBackups" json:"maxBackups"`
	MaxAgeDays int             `yaml:"maxAgeDays" json:"maxAgeDays"`
	Compress   bool            `yaml:"compress" json:"compress"`
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// NewConfig creates an empty Config to be filled by config.Loader.
func NewConfig() *Config {
	return &Config{keyPrefix: cfgDefaultKeyPrefix}
}

// NewDefaultConfig creates a Config with the values Loader would set for empty input.
func NewDefaultConfig() *Config {
	cfg := NewConfig()
	cfg.Level = LevelInfo
	cfg.Format = FormatJSON
	cfg.Output = OutputStdout
	cfg.File.Rotation.MaxSize = DefaultFileRotationMaxSizeBytes
	cfg.File.Rotation.MaxBackups = DefaultFileRotationMaxBackups
	return cfg
}

// KeyPrefix implements config.KeyPrefixProvider.
func (c *Config) KeyPrefix() string {
	if c.keyPrefix == "" {
		return cfgDefaultKeyPrefix
	}
	return c.keyPrefix
}

// SetProviderDefaults implements config.Config.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault("level", string(LevelInfo))
	dp.SetDefault("format", string(FormatJSON))
	dp.SetDefault("output", string(OutputStdout))
	rotation := dp.Sub("file").Sub("rotation")
	rotation.SetDefault("maxSize", config.ByteSize(DefaultFileRotationMaxSizeBytes).String())
	rotation.SetDefault("maxBackups", DefaultFileRotationMaxBackups)
}

// Set implements config.Config.
func (c *Config) Set(dp config.DataProvider) error {
	var err error
	if c.Level, err = oneOf(dp, "level", levels); err != nil {
		return err
	}
	if c.Format, err = oneOf(dp, "format", formats); err != nil {
		return err
	}
	if c.Output, err = oneOf(dp, "output", outputs); err != nil {
		return err
	}
	if c.NoColor, err = dp.GetBool("nocolor"); err != nil {
		return err
	}
	if c.AddCaller, err = dp.GetBool("addCaller"); err != nil {
		return err
	}
	return c.File.set(dp.Sub("file"), c.Output == OutputFile)
}

func (f *FileOutputConfig) set(dp config.DataProvider, pathRequired bool) error {
	var err error
	if f.Path, err = dp.GetString("path"); err != nil {
		return err
	}
	if pathRequired && f.Path == "" {
		return dp.WrapKeyErr("path", fmt.Errorf("cannot be empty when %q output is used", OutputFile))
	}
	return f.Rotation.set(dp.Sub("rotation"))
}

func (r *FileRotationConfig) set(dp config.DataProvider) error {
	var err error
	if r.MaxSize, err = dp.GetByteSize("maxSize"); err != nil {
		return err
	}
	if r.MaxBackups, err = dp.GetInt("maxBackups"); err != nil {
		return err
	}
	if r.MaxAgeDays, err = dp.GetInt("maxAgeDays"); err != nil {
		return err
	}
	if r.Compress, err = dp.GetBool("compress"); err != nil {
		return err
	}

	switch {
	case r.MaxSize < MinFileRotationMaxSizeBytes:
		return dp.WrapKeyErr("maxSize", fmt.Errorf("should be >= %s", config.ByteSize(MinFileRotationMaxSizeBytes)))
	case r.MaxBackups < MinFileRotationMaxBackups:
		return dp.WrapKeyErr("maxBackups", fmt.Errorf("should be >= %d", MinFileRotationMaxBackups))
	case r.MaxAgeDays < 0:
		return dp.WrapKeyErr("maxAgeDays", fmt.Errorf("should be >= 0"))
	}
	return nil
}

// oneOf reads a case-insensitive enum value.
func oneOf[T ~string](dp config.DataProvider, key string, allowed []T) (T, error) {
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	s, err := dp.GetStringFromSet(key, names, true)
	if err != nil {
		return "", err
	}
	return T(strings.ToLower(s)), nil
}
