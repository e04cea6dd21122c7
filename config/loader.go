/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import "io"

// Loader fills Config objects from a Source.
// Defaults of all objects are registered before any of them is set,
// so objects sharing keys see each other's defaults.
type Loader struct {
	src Source
}

// NewLoader creates a Loader reading from src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// NewDefaultLoader creates a Loader over viper that also reads environment variables
// named <ENVPREFIX>_<KEY_PATH>. An empty prefix disables environment lookup.
func NewDefaultLoader(envVarsPrefix string) *Loader {
	va := NewViperAdapter()
	if envVarsPrefix != "" {
		va.UseEnvVars(envVarsPrefix)
	}
	return NewLoader(va)
}

// Load fills cfgs from defaults and environment variables only.
func (l *Loader) Load(cfgs ...Config) error {
	return l.apply(cfgs)
}

// LoadFile reads the file, detecting its format by extension, and fills cfgs.
func (l *Loader) LoadFile(path string, cfgs ...Config) error {
	dataType, err := DataTypeFromPath(path)
	if err != nil {
		return err
	}
	if err = l.src.ReadFile(path, dataType); err != nil {
		return err
	}
	return l.apply(cfgs)
}

// LoadFromReader reads data of the given format and fills cfgs.
func (l *Loader) LoadFromReader(r io.Reader, dataType DataType, cfgs ...Config) error {
	if err := l.src.Read(r, dataType); err != nil {
		return err
	}
	return l.apply(cfgs)
}

func (l *Loader) apply(cfgs []Config) error {
	scoped := make([]DataProvider, len(cfgs))
	for i, cfg := range cfgs {
		scoped[i] = DataProviderFor(l.src, cfg)
		cfg.SetProviderDefaults(scoped[i])
	}
	for i, cfg := range cfgs {
		if err := cfg.Set(scoped[i]); err != nil {
			return err
		}
	}
	return nil
}
