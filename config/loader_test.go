/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEndpointConfig struct {
	Endpoint string
}

func (c *testEndpointConfig) KeyPrefix() string {
	return "documents"
}

func (c *testEndpointConfig) SetProviderDefaults(dp DataProvider) {
	dp.SetDefault("endpoint", "https://default.example.com")
}

func (c *testEndpointConfig) Set(dp DataProvider) error {
	var err error
	c.Endpoint, err = dp.GetString("endpoint")
	return err
}

type testLevelConfig struct {
	Level string
}

func (c *testLevelConfig) SetProviderDefaults(dp DataProvider) {
	dp.SetDefault("log.level", "info")
}

func (c *testLevelConfig) Set(dp DataProvider) error {
	var err error
	c.Level, err = dp.GetString("log.level")
	return err
}

func TestLoader_LoadFromReader(t *testing.T) {
	t.Run("use defaults", func(t *testing.T) {
		endpointCfg := &testEndpointConfig{}
		levelCfg := &testLevelConfig{}
		err := NewLoader(NewViperAdapter()).LoadFromReader(bytes.NewBufferString(`{}`), DataTypeJSON, endpointCfg, levelCfg)
		require.NoError(t, err)
		require.Equal(t, "https://default.example.com", endpointCfg.Endpoint)
		require.Equal(t, "info", levelCfg.Level)
	})

	t.Run("use key prefix", func(t *testing.T) {
		endpointCfg := &testEndpointConfig{}
		levelCfg := &testLevelConfig{}
		err := NewLoader(NewViperAdapter()).LoadFromReader(
			bytes.NewBufferString(testDocumentsConfigYAML), DataTypeYAML, endpointCfg, levelCfg)
		require.NoError(t, err)
		require.Equal(t, "https://registry.example.com/api/v3/lk/documents/create", endpointCfg.Endpoint)
		require.Equal(t, "debug", levelCfg.Level)
	})
}

func TestLoader_Load(t *testing.T) {
	t.Setenv("LOADERTEST_DOCUMENTS_ENDPOINT", "https://env.example.com")

	endpointCfg := &testEndpointConfig{}
	require.NoError(t, NewDefaultLoader("loadertest").Load(endpointCfg))
	require.Equal(t, "https://env.example.com", endpointCfg.Endpoint)
}

func TestDataTypeFromPath(t *testing.T) {
	for path, want := range map[string]DataType{
		"config.yaml":     DataTypeYAML,
		"/etc/crpt/a.YML": DataTypeYAML,
		"config.json":     DataTypeJSON,
	} {
		got, err := DataTypeFromPath(path)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := DataTypeFromPath("config.toml")
	require.EqualError(t, err, `unsupported config file extension ".toml", should be one of [.yaml, .yml, .json]`)
}

func TestLoader_LoadFile(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "crptapi.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(testDocumentsConfigYAML), 0o600))

	endpointCfg := &testEndpointConfig{}
	require.NoError(t, NewLoader(NewViperAdapter()).LoadFile(yamlPath, endpointCfg))
	require.Equal(t, "https://registry.example.com/api/v3/lk/documents/create", endpointCfg.Endpoint)

	err := NewLoader(NewViperAdapter()).LoadFile(filepath.Join(dir, "crptapi.ini"), endpointCfg)
	require.EqualError(t, err, `unsupported config file extension ".ini", should be one of [.yaml, .yml, .json]`)

	err = NewLoader(NewViperAdapter()).LoadFile(filepath.Join(dir, "missing.json"), endpointCfg)
	require.Error(t, err)
}

type failingConfig struct {
	setCalled bool
}

func (c *failingConfig) SetProviderDefaults(DataProvider) {}

func (c *failingConfig) Set(dp DataProvider) error {
	c.setCalled = true
	return dp.WrapKeyErr("value", errors.New("broken"))
}

func TestLoader_StopsOnFirstError(t *testing.T) {
	first := &failingConfig{}
	second := &testEndpointConfig{}
	err := NewLoader(NewViperAdapter()).Load(first, second)
	require.EqualError(t, err, "value: broken")
	require.True(t, first.setCalled)
	require.Empty(t, second.Endpoint)
}
