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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testDocumentsConfigYAML = `
documents:
  endpoint: https://registry.example.com/api/v3/lk/documents/create
  rateLimit:
    algorithm: fixedWindow
    limit: 10
    window: 1m
log:
  level: debug
  file:
    rotation:
      maxSize: 100M
`

const testDocumentsConfigJSON = `{
  "documents": {
    "endpoint": "https://registry.example.com/api/v3/lk/documents/create",
    "rateLimit": {"algorithm": "fixedWindow", "limit": 10, "window": "1m"}
  },
  "log": {"level": "debug", "file": {"rotation": {"maxSize": "100M"}}}
}`

func TestViperAdapter_Read(t *testing.T) {
	tests := []struct {
		dataType DataType
		text     string
	}{
		{DataTypeYAML, testDocumentsConfigYAML},
		{DataTypeJSON, testDocumentsConfigJSON},
	}
	for _, tt := range tests {
		t.Run(string(tt.dataType), func(t *testing.T) {
			va := NewViperAdapter()
			require.NoError(t, va.Read(bytes.NewBufferString(tt.text), tt.dataType))

			endpoint, err := va.GetString("documents.endpoint")
			require.NoError(t, err)
			require.Equal(t, "https://registry.example.com/api/v3/lk/documents/create", endpoint)

			limit, err := va.GetInt("documents.rateLimit.limit")
			require.NoError(t, err)
			require.Equal(t, 10, limit)

			window, err := va.GetDuration("documents.rateLimit.window")
			require.NoError(t, err)
			require.Equal(t, time.Minute, window)

			maxSize, err := va.GetByteSize("log.file.rotation.maxSize")
			require.NoError(t, err)
			require.Equal(t, ByteSize(100*1024*1024), maxSize)
		})
	}
}

func TestViperAdapter_ReadFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(testDocumentsConfigYAML), 0o600))

	va := NewViperAdapter()
	require.NoError(t, va.ReadFile(fname, DataTypeYAML))

	algorithm, err := va.GetString("documents.rateLimit.algorithm")
	require.NoError(t, err)
	require.Equal(t, "fixedWindow", algorithm)
}

func TestViperAdapter_UseEnvVars(t *testing.T) {
	t.Setenv("TEST_DOCUMENTS_SIGNATURE", "env-signature")
	t.Setenv("TEST_DOCUMENTS_RATELIMIT_LIMIT", "3")

	va := NewViperAdapter()
	va.UseEnvVars("test")
	require.NoError(t, va.Read(bytes.NewBufferString(testDocumentsConfigYAML), DataTypeYAML))

	signature, err := va.GetString("documents.signature")
	require.NoError(t, err)
	require.Equal(t, "env-signature", signature)

	limit, err := va.GetInt("documents.rateLimit.limit")
	require.NoError(t, err)
	require.Equal(t, 3, limit)
}

func TestViperAdapter_GetStringFromSet(t *testing.T) {
	va := NewViperAdapter()
	set := []string{"fixedWindow", "slidingWindow"}

	va.Set("algorithm", "FIXEDWINDOW")
	val, err := va.GetStringFromSet("algorithm", set, true)
	require.NoError(t, err)
	require.Equal(t, "FIXEDWINDOW", val)

	_, err = va.GetStringFromSet("algorithm", set, false)
	require.EqualError(t, err, `algorithm: unknown value "FIXEDWINDOW", should be one of [fixedWindow slidingWindow]`)
}

func TestViperAdapter_GetDuration(t *testing.T) {
	va := NewViperAdapter()

	d, err := va.GetDuration("missing")
	require.NoError(t, err)
	require.Zero(t, d)

	va.Set("window", "1s500ms")
	d, err = va.GetDuration("window")
	require.NoError(t, err)
	require.Equal(t, 1500*time.Millisecond, d)

	va.Set("window", "soon")
	_, err = va.GetDuration("window")
	require.Error(t, err)
}

func TestViperAdapter_GetByteSize(t *testing.T) {
	va := NewViperAdapter()

	va.Set("size", 1024)
	bs, err := va.GetByteSize("size")
	require.NoError(t, err)
	require.Equal(t, ByteSize(1024), bs)

	va.Set("size", "1Gi")
	bs, err = va.GetByteSize("size")
	require.NoError(t, err)
	require.Equal(t, ByteSize(1024*1024*1024), bs)

	va.Set("size", -1)
	_, err = va.GetByteSize("size")
	require.ErrorContains(t, err, "negative value is not allowed: -1")
	require.True(t, strings.HasPrefix(err.Error(), "size: "))

	va.Set("size", "-5M")
	_, err = va.GetByteSize("size")
	require.ErrorIs(t, err, errNegative)
}

func TestViperAdapter_Sub(t *testing.T) {
	va := NewViperAdapter()
	require.NoError(t, va.Read(bytes.NewBufferString(testDocumentsConfigYAML), DataTypeYAML))

	dp := va.Sub("documents").Sub("rateLimit")
	limit, err := dp.GetInt("limit")
	require.NoError(t, err)
	require.Equal(t, 10, limit)

	window, err := dp.GetDuration("window")
	require.NoError(t, err)
	require.Equal(t, time.Minute, window)

	dp.SetDefault("burst", 5)
	burst, err := va.GetInt("documents.rateLimit.burst")
	require.NoError(t, err)
	require.Equal(t, 5, burst)

	require.Same(t, va, va.Sub(""))
	require.EqualError(t, dp.WrapKeyErr("limit", errors.New("must be positive")),
		"documents.rateLimit.limit: must be positive")

	_, err = dp.GetStringFromSet("algorithm", []string{"tokenBucket"}, false)
	require.EqualError(t, err,
		`documents.rateLimit.algorithm: unknown value "fixedWindow", should be one of [tokenBucket]`)
}
