/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestByteSize_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"Valid Integer", `1024`, ByteSize(1024), false},
		{"Valid Human-Readable", `"10MB"`, ByteSize(10 * 1024 * 1024), false},
		{"Valid k8s suffix", `"2Mi"`, ByteSize(2 * 1024 * 1024), false},
		{"Invalid Format", `"invalid"`, 0, true},
		{"Negative Value", `"-1024"`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b ByteSize
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, b)
		})
	}
}

func TestByteSize_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ByteSize
		wantErr bool
	}{
		{"Valid Integer", "size: 2048", ByteSize(2048), false},
		{"Valid Human-Readable", "size: 20MB", ByteSize(20 * 1024 * 1024), false},
		{"Invalid Format", "size: invalid", 0, true},
		{"Negative Value", "size: -1024", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg struct{ Size ByteSize }
			err := yaml.Unmarshal([]byte(tt.input), &cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Size)
		})
	}
}

func TestByteSize_String(t *testing.T) {
	require.Equal(t, "512B", ByteSize(512).String())
	require.Equal(t, "2M", ByteSize(2*1024*1024).String())
}

func TestTimeDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeDuration
		wantErr bool
	}{
		{"Nanoseconds", `1000`, TimeDuration(1000), false},
		{"Human-Readable", `"1m30s"`, TimeDuration(90 * time.Second), false},
		{"Invalid Format", `"soon"`, 0, true},
		{"Negative Value", `-5`, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d TimeDuration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestTimeDuration_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeDuration
		wantErr bool
	}{
		{"Nanoseconds", "window: 500", TimeDuration(500), false},
		{"Human-Readable", "window: 1m", TimeDuration(time.Minute), false},
		{"Invalid Format", "window: soon", 0, true},
		{"Negative Value", "window: -1", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg struct{ Window TimeDuration }
			err := yaml.Unmarshal([]byte(tt.input), &cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg.Window)
		})
	}
}

func TestParseByteSize(t *testing.T) {
	for in, want := range map[string]ByteSize{
		"0":      0,
		" 4096 ": 4096,
		"1K":     1024,
		"250M":   250 * 1024 * 1024,
		"1Gi":    1024 * 1024 * 1024,
	} {
		got, err := ParseByteSize(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseByteSize("-1K")
	require.ErrorIs(t, err, errNegative)
}

func TestParseTimeDuration(t *testing.T) {
	got, err := ParseTimeDuration("250ms")
	require.NoError(t, err)
	require.Equal(t, TimeDuration(250*time.Millisecond), got)

	_, err = ParseTimeDuration("-1s")
	require.ErrorIs(t, err, errNegative)
}
