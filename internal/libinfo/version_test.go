/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package libinfo

import (
	"runtime/debug"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestModuleVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want string
	}{
		{
			name: "dependency",
			info: &debug.BuildInfo{Deps: []*debug.Module{
				{Path: "github.com/spf13/viper", Version: "v1.19.0"},
				{Path: modulePath, Version: "v0.4.0"},
			}},
			want: "v0.4.0",
		},
		{
			name: "major version suffix",
			info: &debug.BuildInfo{Deps: []*debug.Module{{Path: modulePath + "/v2", Version: "v2.0.1"}}},
			want: "v2.0.1",
		},
		{
			name: "similar path is not matched",
			info: &debug.BuildInfo{Deps: []*debug.Module{{Path: modulePath + "-extra", Version: "v1.0.0"}}},
			want: "",
		},
		{
			name: "main module",
			info: &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "v1.1.0"}},
			want: "v1.1.0",
		},
		{
			name: "main module from working tree",
			info: &debug.BuildInfo{Main: debug.Module{Path: modulePath, Version: "(devel)"}},
			want: "",
		},
		{
			name: "nil build info",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, moduleVersion(tt.info, modulePath))
		})
	}
}

func TestUserAgent(t *testing.T) {
	require.NotEmpty(t, Version())
	require.Equal(t, "go-crptapi/"+Version(), UserAgent())
}

func TestConstLabels(t *testing.T) {
	require.Equal(t, prometheus.Labels{VersionLabel: Version()}, ConstLabels(nil))

	labels := prometheus.Labels{"algorithm": "fixedWindow"}
	got := ConstLabels(labels)
	require.Equal(t, Version(), got[VersionLabel])
	require.Equal(t, "fixedWindow", got["algorithm"])
	require.NotContains(t, labels, VersionLabel)
}
