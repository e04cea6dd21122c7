/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

// Package libinfo exposes the module version for User-Agent headers and metric labels.
package libinfo

import (
	"maps"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	shortName  = "go-crptapi"
	modulePath = "github.com/acronis/" + shortName
)

// VersionLabel is the name of the constant label carrying the module version on every collector.
const VersionLabel = "go_crptapi_version"

const unknownVersion = "v0.0.0"

// Version returns the module version recorded in the build info, or "v0.0.0".
var Version = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion
	}
	if v := moduleVersion(info, modulePath); v != "" {
		return v
	}
	return unknownVersion
})

// UserAgent returns the default User-Agent value, e.g. "go-crptapi/v1.2.3".
func UserAgent() string {
	return shortName + "/" + Version()
}

// ConstLabels returns a copy of labels extended with the version label.
func ConstLabels(labels prometheus.Labels) prometheus.Labels {
	res := maps.Clone(labels)
	if res == nil {
		res = prometheus.Labels{}
	}
	res[VersionLabel] = Version()
	return res
}

// moduleVersion looks the module up among dependencies first, matching major version suffixes
// like "/v2", and falls back to the main module unless it was built from a working tree.
func moduleVersion(info *debug.BuildInfo, path string) string {
	if info == nil {
		return ""
	}
	for _, dep := range info.Deps {
		if dep != nil && isModulePath(dep.Path, path) {
			return dep.Version
		}
	}
	if isModulePath(info.Main.Path, path) && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return ""
}

func isModulePath(candidate, path string) bool {
	rest, ok := strings.CutPrefix(candidate, path)
	if !ok {
		return false
	}
	if rest == "" {
		return true
	}
	major, ok := strings.CutPrefix(rest, "/v")
	return ok && major != "" && strings.Trim(major, "0123456789") == ""
}
