// Package version exposes build metadata injected with -ldflags.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time:
//
//	-ldflags "-X obleafusion/internal/shared/version.Version=1.4.0 -X obleafusion/internal/shared/version.Commit=abc123"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Info is the build metadata served by the version endpoint.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the current build metadata with a normalized version.
func Get() Info {
	return Info{
		Version:   Normalize(Version),
		Commit:    Commit,
		BuildTime: BuildTime,
	}
}

// Normalize returns the canonical semver form of version ("1.2" -> "v1.2.0").
// Values that are not semver, such as "dev", are returned trimmed.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	prefixed := version
	if !strings.HasPrefix(prefixed, "v") {
		prefixed = "v" + prefixed
	}
	if !semver.IsValid(prefixed) {
		return version
	}
	return semver.Canonical(prefixed)
}

// IsRelease reports whether version is a semver release without a prerelease tag.
func IsRelease(version string) bool {
	v := Normalize(version)
	return semver.IsValid(v) && semver.Prerelease(v) == ""
}
