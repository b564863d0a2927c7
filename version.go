package workshopsync

import (
	"runtime/debug"
	"strings"
)

// Semver is the semantic version of workshopsync.
// Meant to be be overridden at build time,
// but kept up-to-date sometimes to best
// support `go install`.
var Semver = "0.1.0"

// GetSemver returns the semantic version of workshopsync as built from
// Semver and debug build info.
func GetSemver() string {
	version := Semver

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		var (
			revision string
			modified bool
		)
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				revision = setting.Value
			case "vcs.modified":
				modified = setting.Value == "true"
			}
		}

		if revision != "" {
			i := min(len(revision), 7)

			if !strings.Contains(version, revision[:i]) {
				version += "+" + revision[:i]
			}
		}

		if modified {
			version += "*"
		}
	}

	return version
}
