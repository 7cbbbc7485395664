// Package version reports the build version of vimterm.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/vimterm/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/vimterm/internal/version.Commit=abc1234"
//
// Unset values are filled from the VCS stamp in the build info.
var (
	Version = ""
	Commit  = ""
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

var (
	info     Info
	infoOnce sync.Once
)

// Get returns the build information, resolving it on first use.
func Get() Info {
	infoOnce.Do(func() {
		info = resolve(Version, Commit, readBuildSettings())
	})
	return info
}

// Full returns the version and commit on one line.
func Full() string {
	i := Get()
	return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
}

// String renders the detailed form used by the version command.
func (i Info) String() string {
	return fmt.Sprintf("vimterm %s\n  commit:   %s\n  go:       %s\n  platform: %s",
		i.Version, i.Commit, i.GoVersion, i.Platform)
}

func readBuildSettings() map[string]string {
	settings := make(map[string]string)
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range bi.Settings {
		settings[s.Key] = s.Value
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		settings["main.version"] = bi.Main.Version
	}
	return settings
}

// resolve prefers ldflags values, then the module version and VCS stamp,
// then a dev placeholder.
func resolve(version, commit string, settings map[string]string) Info {
	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			if settings["vcs.modified"] == "true" {
				rev += "-dirty"
			}
			commit = rev
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		version = settings["main.version"]
	}
	if version == "" {
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			version = "dev-" + t.Format("20060102")
		}
	}
	if version == "" {
		version = "dev"
	}

	return Info{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}
