package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		commit      string
		settings    map[string]string
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.0.0",
			commit:      "abc1234",
			settings:    map[string]string{"vcs.revision": "ffffffffffff"},
			wantVersion: "v1.0.0",
			wantCommit:  "abc1234",
		},
		{
			name:        "vcs stamp",
			settings:    map[string]string{"vcs.revision": "0123456789abcdef", "vcs.time": "2024-03-05T10:00:00Z"},
			wantVersion: "dev-20240305",
			wantCommit:  "0123456",
		},
		{
			name:        "dirty tree",
			settings:    map[string]string{"vcs.revision": "0123456789", "vcs.modified": "true"},
			wantVersion: "dev",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "module version",
			settings:    map[string]string{"main.version": "v0.2.1"},
			wantVersion: "v0.2.1",
			wantCommit:  "unknown",
		},
		{
			name:        "nothing known",
			settings:    map[string]string{},
			wantVersion: "dev",
			wantCommit:  "unknown",
		},
		{
			name:        "short revision",
			settings:    map[string]string{"vcs.revision": "abc"},
			wantVersion: "dev",
			wantCommit:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, tt.settings)
			if got.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", got.Version, tt.wantVersion)
			}
			if got.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", got.Commit, tt.wantCommit)
			}
			if got.GoVersion != runtime.Version() {
				t.Errorf("GoVersion = %q, want %q", got.GoVersion, runtime.Version())
			}
		})
	}
}

func TestGetIsStable(t *testing.T) {
	first := Get()
	if first.Version == "" || first.Commit == "" {
		t.Errorf("Get() = %+v, want non-empty version and commit", first)
	}
	if Get() != first {
		t.Error("Get() should return the same value on every call")
	}
	if !strings.Contains(Full(), first.Commit) {
		t.Errorf("Full() = %q, should contain commit %q", Full(), first.Commit)
	}
}

func TestInfoString(t *testing.T) {
	s := Info{Version: "v1", Commit: "c", GoVersion: "go1.24", Platform: "linux/amd64"}.String()
	for _, want := range []string{"vimterm v1", "commit:   c", "go1.24", "linux/amd64"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
