/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime"
	"testing"
)

func set(t *testing.T, v, commit, tag, dirty string) {
	t.Helper()
	saved := []string{Version, GitCommit, GitTag, GitDirty}
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})
	Version, GitCommit, GitTag, GitDirty = v, commit, tag, dirty
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name                    string
		version, commit, tag, d string
		want                    string
	}{
		{"ldflags version", "v1.2.0", "unknown", "unknown", "", "v1.2.0"},
		{"tag and commit", "dev", "abcdef123456", "v1.1.0", "", "v1.1.0-abcdef1"},
		{"dirty tree", "dev", "abcdef1", "v1.1.0", "dirty", "v1.1.0-abcdef1-dirty"},
		{"tag already has commit", "dev", "abcdef1", "v1.1.0-abcdef1", "", "v1.1.0-abcdef1"},
		{"nothing known", "dev", "unknown", "unknown", "", "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set(t, tt.version, tt.commit, tt.tag, tt.d)
			if got := resolve(""); got != tt.want {
				t.Errorf("resolve() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("module version", func(t *testing.T) {
		set(t, "dev", "abcdef1", "v1.1.0", "")
		if got := resolve("v1.3.0"); got != "v1.3.0" {
			t.Errorf("resolve() = %q, want module version", got)
		}
	})
}

func TestFull(t *testing.T) {
	set(t, "v1.2.0", "abcdef1", "v1.2.0", "")
	if got, want := Full(), "v1.2.0 (commit: abcdef1)"; got != want {
		t.Errorf("Full() = %q, want %q", got, want)
	}
}

func TestInfo(t *testing.T) {
	set(t, "v1.2.0", "abcdef1", "v1.2.0", "dirty")
	info := Info()
	if info.Version != "v1.2.0" || !info.Dirty || info.GoVersion != runtime.Version() {
		t.Errorf("unexpected build info: %+v", info)
	}
}
