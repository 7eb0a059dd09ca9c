package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestApp(t *testing.T) {
	v := App()
	if v == "" {
		t.Fatal("App() returned empty version")
	}
	if strings.TrimSpace(v) != v {
		t.Errorf("App() = %q, want no surrounding whitespace", v)
	}
}

func TestPlatform(t *testing.T) {
	want := runtime.GOOS + "/" + runtime.GOARCH
	if got := Platform(); got != want {
		t.Errorf("Platform() = %q, want %q", got, want)
	}
}

func TestBuildInfoDefaults(t *testing.T) {
	// Without ldflags overrides both build-time values report unknown.
	if got := GetGitCommit(); got != "unknown" {
		t.Errorf("GetGitCommit() = %q, want unknown", got)
	}
	if got := GetBuildDate(); got != "unknown" {
		t.Errorf("GetBuildDate() = %q, want unknown", got)
	}
}
