package version

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Error("expected a non-empty version")
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{"version only", Info{Version: "1.2.3"}, "1.2.3"},
		{"with commit", Info{Version: "1.2.3", GitCommit: "abc1234"}, "1.2.3-abc1234"},
		{"dirty", Info{Version: "dev", GitCommit: "abc1234", Modified: true}, "dev-abc1234-dirty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.info.Short(); got != tt.want {
				t.Errorf("Short() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortIsPrefixedByVersion(t *testing.T) {
	info := Get()
	if !strings.HasPrefix(info.Short(), info.Version) {
		t.Errorf("Short() = %q does not start with version %q", info.Short(), info.Version)
	}
}
