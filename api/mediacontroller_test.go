package api

import (
	"path/filepath"
	"testing"
)

func TestResolveInside(t *testing.T) {
	base := t.TempDir()

	cases := []struct {
		name      string
		requested string
		wantOK    bool
	}{
		{"direct child", filepath.Join(base, "output_1.mp4"), true},
		{"nested child", filepath.Join(base, "sub", "output_1.mp4"), true},
		{"parent escape", filepath.Join(base, "..", "secret.mp4"), false},
		{"absolute outside", "/etc/passwd", false},
		{"dotdot inside name resolves out", filepath.Join(base, "a", "..", "..", "x.mp4"), false},
		{"base itself", base, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, ok := resolveInside(base, c.requested)
			if ok != c.wantOK {
				t.Fatalf("resolveInside(%q, %q) ok = %v; want %v", base, c.requested, ok, c.wantOK)
			}
		})
	}
}
