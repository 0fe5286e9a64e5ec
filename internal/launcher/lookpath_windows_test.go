//go:build windows

package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathExt(t *testing.T) {
	tests := []struct {
		env  []string
		want []string
	}{
		{nil, []string{".com", ".exe", ".bat", ".cmd"}},
		{[]string{"PATHEXT=.EXE;PS1;;.Cmd"}, []string{".exe", ".ps1", ".cmd"}},
		{[]string{"PathExt=.exe"}, []string{".exe"}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, pathExt(tt.env)); diff != "" {
			t.Errorf("pathExt(%v) mismatch (-want +got):\n%s", tt.env, diff)
		}
	}
}

func TestLookPath_PathExt(t *testing.T) {
	dir := t.TempDir()
	tool := filepath.Join(dir, "tool.exe")
	if err := os.WriteFile(tool, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	env := []string{"Path=" + dir, "PATHEXT=.COM;.EXE"}
	for _, name := range []string{"tool", "tool.exe"} {
		got, err := LookPath(name, env)
		if err != nil {
			t.Fatalf("LookPath(%q) returned error: %v", name, err)
		}
		if got != tool {
			t.Errorf("LookPath(%q) = %q, want %q", name, got, tool)
		}
	}
}
