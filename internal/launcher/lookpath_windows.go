//go:build windows

package launcher

import (
	"os"
	"path/filepath"
	"strings"
)

const pathSeparators = `\/:`

const defaultPathExt = ".com;.exe;.bat;.cmd"

// candidates returns path itself when it already has an extension, followed
// by path with every PATHEXT extension appended.
func candidates(path string, env []string) []string {
	var out []string
	if filepath.Ext(path) != "" {
		out = append(out, path)
	}
	for _, ext := range pathExt(env) {
		out = append(out, path+ext)
	}
	return out
}

func pathExt(env []string) []string {
	value := envValue(env, "PATHEXT")
	if value == "" {
		value = defaultPathExt
	}

	var exts []string
	for _, e := range strings.Split(strings.ToLower(value), ";") {
		if e == "" {
			continue
		}
		if e[0] != '.' {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !fi.IsDir()
}
