package launcher

import (
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// LookPath searches for file in the directories named by the PATH variable
// of env. Names containing a path separator are returned unchanged.
// Relative matches are rejected with exec.ErrDot, as exec.LookPath does.
func LookPath(file string, env []string) (string, error) {
	if strings.ContainsAny(file, pathSeparators) {
		return file, nil
	}

	for _, dir := range filepath.SplitList(envValue(env, "PATH")) {
		if dir == "" {
			continue
		}
		for _, candidate := range candidates(filepath.Join(dir, file), env) {
			if !isExecutable(candidate) {
				continue
			}
			if !filepath.IsAbs(candidate) {
				return "", &exec.Error{Name: file, Err: exec.ErrDot}
			}
			return candidate, nil
		}
	}

	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

// envValue returns the value of the last NAME=VALUE entry for name.
func envValue(env []string, name string) string {
	value := ""
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if k == name || (runtime.GOOS == "windows" && strings.EqualFold(k, name)) {
			value = v
		}
	}
	return value
}
