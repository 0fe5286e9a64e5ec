//go:build !windows

package launcher

import "os"

const pathSeparators = "/"

func candidates(path string, _ []string) []string {
	return []string{path}
}

func isExecutable(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.Mode().IsRegular() && fi.Mode().Perm()&0o111 != 0
}
