//go:build !windows

package settings

import "os"

// setFilePermissions restricts the weatherrc to its owner; it holds the API key.
func setFilePermissions(path string) error {
	return os.Chmod(path, 0600)
}
