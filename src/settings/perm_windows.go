//go:build windows

package settings

// setFilePermissions is a no-op on Windows, where files inherit the ACLs of
// the user profile directory.
func setFilePermissions(path string) error {
	return nil
}
