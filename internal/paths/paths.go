package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the application name used for directory naming.
const AppName = "udh"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error for backward compatibility.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns the directory holding udh's own configuration.
// Returns <ConfigHome>/udh
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// BackupRoot returns the default root directory for the snapshot store.
// Returns <ConfigHome>/udh/backups
func BackupRoot() string {
	return filepath.Join(AppConfigDir(), "backups")
}

// EditorUserDir returns the editor's user configuration directory,
// where the live settings and keybindings files reside.
// Returns <ConfigHome>/Code/User
func EditorUserDir() string {
	return filepath.Join(ConfigHome(), "Code", "User")
}

// LiveFile returns the path to the live configuration file for a
// resource name (e.g. "settings" -> <EditorUserDir>/settings.json).
func LiveFile(resource string) string {
	return filepath.Join(EditorUserDir(), resource+".json")
}

// SyncResourceDir returns the sync service's snapshot directory for a
// resource name. This tree is externally populated; udh only reads it.
// Returns <EditorUserDir>/sync/<resource>
func SyncResourceDir(resource string) string {
	return filepath.Join(EditorUserDir(), "sync", resource)
}

// SyncRoot returns the root of the sync service's snapshot tree.
// Returns <EditorUserDir>/sync
func SyncRoot() string {
	return filepath.Join(EditorUserDir(), "sync")
}
