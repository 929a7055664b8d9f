package profile

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	cacheDirName = "cache"
	// LockFileName is held with flock while a window uses the profile.
	LockFileName = ".lock"
	// HistoryFileName is the per-profile history database.
	HistoryFileName = "history.sqlite"
)

// Storage is where an identity keeps its engine data. Ephemeral storage has no paths.
type Storage struct {
	Identity Identity
	DataDir  string
	CacheDir string
}

// Resolve maps an identity to its storage under root.
func Resolve(root string, id Identity) (Storage, error) {
	if id.Ephemeral {
		return Storage{Identity: id}, nil
	}
	if err := ValidateName(id.Name); err != nil {
		return Storage{}, err
	}
	if root == "" {
		return Storage{}, fmt.Errorf("profiles root is empty")
	}

	dataDir := filepath.Join(root, id.Name)
	return Storage{
		Identity: id,
		DataDir:  dataDir,
		CacheDir: filepath.Join(dataDir, cacheDirName),
	}, nil
}

// Ephemeral reports whether the storage lives only in memory.
func (s Storage) Ephemeral() bool {
	return s.Identity.Ephemeral
}

// LockPath returns the lock file path, empty for ephemeral storage.
func (s Storage) LockPath() string {
	if s.Ephemeral() {
		return ""
	}
	return filepath.Join(s.DataDir, LockFileName)
}

// HistoryPath returns the history database path, empty for ephemeral storage.
func (s Storage) HistoryPath() string {
	if s.Ephemeral() {
		return ""
	}
	return filepath.Join(s.DataDir, HistoryFileName)
}

// WindowTitle returns the browser window title for the identity.
func WindowTitle(appTitle string, id Identity) string {
	if id.Ephemeral {
		return fmt.Sprintf("%s — %s (Incognito)", appTitle, displayName(id.Name))
	}
	return fmt.Sprintf("%s — Profile: %s", appTitle, id.Name)
}

// ChooserTitle returns the profile chooser window title.
func ChooserTitle(appTitle string) string {
	return appTitle + " — Choose Profile"
}

func displayName(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
