// Package assets embeds the bundled pages and writes them where the engine can load them.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// HomePage is the file name of the bundled start page.
	HomePage = "home.html"
	// MiniGamePage is the file name of the bundled mini-game.
	MiniGamePage = "snake.html"
)

// Pages contains the bundled HTML pages.
//
//go:embed pages/*.html
var Pages embed.FS

// MaterializePages copies the bundled pages into dir and returns the paths
// written, keyed by file name. Files already holding the same bytes are left alone.
func MaterializePages(dir string) (map[string]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pages dir: %w", err)
	}

	entries, err := fs.ReadDir(Pages, "pages")
	if err != nil {
		return nil, fmt.Errorf("read embedded pages: %w", err)
	}

	paths := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := fs.ReadFile(Pages, "pages/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read embedded %s: %w", entry.Name(), err)
		}

		dest := filepath.Join(dir, entry.Name())
		if err := writeIfChanged(dest, content); err != nil {
			return nil, err
		}
		paths[entry.Name()] = dest
	}
	return paths, nil
}

func writeIfChanged(path string, content []byte) error {
	if current, err := os.ReadFile(path); err == nil && bytes.Equal(current, content) {
		return nil
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("install %s: %w", path, err)
	}
	return nil
}
