// Package download builds safe file names for downloads offered by the engine.
package download

import (
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"unicode"
)

const (
	// DefaultFilename is used when no valid filename can be determined.
	DefaultFilename = "download"
	// maxFilenameBytes is the common NAME_MAX of Linux filesystems.
	maxFilenameBytes = 255
)

// DefaultName picks the name pre-filled in the save dialog.
// The engine's suggested name wins; otherwise the last URI path segment is used.
// The result is sanitized and gets an extension from mimeType when it has none.
func DefaultName(suggested, uri, mimeType string) string {
	name := strings.TrimSpace(suggested)
	if name == "" {
		name = NameFromURI(uri)
	}
	return SanitizeWithExtension(name, mimeType)
}

// Sanitize reduces name to a single safe path element.
// Directory components, control characters and "."/".." are removed.
func Sanitize(name string) string {
	// filepath.Base only splits on the native separator.
	name = strings.ReplaceAll(name, "\\", "/")
	clean := filepath.Base(name)

	clean = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, clean)
	clean = strings.TrimSpace(clean)

	if clean == "." || clean == ".." || clean == "" || clean == "/" {
		return DefaultFilename
	}
	return truncateName(clean)
}

// SanitizeWithExtension sanitizes name and appends an extension inferred from
// mimeType when the name has none.
func SanitizeWithExtension(name, mimeType string) string {
	clean := Sanitize(name)
	if filepath.Ext(clean) != "" {
		return clean
	}
	if ext := ExtensionForMIME(mimeType); ext != "" {
		return truncateName(clean + ext)
	}
	return clean
}

// truncateName keeps the extension while fitting maxFilenameBytes.
func truncateName(name string) string {
	if len(name) <= maxFilenameBytes {
		return name
	}
	ext := filepath.Ext(name)
	if len(ext) >= maxFilenameBytes {
		ext = ""
	}
	base := strings.TrimSuffix(name, ext)
	limit := maxFilenameBytes - len(ext)
	for len(base) > limit {
		_, size := lastRune(base)
		base = base[:len(base)-size]
	}
	return base + ext
}

func lastRune(s string) (rune, int) {
	r := []rune(s)
	last := r[len(r)-1]
	return last, len(string(last))
}

// preferredExtensions pins MIME types whose system extension list is
// alphabetical ("text/html" would yield ".ehtml").
var preferredExtensions = map[string]string{
	"text/html":                ".html",
	"text/plain":               ".txt",
	"text/xml":                 ".xml",
	"application/xhtml+xml":    ".xhtml",
	"application/json":         ".json",
	"application/pdf":          ".pdf",
	"application/zip":          ".zip",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"audio/mpeg":               ".mp3",
	"video/mp4":                ".mp4",
	"application/octet-stream": ".bin",
}

// ExtensionForMIME returns a file extension for a MIME type, parameters allowed.
// Returns "" when the type is empty or unknown.
func ExtensionForMIME(mimeType string) string {
	if mimeType == "" {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(mimeType)
	if err != nil || mediaType == "" {
		return ""
	}

	if ext, ok := preferredExtensions[mediaType]; ok {
		return ext
	}

	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}

// NameFromURI returns the last path segment of uri, unescaped.
func NameFromURI(uri string) string {
	if uri == "" {
		return DefaultFilename
	}

	path := uri
	if parsed, err := url.Parse(uri); err == nil {
		path = parsed.Path
	}

	base := filepath.Base(path)
	if base == "." || base == "" || base == "/" {
		return DefaultFilename
	}
	return base
}

// UniqueName appends _(N) to filename until exists reports a free path in dir.
func UniqueName(dir, filename string, exists func(path string) bool) string {
	if !exists(filepath.Join(dir, filename)) {
		return filename
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	for i := 1; i < 1000; i++ {
		candidate := fmt.Sprintf("%s_(%d)%s", base, i, ext)
		if !exists(filepath.Join(dir, candidate)) {
			return candidate
		}
	}
	return filename
}
