// Package url turns URL bar input into loadable addresses.
package url

import (
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
)

// schemePattern matches hierarchical URLs such as "https://", "file://" or "bmb://".
var schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://`)

// opaqueSchemes have no "//" after the colon but must still be left alone.
var opaqueSchemes = []string{"about:", "data:", "javascript:", "mailto:", "view-source:", "blob:"}

// PathExists reports whether a URL bar input names a local file or directory.
type PathExists func(path string) bool

// Resolve turns URL bar input into an address.
// Empty input yields ok=false and no navigation should happen.
// An existing local path becomes a file:// URL of its absolute path, input with a
// scheme is returned unchanged, anything else gets https:// prepended.
func Resolve(input string, exists PathExists) (address string, ok bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return "", false
	}

	if exists != nil && exists(text) {
		if fileURL, err := FromLocalFile(text); err == nil {
			return fileURL, true
		}
	}

	if HasScheme(text) {
		return text, true
	}
	// Scheme-relative input ("//host/path") already names a host.
	if strings.HasPrefix(text, "//") {
		text = strings.TrimLeft(text, "/")
	}
	return "https://" + text, true
}

// HasScheme reports whether input already carries a URL scheme.
func HasScheme(input string) bool {
	if schemePattern.MatchString(input) {
		return true
	}
	lower := strings.ToLower(input)
	for _, prefix := range opaqueSchemes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// FromLocalFile returns the file:// URL for path, made absolute first.
func FromLocalFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

// IsBlank reports addresses that carry no page worth recording.
func IsBlank(address string) bool {
	return address == "" || address == "about:blank"
}
