package url

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noPaths(string) bool { return false }

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "empty", input: "", want: "", wantOK: false},
		{name: "whitespace only", input: "   \t", want: "", wantOK: false},
		{name: "bare domain", input: "example.com", want: "https://example.com", wantOK: true},
		{name: "trimmed", input: "  example.com/path  ", want: "https://example.com/path", wantOK: true},
		{name: "http kept", input: "http://example.com", want: "http://example.com", wantOK: true},
		{name: "https kept", input: "https://example.com/a?b=c", want: "https://example.com/a?b=c", wantOK: true},
		{name: "file kept", input: "file:///etc/hosts", want: "file:///etc/hosts", wantOK: true},
		{name: "custom scheme kept", input: "bmb://home", want: "bmb://home", wantOK: true},
		{name: "about kept", input: "about:blank", want: "about:blank", wantOK: true},
		{name: "data kept", input: "data:text/html,hi", want: "data:text/html,hi", wantOK: true},
		{name: "host and port", input: "localhost:8080", want: "https://localhost:8080", wantOK: true},
		{name: "single word", input: "intranet", want: "https://intranet", wantOK: true},
		{name: "scheme relative", input: "//example.com", want: "https://example.com", wantOK: true},
		{name: "scheme relative with path", input: "//example.com/a/b", want: "https://example.com/a/b", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.input, noPaths)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_ExistingLocalPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "page one.html")
	require.NoError(t, os.WriteFile(file, []byte("<html></html>"), 0o600))

	exists := func(p string) bool {
		_, err := os.Stat(p)
		return err == nil
	}

	got, ok := Resolve("  "+file+"  ", exists)
	require.True(t, ok)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(dir, "page%20one.html")), got)
}

func TestResolve_RelativeLocalPathBecomesAbsolute(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	got, ok := Resolve("normalize.go", func(p string) bool { return p == "normalize.go" })
	require.True(t, ok)
	assert.Equal(t, "file://"+filepath.ToSlash(filepath.Join(cwd, "normalize.go")), got)
}

func TestResolve_NilChecker(t *testing.T) {
	got, ok := Resolve("/tmp", nil)
	require.True(t, ok)
	assert.Equal(t, "https:///tmp", got)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("about:blank"))
	assert.False(t, IsBlank("https://example.com"))
}
