package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backupsIn(t *testing.T, dir, name string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var out []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), name+".") {
			out = append(out, e.Name())
		}
	}
	return out
}

func TestLogRotator_RotatesWhenSizeExceeded(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(RotatorOptions{Dir: dir, Name: "test.log", MaxSizeMB: 1, MaxBackups: 5})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	chunk := bytes.Repeat([]byte("x"), 600*1024)
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	assert.Len(t, backupsIn(t, dir, "test.log"), 1)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestLogRotator_KeepsMaxBackupsCompressed(t *testing.T) {
	dir := t.TempDir()

	r, err := NewLogRotator(RotatorOptions{Dir: dir, Name: "test.log", MaxSizeMB: 1, MaxBackups: 2, Compress: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	chunk := bytes.Repeat([]byte("y"), 700*1024)
	for range 5 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	backups := backupsIn(t, dir, "test.log")
	require.Len(t, backups, 2)
	for _, b := range backups {
		assert.True(t, strings.HasSuffix(b, ".gz"), b)
	}
	assert.Contains(t, backups, "test.log.2025-01-01-00-00-04.000.gz")
}

func TestLogRotator_DefaultNameAndDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	r, err := NewLogRotator(RotatorOptions{Dir: dir})
	require.NoError(t, err)
	require.NoError(t, r.Close())

	_, err = os.Stat(filepath.Join(dir, "bmb.log"))
	assert.NoError(t, err)
}
