package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	defaultLogName  = "bmb.log"
	backupTimestamp = "2006-01-02-15-04-05.000"
)

// RotatorOptions configures a LogRotator. Zero MaxBackups or MaxAge keeps
// every backup.
type RotatorOptions struct {
	Dir        string
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is a size-based rotating file writer used for the optional log file.
// Backups are named <name>.<timestamp>[.gz] next to the live file.
type LogRotator struct {
	mu   sync.Mutex
	opts RotatorOptions
	now  func() time.Time

	file *os.File
	size int64
}

// NewLogRotator opens (or creates) Dir/Name for appending.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.Name == "" {
		opts.Name = defaultLogName
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	r := &LogRotator{opts: opts, now: time.Now}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *LogRotator) path() string {
	return filepath.Join(r.opts.Dir, r.opts.Name)
}

func (r *LogRotator) maxBytes() int64 {
	return int64(r.opts.MaxSizeMB) << 20
}

func (r *LogRotator) open() error {
	file, err := os.OpenFile(r.path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	r.file, r.size = file, info.Size()
	return nil
}

// Write implements io.Writer, rotating first when p would overflow the file.
func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxBytes() {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "bmb: close log file: %v\n", err)
	}
	r.file = nil

	backup := r.path() + "." + r.now().Format(backupTimestamp)
	if err := os.Rename(r.path(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}

	if r.opts.Compress {
		if err := gzipFile(backup); err != nil {
			fmt.Fprintf(os.Stderr, "bmb: compress %s: %v\n", backup, err)
		} else if err := os.Remove(backup); err != nil {
			fmt.Fprintf(os.Stderr, "bmb: remove %s: %v\n", backup, err)
		}
	}

	r.prune()
	return r.open()
}

// prune removes backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (r *LogRotator) prune() {
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return
	}

	maxAge := time.Duration(r.opts.MaxAgeDays) * 24 * time.Hour
	now := r.now()
	var backups []os.FileInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.opts.Name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			_ = os.Remove(filepath.Join(r.opts.Dir, e.Name()))
			continue
		}
		backups = append(backups, info)
	}

	if r.opts.MaxBackups <= 0 || len(backups) <= r.opts.MaxBackups {
		return
	}
	// Oldest first; the timestamp suffix sorts lexically.
	slices.SortFunc(backups, func(a, b os.FileInfo) int { return strings.Compare(a.Name(), b.Name()) })
	for _, info := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(filepath.Join(r.opts.Dir, info.Name()))
	}
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		return err
	}
	return zw.Close()
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
