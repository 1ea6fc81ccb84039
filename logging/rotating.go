package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const filePrefix = "entresto-"

var numberedFile = regexp.MustCompile(`^entresto-\d{4}-W\d{2}_(\d{2})\.log$`)

// RotatingLogger writes to one file per ISO week. A week file that grows past
// maxFileSize continues in entresto-<week>_NN.log. Files older than the
// retention period are removed by the cleanup loop.
type RotatingLogger struct {
	dir         string
	retention   time.Duration
	maxFileSize int64

	mu   sync.Mutex
	file *os.File
	week string
	size atomic.Int64

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	loop   sync.Once
}

// NewRotatingLogger creates a logger writing under dir. A maxFileSize of zero
// disables size based rotation.
func NewRotatingLogger(dir string, retentionWeeks int, maxFileSize int64) *RotatingLogger {
	ctx, cancel := context.WithCancel(context.Background())
	return &RotatingLogger{
		dir:         dir,
		retention:   time.Duration(retentionWeeks) * 7 * 24 * time.Hour,
		maxFileSize: maxFileSize,
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
	}
}

// weekKey returns the ISO week in YYYY-Www format
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Open creates the log directory and the file for the current week
func (rl *RotatingLogger) Open() error {
	if err := os.MkdirAll(rl.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.rotate(weekKey(time.Now()), false)
}

// rotate switches to the file for week. Caller holds mu.
func (rl *RotatingLogger) rotate(week string, full bool) error {
	if rl.file != nil {
		_ = rl.file.Close()
		rl.file = nil
	}

	name := rl.fileFor(week, full)
	path := filepath.Join(rl.dir, name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	rl.file = f
	rl.week = week
	rl.size.Store(0)
	if info, err := f.Stat(); err == nil {
		rl.size.Store(info.Size())
	}

	return nil
}

// fileFor picks the file to append to for week. full forces a new numbered
// file because the current one reached the size limit.
func (rl *RotatingLogger) fileFor(week string, full bool) string {
	base := filePrefix + week + ".log"

	highest, lastSize := 0, int64(0)
	matches, _ := filepath.Glob(filepath.Join(rl.dir, filePrefix+week+"_??.log"))
	for _, m := range matches {
		sub := numberedFile.FindStringSubmatch(filepath.Base(m))
		if len(sub) < 2 {
			continue
		}
		n, _ := strconv.Atoi(sub[1])
		if n > highest {
			highest = n
			lastSize = 0
			if info, err := os.Stat(m); err == nil {
				lastSize = info.Size()
			}
		}
	}

	if highest == 0 && !full {
		info, err := os.Stat(filepath.Join(rl.dir, base))
		if err != nil || rl.maxFileSize == 0 || info.Size() < rl.maxFileSize {
			return base
		}
	}

	if highest > 0 && !full && (rl.maxFileSize == 0 || lastSize < rl.maxFileSize) {
		return fmt.Sprintf("%s%s_%02d.log", filePrefix, week, highest)
	}

	return fmt.Sprintf("%s%s_%02d.log", filePrefix, week, highest+1)
}

// Write implements io.Writer and rotates on week change or size limit
func (rl *RotatingLogger) Write(p []byte) (int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	week := weekKey(time.Now())
	switch {
	case rl.file == nil || rl.week != week:
		if err := rl.rotate(week, false); err != nil {
			return 0, err
		}
	case rl.maxFileSize > 0 && rl.size.Load()+int64(len(p)) > rl.maxFileSize && rl.size.Load() > 0:
		if err := rl.rotate(week, true); err != nil {
			return 0, err
		}
	}

	n, err := rl.file.Write(p)
	rl.size.Add(int64(n))
	return n, err
}

// CurrentFile returns the path of the file being written
func (rl *RotatingLogger) CurrentFile() string {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file == nil {
		return ""
	}
	return rl.file.Name()
}

// Cleanup removes log files last modified before now minus the retention
func (rl *RotatingLogger) Cleanup(now time.Time) (int, error) {
	entries, err := os.ReadDir(rl.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to read log directory: %w", err)
	}

	cutoff := now.Add(-rl.retention)
	current := rl.CurrentFile()
	removed := 0

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, ".log") {
			continue
		}

		path := filepath.Join(rl.dir, name)
		if path == current {
			continue
		}

		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(path); err == nil {
			removed++
		}
	}

	return removed, nil
}

// StartCleanup runs Cleanup every interval until Close
func (rl *RotatingLogger) StartCleanup(interval time.Duration) {
	rl.loop.Do(func() {
		go func() {
			defer close(rl.done)

			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-rl.ctx.Done():
					return
				case now := <-ticker.C:
					// console only, the file handler would recurse into Write
					if n, err := rl.Cleanup(now); err != nil {
						fmt.Fprintf(os.Stderr, "log cleanup failed: %v\n", err)
					} else if n > 0 {
						fmt.Printf("Cleaned up %d old log files\n", n)
					}
				}
			}
		}()
	})
}

// Close stops the cleanup loop and closes the current file
func (rl *RotatingLogger) Close() error {
	rl.cancel()

	started := true
	rl.loop.Do(func() { started = false })
	if started {
		select {
		case <-rl.done:
		case <-time.After(5 * time.Second):
		}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if rl.file == nil {
		return nil
	}
	err := rl.file.Close()
	rl.file = nil
	return err
}
