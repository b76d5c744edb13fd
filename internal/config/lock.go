package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/footprint-tools/cmdr/internal/paths"
)

const lockFileName = ".cmdrrc.lock"

// ErrLockTimeout means another process held the config lock for too long.
var ErrLockTimeout = errors.New("config: lock timeout")

// lock is an O_EXCL lock file next to the config file. A lock file older
// than stale is treated as left behind by a dead process.
type lock struct {
	path    string
	timeout time.Duration
	stale   time.Duration
	poll    time.Duration
	file    *os.File
}

func newLock() (*lock, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}
	return &lock{
		path:    filepath.Join(filepath.Dir(configPath), lockFileName),
		timeout: 5 * time.Second,
		stale:   30 * time.Second,
		poll:    50 * time.Millisecond,
	}, nil
}

// WithLock runs fn while holding the config lock.
func WithLock(fn func() error) error {
	l, err := newLock()
	if err != nil {
		return err
	}
	if err := l.acquire(); err != nil {
		return err
	}
	defer l.release()

	return fn()
}

func (l *lock) acquire() error {
	deadline := time.Now().Add(l.timeout)

	for {
		if info, err := os.Stat(l.path); err == nil && time.Since(info.ModTime()) > l.stale {
			_ = os.Remove(l.path)
		}

		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
		if err == nil {
			// the holder's pid, for whoever finds a stuck lock
			_, _ = f.WriteString(strconv.Itoa(os.Getpid()))
			l.file = f
			return nil
		}
		if !errors.Is(err, os.ErrExist) {
			return err
		}

		if time.Now().After(deadline) {
			return ErrLockTimeout
		}
		time.Sleep(l.poll)
	}
}

func (l *lock) release() {
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
	_ = os.Remove(l.path)
}
