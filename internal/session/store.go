// Package session persists small per-user preferences between runs.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultLockTimeout bounds how long Store waits for the state lock.
const DefaultLockTimeout = 2 * time.Second

const lockRetryDelay = 50 * time.Millisecond

// Store is a string key/value file guarded by an advisory lock on a sibling
// ".lock" file. A missing file reads as empty. An unparsable file is
// logged and read as empty, then replaced on the next write.
type Store struct {
	path        string
	lockTimeout time.Duration
	log         logrus.FieldLogger
}

// Open returns a Store backed by path. The file is created on first write.
func Open(path string, log logrus.FieldLogger) *Store {
	if log == nil {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		log = l
	}
	return &Store{path: path, lockTimeout: DefaultLockTimeout, log: log}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Get returns the value for key and whether it was present.
func (s *Store) Get(key string) (string, bool, error) {
	values, err := s.Snapshot()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Snapshot returns a copy of every stored pair.
func (s *Store) Snapshot() (map[string]string, error) {
	var out map[string]string
	err := s.withLock(false, func() error {
		values, err := s.read()
		out = values
		return err
	})
	return out, err
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	return s.Update(func(values map[string]string) {
		values[key] = value
	})
}

// Remove deletes key. Removing an absent key is not an error.
func (s *Store) Remove(key string) error {
	return s.Update(func(values map[string]string) {
		delete(values, key)
	})
}

// Update applies fn to the stored pairs under an exclusive lock and writes
// the result back.
func (s *Store) Update(fn func(values map[string]string)) error {
	return s.withLock(true, func() error {
		values, err := s.read()
		if err != nil {
			return err
		}
		fn(values)
		return s.write(values)
	})
}

func (s *Store) withLock(exclusive bool, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("cannot create state dir: %w", err)
	}
	lockPath := s.path + ".lock"
	l := flock.New(lockPath)

	ctx, cancel := context.WithTimeout(context.Background(), s.lockTimeout)
	defer cancel()

	var (
		locked bool
		err    error
	)
	if exclusive {
		locked, err = l.TryLockContext(ctx, lockRetryDelay)
	} else {
		locked, err = l.TryRLockContext(ctx, lockRetryDelay)
	}
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("cannot acquire state lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("state is locked by another netfolio process (lock: %s)", lockPath)
	}
	defer func() { _ = l.Unlock() }()

	return fn()
}

func (s *Store) read() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot read state %s: %w", s.path, err)
	}
	var values map[string]string
	if err := yaml.Unmarshal(b, &values); err != nil {
		s.log.WithField("path", s.path).WithError(err).Warn("discarding unreadable state file")
		return map[string]string{}, nil
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (s *Store) write(values map[string]string) error {
	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("cannot marshal state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("cannot write state %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("cannot replace state %s: %w", s.path, err)
	}
	return nil
}
