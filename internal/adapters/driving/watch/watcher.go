// Package watch keeps a running session in step with logins and logouts
// made by other storefront processes sharing the same data directory.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/storefront-cli/internal/logger"
)

// DefaultDebounce coalesces the burst of events a single SQLite commit
// produces (database, -wal and -shm files).
const DefaultDebounce = 100 * time.Millisecond

// Reloader re-reads the persisted credential.
type Reloader interface {
	Reload(ctx context.Context) error
}

// CredentialWatcher reloads the session whenever the credential database
// in a directory changes.
type CredentialWatcher struct {
	dir      string
	file     string
	session  Reloader
	debounce time.Duration
}

// NewCredentialWatcher watches file inside dir and reloads session on change.
func NewCredentialWatcher(dir, file string, session Reloader) *CredentialWatcher {
	return &CredentialWatcher{
		dir:      dir,
		file:     file,
		session:  session,
		debounce: DefaultDebounce,
	}
}

// WithDebounce overrides the quiet period between the last event and the reload.
func (w *CredentialWatcher) WithDebounce(d time.Duration) *CredentialWatcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is done or the underlying watcher fails.
func (w *CredentialWatcher) Run(ctx context.Context) error {
	if w.session == nil {
		return errors.New("watch: no session to reload")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	logger.Debug("Watching %s for credential changes", filepath.Join(w.dir, w.file))

	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	reload := func() {
		if ctx.Err() != nil {
			return
		}
		if err := w.session.Reload(ctx); err != nil {
			logger.Warn("Reloading session after credential change: %v", err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Credential store changed: %s %s", event.Op, event.Name)
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, reload)
			mu.Unlock()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Credential watcher error: %v", err)
		}
	}
}

// relevant reports whether event touches the credential database or one of
// its journal files.
func (w *CredentialWatcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(event.Name)
	return base == w.file || strings.HasPrefix(base, w.file+"-")
}
