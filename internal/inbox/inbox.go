// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package inbox

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-voice-notes/internal/config"
	"github.com/MKhiriev/go-voice-notes/internal/logger"
	"github.com/MKhiriev/go-voice-notes/internal/service"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/samber/lo"
)

const eventsBuffer = 16

// Event reports the outcome for one settled file.
type Event struct {
	Path string
	// NoteID is set when a note was created.
	NoteID string
	// Skipped is true when the content was handled before.
	Skipped bool
	Err     error
}

type Inbox struct {
	dir            string
	patterns       []string
	debounce       time.Duration
	transcriptions service.ClientTranscriptionService
	logger         *logger.Logger

	events chan Event

	mu      sync.Mutex
	pending map[string]*time.Timer
	seen    map[uint64]struct{}

	// Start and Stop
	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(cfg config.ClientInbox, transcriptions service.ClientTranscriptionService, logger *logger.Logger) (*Inbox, error) {
	if cfg.Dir == "" {
		return nil, ErrInboxDisabled
	}
	for _, p := range cfg.Patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve inbox dir: %w", err)
	}

	return &Inbox{
		dir:            dir,
		patterns:       cfg.Patterns,
		debounce:       cfg.Debounce,
		transcriptions: transcriptions,
		logger:         logger,
		events:         make(chan Event, eventsBuffer),
		pending:        make(map[string]*time.Timer),
		seen:           make(map[uint64]struct{}),
	}, nil
}

// Events delivers one Event per settled file. Events are dropped while the
// buffer is full.
func (in *Inbox) Events() <-chan Event {
	return in.events
}

// Start runs the watcher in the background until Stop is called or ctx is
// done. Calling Start on a running inbox does nothing.
func (in *Inbox) Start(ctx context.Context) {
	in.runMu.Lock()
	defer in.runMu.Unlock()
	if in.cancel != nil {
		return
	}

	ctx, in.cancel = context.WithCancel(ctx)
	in.done = make(chan struct{})
	go func(done chan struct{}) {
		defer close(done)
		if err := in.Run(ctx); err != nil {
			in.logger.Err(err).Str("dir", in.dir).Msg("audio inbox stopped")
		}
	}(in.done)
}

// Stop cancels a started inbox and waits for it to finish.
func (in *Inbox) Stop() {
	in.runMu.Lock()
	cancel, done := in.cancel, in.done
	in.cancel, in.done = nil, nil
	in.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Run watches the inbox until ctx is done. It returns an error only when
// the watcher cannot be set up.
func (in *Inbox) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create inbox watcher: %w", err)
	}
	defer w.Close()

	if err = in.addTree(w, in.dir, nil); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	settled := make(chan string, eventsBuffer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case path := <-settled:
				in.emit(in.process(ctx, path))
			}
		}
	}()
	defer func() {
		cancel()
		in.stopTimers()
		wg.Wait()
	}()

	in.logger.Info().Str("dir", in.dir).Strs("patterns", in.patterns).Msg("audio inbox watching")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			in.handle(ctx, w, ev, settled)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			in.logger.Err(err).Msg("audio inbox watcher error")
		}
	}
}

func (in *Inbox) handle(ctx context.Context, w *fsnotify.Watcher, ev fsnotify.Event, settled chan<- string) {
	switch {
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		info, err := os.Stat(ev.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			// Files may have landed before the watch was added.
			if err = in.addTree(w, ev.Name, func(path string) { in.schedule(ctx, path, settled) }); err != nil {
				in.logger.Err(err).Str("dir", ev.Name).Msg("watching new inbox directory failed")
			}
			return
		}
		if in.matches(ev.Name) {
			in.schedule(ctx, ev.Name, settled)
		}
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		in.unschedule(ev.Name)
	}
}

// addTree watches root and every directory below it. Matching files found
// on the way are passed to onFile or, when onFile is nil, remembered as
// handled.
func (in *Inbox) addTree(w *fsnotify.Watcher, root string, onFile func(string)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err = w.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
			return nil
		}
		if !in.matches(path) {
			return nil
		}
		if onFile != nil {
			onFile(path)
			return nil
		}
		if sum, err := fingerprint(path); err == nil {
			in.markSeen(sum)
		}
		return nil
	})
}

func (in *Inbox) matches(path string) bool {
	rel, err := filepath.Rel(in.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	rel = filepath.ToSlash(rel)
	return lo.ContainsBy(in.patterns, func(pattern string) bool {
		ok, _ := doublestar.Match(pattern, rel)
		return ok
	})
}

// schedule (re)starts the quiet period of path.
func (in *Inbox) schedule(ctx context.Context, path string, settled chan<- string) {
	in.mu.Lock()
	defer in.mu.Unlock()

	if t, ok := in.pending[path]; ok {
		t.Reset(in.debounce)
		return
	}
	in.pending[path] = time.AfterFunc(in.debounce, func() {
		in.mu.Lock()
		delete(in.pending, path)
		in.mu.Unlock()

		select {
		case settled <- path:
		case <-ctx.Done():
		}
	})
}

func (in *Inbox) unschedule(path string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	if t, ok := in.pending[path]; ok {
		t.Stop()
		delete(in.pending, path)
	}
}

func (in *Inbox) stopTimers() {
	in.mu.Lock()
	defer in.mu.Unlock()
	for path, t := range in.pending {
		t.Stop()
		delete(in.pending, path)
	}
}

func (in *Inbox) process(ctx context.Context, path string) Event {
	log := in.logger.With().Str("path", path).Logger()

	sum, err := fingerprint(path)
	if err != nil {
		log.Warn().Err(err).Msg("reading inbox file failed")
		return Event{Path: path, Err: err}
	}
	if in.isSeen(sum) {
		log.Debug().Msg("inbox file already handled")
		return Event{Path: path, Skipped: true}
	}

	t, err := in.transcriptions.TranscribeFile(ctx, path)
	if err != nil {
		log.Err(err).Msg("transcribing inbox file failed")
		return Event{Path: path, Err: err}
	}
	// The transcription counts against the quota, so the file is not
	// retried even if the note cannot be created.
	in.markSeen(sum)

	noteID, err := in.transcriptions.CreateNote(ctx, t, titleFromPath(path))
	if err != nil {
		log.Err(err).Str("transcription_id", t.ID).Msg("creating note from inbox file failed")
		return Event{Path: path, Err: err}
	}

	log.Info().Str("note_id", noteID).Msg("note created from inbox file")
	return Event{Path: path, NoteID: noteID}
}

func (in *Inbox) emit(ev Event) {
	select {
	case in.events <- ev:
	default:
		in.logger.Debug().Str("path", ev.Path).Msg("inbox event dropped")
	}
}

func (in *Inbox) isSeen(sum uint64) bool {
	in.mu.Lock()
	defer in.mu.Unlock()
	_, ok := in.seen[sum]
	return ok
}

func (in *Inbox) markSeen(sum uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.seen[sum] = struct{}{}
}

func fingerprint(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err = io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
