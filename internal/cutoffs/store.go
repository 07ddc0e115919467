// Package cutoffs owns the cutoff dataset the simulator consumes. A Store
// loads entries from JSON documents or a sqlite archive and tracks its own
// load lifecycle. Readers get copies; the held slice is never handed out.
package cutoffs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/viant/afs"

	"github.com/admitlab/allotsim/internal/allotment"
)

// State describes where the store is in its load lifecycle. Callers should
// treat loading as transient and retry once it clears.
type State string

const (
	StateEmpty     State = "empty"
	StateLoading   State = "loading"
	StatePopulated State = "populated"
)

// ErrLoadInProgress is returned when a load starts while another one is
// still running. The store keeps serving whatever it held before.
var ErrLoadInProgress = errors.New("cutoff load already in progress")

type Config struct {
	Logger *log.Logger
	FS     afs.Service
	Clock  func() time.Time
}

// Store holds the loaded cutoff entries together with their provenance.
// All methods are safe for concurrent use.
type Store struct {
	mu sync.Mutex

	cfg Config

	state      State
	entries    []allotment.CutoffEntry
	loadedFrom string
	loadedAt   time.Time
}

func NewStore(cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stdout, "cutoffs ", log.LstdFlags)
	}
	if cfg.FS == nil {
		cfg.FS = afs.New()
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return &Store{cfg: cfg, state: StateEmpty}
}

func (s *Store) now() time.Time {
	return s.cfg.Clock().UTC()
}

// beginLoad flips the store into the loading state, remembering what it
// held so a failed load can roll back.
func (s *Store) beginLoad() (prev State, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLoading {
		return "", ErrLoadInProgress
	}
	prev = s.state
	s.state = StateLoading
	return prev, nil
}

func (s *Store) abortLoad(prev State) {
	s.mu.Lock()
	s.state = prev
	s.mu.Unlock()
}

func (s *Store) completeLoad(entries []allotment.CutoffEntry, source string) {
	now := s.now()
	s.mu.Lock()
	s.entries = entries
	s.state = StatePopulated
	s.loadedFrom = source
	s.loadedAt = now
	s.mu.Unlock()
}

// LoadJSON fetches a JSON dataset from the given URL (any scheme the afs
// service understands: file, mem, embed, s3, ...) and replaces the store
// contents. On failure the previous contents and state survive.
func (s *Store) LoadJSON(ctx context.Context, url string) (int, error) {
	prev, err := s.beginLoad()
	if err != nil {
		return 0, err
	}

	data, err := s.cfg.FS.DownloadWithURL(ctx, url)
	if err != nil {
		s.abortLoad(prev)
		return 0, fmt.Errorf("download cutoff dataset %s: %w", url, err)
	}

	entries, err := ParseEntries(data)
	if err != nil {
		s.abortLoad(prev)
		return 0, fmt.Errorf("parse cutoff dataset %s: %w", url, err)
	}

	s.completeLoad(entries, url)
	s.cfg.Logger.Printf("cutoff load complete url=%s entries=%d", url, len(entries))
	return len(entries), nil
}

// LoadArchive replaces the store contents with everything the sqlite
// archive holds.
func (s *Store) LoadArchive(ctx context.Context, archive *Archive) (int, error) {
	prev, err := s.beginLoad()
	if err != nil {
		return 0, err
	}

	entries, err := archive.LoadAll(ctx)
	if err != nil {
		s.abortLoad(prev)
		return 0, fmt.Errorf("load cutoff archive: %w", err)
	}

	s.completeLoad(entries, archive.Path())
	s.cfg.Logger.Printf("cutoff load complete archive=%s entries=%d", archive.Path(), len(entries))
	return len(entries), nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Entries returns a copy of the loaded dataset.
func (s *Store) Entries() []allotment.CutoffEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]allotment.CutoffEntry{}, s.entries...)
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Years lists the distinct year labels present in the dataset, sorted.
func (s *Store) Years() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return distinct(s.entries, func(e allotment.CutoffEntry) string { return e.Year })
}

// Categories lists the distinct category labels present in the dataset,
// sorted.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return distinct(s.entries, func(e allotment.CutoffEntry) string { return e.Category })
}

func (s *Store) LoadedFrom() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedFrom
}

func (s *Store) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}

func distinct(entries []allotment.CutoffEntry, key func(allotment.CutoffEntry) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range entries {
		k := key(e)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
