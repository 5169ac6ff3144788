// ABOUTME: Ordered, deduplicated, capacity-bounded favorites with undo for bulk clears.
// ABOUTME: Every mutation is flushed to the persister; write failures are logged and ignored.
package favorites

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/2389-research/cocktail/internal/logger"
	"github.com/2389-research/cocktail/internal/models"
)

// Capacity is the maximum number of saved favorites.
const Capacity = 20

// DefaultUndoWindow is how long a bulk clear stays undoable.
const DefaultUndoWindow = 2 * time.Second

// ErrInvalidEntry is returned by Toggle for a drink without an ID.
var ErrInvalidEntry = errors.New("favorite entry requires an id")

// Persister loads and saves the full favorites list.
type Persister interface {
	Load() ([]models.FavoriteEntry, error)
	Save(entries []models.FavoriteEntry) error
}

// Action is the outcome of a Toggle.
type Action int

const (
	// Saved means the drink was added to the front of the list.
	Saved Action = iota + 1
	// Removed means the drink was already saved and has been removed.
	Removed
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Saved:
		return "saved"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// ClearResult describes a ClearAll call.
type ClearResult struct {
	ID    uuid.UUID // zero when nothing was cleared
	Count int
}

// Stopper cancels a scheduled callback.
type Stopper interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Stopper

func realAfterFunc(d time.Duration, f func()) Stopper {
	return time.AfterFunc(d, f)
}

// Store holds the favorites list. It is safe for concurrent use.
type Store struct {
	mu        sync.Mutex
	persister Persister
	entries   []models.FavoriteEntry

	// pending is the snapshot taken by the last ClearAll, nil when nothing is undoable.
	pending   []models.FavoriteEntry
	pendingID uuid.UUID
	timer     Stopper
	// gen increments whenever the pending snapshot is replaced or consumed,
	// so a timer that fires late cannot discard a newer snapshot.
	gen uint64

	undoWindow time.Duration
	afterFunc  AfterFunc
	log        zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithUndoWindow overrides DefaultUndoWindow.
func WithUndoWindow(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.undoWindow = d
		}
	}
}

// WithAfterFunc replaces time.AfterFunc for scheduling undo expiry.
func WithAfterFunc(fn AfterFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.afterFunc = fn
		}
	}
}

// WithLogger sets the logger used for swallowed persistence failures.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New loads favorites from p. Read failures start the store empty.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:  p,
		undoWindow: DefaultUndoWindow,
		afterFunc:  realAfterFunc,
		log:        logger.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	entries, err := p.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load favorites, starting empty")
		entries = nil
	}
	s.entries = normalize(entries)
	return s
}

// IsSaved reports whether a favorite with id exists.
func (s *Store) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id) >= 0
}

// Get returns the saved entry with id.
func (s *Store) Get(id string) (models.FavoriteEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return models.FavoriteEntry{}, false
	}
	return cloneEntry(s.entries[i]), true
}

// Entries returns a copy of the favorites, most recently saved first.
func (s *Store) Entries() []models.FavoriteEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneEntries(s.entries)
}

// Len returns the number of favorites.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Toggle removes d if it is saved, otherwise saves it at the front.
// The list is persisted either way.
func (s *Store) Toggle(d models.Drink) (Action, error) {
	if d.ID == "" {
		return 0, ErrInvalidEntry
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var action Action
	if i := s.indexLocked(d.ID); i >= 0 {
		s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
		action = Removed
	} else {
		next := make([]models.FavoriteEntry, 0, len(s.entries)+1)
		next = append(next, models.Summarize(d))
		s.entries = append(next, s.entries...)
		action = Saved
	}
	s.entries = normalize(s.entries)
	s.persistLocked("toggle")

	s.log.Debug().Str("drink_id", d.ID).Str("action", action.String()).Int("count", len(s.entries)).Msg("favorite toggled")
	return action, nil
}

// Remove deletes the favorite with id. It reports whether anything was removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	s.persistLocked("remove")
	return true
}

// ClearAll empties the list and keeps a snapshot that UndoClear can restore until
// the undo window elapses. A new clear replaces any earlier snapshot.
func (s *Store) ClearAll() ClearResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return ClearResult{}
	}

	s.stopTimerLocked()
	s.pending = s.entries
	s.pendingID = uuid.New()
	s.entries = []models.FavoriteEntry{}
	s.gen++
	s.persistLocked("clear")

	gen := s.gen
	s.timer = s.afterFunc(s.undoWindow, func() { s.expire(gen) })

	s.log.Info().Str("clear_id", s.pendingID.String()).Int("count", len(s.pending)).Msg("favorites cleared")
	return ClearResult{ID: s.pendingID, Count: len(s.pending)}
}

// UndoClear restores the snapshot of the last ClearAll if its window is still open.
func (s *Store) UndoClear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return false
	}
	s.stopTimerLocked()
	s.entries = s.pending
	s.pending = nil
	s.gen++
	s.persistLocked("undo")

	s.log.Info().Str("clear_id", s.pendingID.String()).Int("count", len(s.entries)).Msg("favorites clear undone")
	s.pendingID = uuid.Nil
	return true
}

// CanUndo reports whether a cleared snapshot is still pending.
func (s *Store) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// UndoWindow returns how long a clear stays undoable.
func (s *Store) UndoWindow() time.Duration {
	return s.undoWindow
}

// Close stops any pending undo timer. The snapshot is dropped.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimerLocked()
	s.pending = nil
	s.gen++
}

// expire discards the snapshot armed at generation gen.
func (s *Store) expire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.pending == nil {
		return
	}
	s.log.Debug().Str("clear_id", s.pendingID.String()).Msg("undo window closed")
	s.pending = nil
	s.pendingID = uuid.Nil
	s.timer = nil
}

func (s *Store) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) persistLocked(op string) {
	if err := s.persister.Save(s.entries); err != nil {
		s.log.Warn().Err(err).Str("op", op).Msg("failed to persist favorites")
	}
}

func (s *Store) indexLocked(id string) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// normalize drops entries without an ID, keeps the first occurrence of each ID,
// and truncates to Capacity. The tail is evicted first.
func normalize(entries []models.FavoriteEntry) []models.FavoriteEntry {
	out := make([]models.FavoriteEntry, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
		if len(out) == Capacity {
			break
		}
	}
	return out
}

func cloneEntries(entries []models.FavoriteEntry) []models.FavoriteEntry {
	out := make([]models.FavoriteEntry, len(entries))
	for i, e := range entries {
		out[i] = cloneEntry(e)
	}
	return out
}

func cloneEntry(e models.FavoriteEntry) models.FavoriteEntry {
	if e.Ingredients != nil {
		e.Ingredients = append(make([]string, 0, len(e.Ingredients)), e.Ingredients...)
	}
	return e
}
