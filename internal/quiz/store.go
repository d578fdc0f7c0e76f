package quiz

import (
	"sync"
	"time"

	"github.com/mariano/flashdeck/internal/models"
)

// Active binds a session to its owner and the inputs needed to rebuild it on
// retry. The pool snapshot is read-only for the lifetime of the session.
type Active struct {
	mu sync.Mutex

	ID        string
	UserID    int64
	Category  string
	DeckID    *int64
	Pool      []models.Flashcard
	Session   *Session
	CreatedAt time.Time
}

// Lock serializes access to the underlying session state machine.
func (a *Active) Lock() { a.mu.Lock() }

// Unlock releases the session lock.
func (a *Active) Unlock() { a.mu.Unlock() }

// Store keeps active quiz sessions in memory, keyed by an opaque session ID.
// Sessions are ephemeral: a finished session survives only until the owner
// starts a new one or it is deleted.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Active
}

// NewStore returns an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Active)}
}

// Put registers a session, replacing any previous session with the same ID.
func (st *Store) Put(a *Active) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[a.ID] = a
}

// Get returns the session with the given ID, if present.
func (st *Store) Get(id string) (*Active, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	a, ok := st.sessions[id]
	return a, ok
}

// Delete removes a session from the store.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// DeleteForUser drops every session owned by the given user. Called when a
// user starts a new quiz so stale sessions do not accumulate.
func (st *Store) DeleteForUser(userID int64) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, a := range st.sessions {
		if a.UserID == userID {
			delete(st.sessions, id)
		}
	}
}

// Len returns the number of registered sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
