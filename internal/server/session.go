package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ailab/timesheetgen/internal/model"
)

// SessionCookie is the cookie carrying the browser session ID.
const SessionCookie = "tsg_session"

// session is the per-browser state: the leave map being edited and the
// last requested generation range. Nothing outlives the process.
type session struct {
	leave model.LeaveMap
	from  string
	to    string
}

// sessionStore is an in-memory, mutex-guarded session table.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: map[string]*session{}}
}

// get returns the session for id, creating it (and a fresh id when id
// is empty or unknown) as needed. The returned id is always valid.
func (s *sessionStore) get(id string) (string, *session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			return id, sess
		}
	}
	id = uuid.NewString()
	sess := &session{leave: model.LeaveMap{}}
	s.sessions[id] = sess
	return id, sess
}

// update runs fn under the store lock so handlers can mutate session
// state without racing each other.
func (s *sessionStore) update(id string, fn func(*session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		fn(sess)
	}
}

// snapshotLeave copies the session's leave map for use outside the lock.
func (s *sessionStore) snapshotLeave(id string) model.LeaveMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := model.LeaveMap{}
	if sess, ok := s.sessions[id]; ok {
		for emp, dates := range sess.leave {
			cp := make([]string, len(dates))
			copy(cp, dates)
			out[emp] = cp
		}
	}
	return out
}

// rangeFor returns the session's stored generation range.
func (s *sessionStore) rangeFor(id string) (from, to string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess.from, sess.to
	}
	return "", ""
}
