package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const CookieName = "turf_session"

// Manager keeps sessions in memory for the lifetime of the process.
// Sessions map a random ID to the authenticated user's ID and expire
// after the configured TTL.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]entry
	ttl      time.Duration
}

type entry struct {
	userID    int64
	expiresAt time.Time
}

func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]entry),
		ttl:      ttl,
	}
}

func (m *Manager) Create(userID int64) string {
	sid := uuid.New().String()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sid] = entry{
		userID:    userID,
		expiresAt: time.Now().Add(m.ttl),
	}

	return sid
}

// UserID resolves a session ID to a user ID. Expired sessions are
// treated as absent and removed on access.
func (m *Manager) UserID(sid string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.sessions[sid]
	if !ok {
		return 0, false
	}

	if time.Now().After(e.expiresAt) {
		delete(m.sessions, sid)

		return 0, false
	}

	return e.userID, true
}

func (m *Manager) Delete(sid string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sid)
}

// PurgeExpired drops all expired sessions and returns how many were
// removed. Called periodically from main.
func (m *Manager) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	purged := 0

	for sid, e := range m.sessions {
		if now.After(e.expiresAt) {
			delete(m.sessions, sid)
			purged++
		}
	}

	return purged
}

func (m *Manager) SetCookie(w http.ResponseWriter, sid string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.ttl / time.Second),
	})
}

func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
