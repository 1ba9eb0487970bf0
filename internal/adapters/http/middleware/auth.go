package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"sync"
	"time"

	"padelcygnus/internal/domain/role"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

// DefaultSessionTTL is how long a session lives after login.
const DefaultSessionTTL = 24 * time.Hour

// Session is one logged-in browser. Each session owns a workspace holding its
// copy of the club collections.
type Session struct {
	Email       string
	Role        role.Role
	WorkspaceID string
	CreatedAt   time.Time
}

// IsAdmin reports whether the session carries the admin role.
func (s Session) IsAdmin() bool {
	return s.Role == role.Admin
}

// SessionStore is an in-memory session store.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration
	now      func() time.Time
	onEnd    func(Session)
}

// NewSessionStore creates a store whose sessions expire after ttl.
// onEnd, when non-nil, runs once for every session that is deleted or expires,
// outside the store lock.
func NewSessionStore(ttl time.Duration, onEnd func(Session)) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
		onEnd:    onEnd,
	}
}

// TTL returns the configured session lifetime.
func (ss *SessionStore) TTL() time.Duration {
	return ss.ttl
}

// Create stores a new session and returns its token.
// PRE: email is non-empty; r is valid; workspaceID names a seeded workspace
// POST: Session is stored, token is returned
func (ss *SessionStore) Create(email string, r role.Role, workspaceID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}
	ss.mu.Lock()
	defer ss.mu.Unlock()
	ss.sessions[token] = Session{
		Email:       email,
		Role:        r,
		WorkspaceID: workspaceID,
		CreatedAt:   ss.now(),
	}
	return token, nil
}

// Get retrieves a live session by token. An expired session is removed.
// PRE: none
// POST: Returns the session if present and not expired
func (ss *SessionStore) Get(token string) (Session, bool) {
	ss.mu.Lock()
	session, ok := ss.sessions[token]
	expired := ok && ss.now().Sub(session.CreatedAt) > ss.ttl
	if expired {
		delete(ss.sessions, token)
	}
	ss.mu.Unlock()

	if expired {
		ss.ended(session)
		return Session{}, false
	}
	return session, ok
}

// Delete removes a session by token.
// PRE: none
// POST: No session with token remains; onEnd ran if one existed
func (ss *SessionStore) Delete(token string) {
	ss.mu.Lock()
	session, ok := ss.sessions[token]
	delete(ss.sessions, token)
	ss.mu.Unlock()

	if ok {
		ss.ended(session)
	}
}

// Sweep removes every expired session and returns how many were removed.
func (ss *SessionStore) Sweep() int {
	var expired []Session
	ss.mu.Lock()
	now := ss.now()
	for token, s := range ss.sessions {
		if now.Sub(s.CreatedAt) > ss.ttl {
			expired = append(expired, s)
			delete(ss.sessions, token)
		}
	}
	ss.mu.Unlock()

	for _, s := range expired {
		ss.ended(s)
	}
	return len(expired)
}

// Len returns the number of stored sessions, expired or not.
func (ss *SessionStore) Len() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.sessions)
}

func (ss *SessionStore) ended(s Session) {
	if ss.onEnd != nil {
		ss.onEnd(s)
	}
}

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "padel_session"

// SecureCookies marks cookies Secure. Set in production.
var SecureCookies bool

// Auth returns middleware that loads the session named by the cookie into the context.
// It does not block unauthenticated requests; use RequireRole for that.
func Auth(sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err == nil && cookie.Value != "" {
				if session, ok := sessions.Get(cookie.Value); ok {
					r = r.WithContext(ContextWithSession(r.Context(), session))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole returns middleware that redirects to the role's login page
// unless the session carries role want.
func RequireRole(want role.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSessionFromContext(r.Context())
			if !ok || session.Role != want {
				http.Redirect(w, r, want.LoginPath(), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(sessionContextKey).(Session)
	return session, ok
}

// ContextWithSession returns a context carrying sess.
func ContextWithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// SetSessionCookie sets the session cookie on the response.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
	})
}

// ClearSessionCookie removes the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		HttpOnly: true,
		Secure:   SecureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
		MaxAge:   -1,
	})
}

func generateToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
