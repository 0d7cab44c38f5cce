package learner

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Anonymous learner sessions                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// The codex has no accounts. A learner is identified by a random ID held in
// a signed cookie session, so quiz attempts and progress survive page loads
// without any sign-in step.

const learnerIDKey = "learner_id"

// Learner is what we cache in the session & inject into r.Context().
type Learner struct {
	ID string
}

type ctxKey string

const currentLearnerKey ctxKey = "currentLearner"

// Manager owns the learner cookie session store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager builds a Manager from the configured session key and cookie
// name. An empty key gets a random one (sessions then reset on restart,
// which is acceptable for anonymous progress but logged loudly).
func NewManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if name == "" {
		return nil, fmt.Errorf("learner session cookie name is empty")
	}

	key := []byte(sessionKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		logger.Warn("no session key configured; generated a random key, learner progress resets on restart")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   60 * 60 * 24 * 180, // ~6 months of progress
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("learner session store initialized",
		zap.Bool("secure", secure),
		zap.String("cookie", name))

	return &Manager{store: store, name: name, log: logger}, nil
}

// EnsureLearner is middleware that guarantees a learner ID exists in the
// session, minting one on first visit, and injects it into the request
// context for handlers.
func (m *Manager) EnsureLearner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)

		id, _ := sess.Values[learnerIDKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[learnerIDKey] = id
			if err := sess.Save(r, w); err != nil {
				// Serve the request anyway; the ID just won't stick.
				m.log.Warn("could not save learner session", zap.Error(err))
			}
		}

		r = withLearner(r, &Learner{ID: id})
		next.ServeHTTP(w, r)
	})
}

// CurrentLearner returns the learner & "found?" flag.
func CurrentLearner(r *http.Request) (*Learner, bool) {
	l, ok := r.Context().Value(currentLearnerKey).(*Learner)
	return l, ok
}

// WithTestLearner injects a learner into the request context for handler
// tests that bypass the middleware.
func WithTestLearner(r *http.Request, id string) *http.Request {
	return withLearner(r, &Learner{ID: id})
}

func withLearner(r *http.Request, l *Learner) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentLearnerKey, l))
}
