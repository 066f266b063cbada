package session

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	cookieName   = "sos_session"
	cookieMaxAge = 0 // session cookie semantics are decided by the pointer, not the browser
)

// Manager binds the pointer store to the browser cookie carrying the session
// id. Handlers receive it explicitly; nothing reads ambient global state.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Current resolves the session pointer for this request. The second return
// is false when no cookie is present or the pointer is gone.
func (m *Manager) Current(c *gin.Context) (string, bool) {
	sid, err := c.Cookie(cookieName)
	if err != nil || sid == "" {
		return "", false
	}

	userID, err := m.store.Get(c.Request.Context(), sid)
	if err == ErrNoSession {
		return "", false
	}
	if err != nil {
		log.Printf("[error] operation=session.current error=%v", err)
		return "", false
	}
	return userID, true
}

// SignIn creates the session pointer and sets the cookie.
func (m *Manager) SignIn(c *gin.Context, userID string) error {
	sid := uuid.New().String()
	if err := m.store.Set(c.Request.Context(), sid, userID); err != nil {
		return err
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    sid,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
	})
	return nil
}

// SignOut destroys the pointer and expires the cookie. Best effort: a store
// failure is logged, the cookie is cleared regardless.
func (m *Manager) SignOut(c *gin.Context) {
	if sid, err := c.Cookie(cookieName); err == nil && sid != "" {
		if err := m.store.Delete(c.Request.Context(), sid); err != nil {
			log.Printf("[error] operation=session.signout error=%v", err)
		}
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
