package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == cookieName {
			return ck
		}
	}
	return nil
}

func TestManager(t *testing.T) {
	t.Run("no cookie means no session", func(t *testing.T) {
		m := NewManager(NewMemoryStore())
		c, _ := newTestContext(t)

		_, ok := m.Current(c)
		assert.False(t, ok)
	})

	t.Run("sign in sets cookie and pointer", func(t *testing.T) {
		m := NewManager(NewMemoryStore())
		c, rec := newTestContext(t)

		require.NoError(t, m.SignIn(c, "user-1"))

		ck := sessionCookie(t, rec)
		require.NotNil(t, ck)
		assert.NotEmpty(t, ck.Value)

		c2, _ := newTestContext(t, ck)
		userID, ok := m.Current(c2)
		assert.True(t, ok)
		assert.Equal(t, "user-1", userID)
	})

	t.Run("sign out destroys the pointer", func(t *testing.T) {
		store := NewMemoryStore()
		m := NewManager(store)

		c, rec := newTestContext(t)
		require.NoError(t, m.SignIn(c, "user-1"))
		ck := sessionCookie(t, rec)
		require.NotNil(t, ck)

		c2, rec2 := newTestContext(t, ck)
		m.SignOut(c2)

		expired := sessionCookie(t, rec2)
		require.NotNil(t, expired)
		assert.True(t, expired.MaxAge < 0)

		c3, _ := newTestContext(t, ck)
		_, ok := m.Current(c3)
		assert.False(t, ok)
	})

	t.Run("stale cookie with no pointer", func(t *testing.T) {
		m := NewManager(NewMemoryStore())
		c, _ := newTestContext(t, &http.Cookie{Name: cookieName, Value: "gone"})

		_, ok := m.Current(c)
		assert.False(t, ok)
	})
}
