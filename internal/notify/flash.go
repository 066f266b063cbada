package notify

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

const flashCookie = "sos_flash"

// Push queues toasts to be rendered on the next page, carried in a cookie so
// they survive the redirect between screens.
func Push(c *gin.Context, toasts ...Toast) {
	if len(toasts) == 0 {
		return
	}
	existing := peek(c)
	existing = append(existing, toasts...)

	data, err := json.Marshal(existing)
	if err != nil {
		return
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
	})
}

// Take drains the queued toasts and clears the cookie.
func Take(c *gin.Context) []Toast {
	toasts := peek(c)
	if toasts != nil {
		http.SetCookie(c.Writer, &http.Cookie{
			Name:     flashCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})
	}
	return toasts
}

func peek(c *gin.Context) []Toast {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var toasts []Toast
	if err := json.Unmarshal(data, &toasts); err != nil {
		return nil
	}
	return toasts
}
