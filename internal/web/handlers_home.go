package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sos-giri/emergency-sos/internal/notify"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

var alertTiers = []domain.AlertType{domain.AlertLow, domain.AlertMedium, domain.AlertHigh}

func (h *Handler) home(c *gin.Context) {
	userID, ok := h.sessions.Current(c)
	if !ok {
		// No pointer: straight back to login, no fetch attempted.
		c.Redirect(http.StatusFound, "/")
		return
	}

	rec, err := h.profiles.Load(c.Request.Context(), userID)
	if err == domain.ErrUserNotFound {
		// Stale pointer.
		notify.Push(c, notify.Error(notify.MsgUserDataNotFound))
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		log.Printf("[error] operation=home.load error=%v", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Toasts":    append(notify.Take(c), notify.Error(notify.MsgLoadFailed)),
			"Message":   notify.MsgLoadFailed,
			"RetryPath": "/home",
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Toasts": notify.Take(c),
		"User":   rec,
		"Tiers":  alertTiers,
	})
}

func (h *Handler) alert(c *gin.Context) {
	if _, ok := h.sessions.Current(c); !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	tier := domain.AlertType(c.PostForm("type"))
	if !tier.Valid() {
		c.Redirect(http.StatusFound, "/home")
		return
	}

	notify.Push(c, h.alerts.Trigger(c.Request.Context(), tier)...)
	c.Redirect(http.StatusFound, "/home")
}

func (h *Handler) logout(c *gin.Context) {
	h.sessions.SignOut(c)
	c.Redirect(http.StatusFound, "/")
}
