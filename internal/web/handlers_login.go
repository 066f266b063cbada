package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sos-giri/emergency-sos/internal/notify"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

func (h *Handler) showLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Toasts": notify.Take(c),
	})
}

func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("email")
	pin := domain.SanitizePIN(c.PostForm("pin"))

	rec, err := h.auth.Login(c.Request.Context(), email, pin)
	switch err {
	case nil:
	case domain.ErrUserNotFound:
		notify.Push(c, notify.Error(notify.MsgUserNotFound))
		c.Redirect(http.StatusFound, "/")
		return
	case domain.ErrInvalidPIN:
		notify.Push(c, notify.Error(notify.MsgInvalidPIN))
		c.Redirect(http.StatusFound, "/")
		return
	default:
		log.Printf("[error] operation=login error=%v", err)
		notify.Push(c, notify.Error(notify.MsgLoginFailed))
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.sessions.SignIn(c, rec.ID); err != nil {
		log.Printf("[error] operation=login.session error=%v", err)
		notify.Push(c, notify.Error(notify.MsgLoginFailed))
		c.Redirect(http.StatusFound, "/")
		return
	}

	notify.Push(c, notify.Success(notify.MsgLoginOK))
	c.Redirect(http.StatusFound, "/home")
}
