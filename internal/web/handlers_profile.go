package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sos-giri/emergency-sos/internal/notify"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
	usersservice "github.com/sos-giri/emergency-sos/internal/users/service"
)

func (h *Handler) showProfile(c *gin.Context) {
	userID, ok := h.sessions.Current(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	rec, err := h.profiles.Load(c.Request.Context(), userID)
	if err == domain.ErrUserNotFound {
		notify.Push(c, notify.Error(notify.MsgUserDataNotFound))
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		log.Printf("[error] operation=profile.load error=%v", err)
		c.HTML(http.StatusOK, "error.html", gin.H{
			"Toasts":    append(notify.Take(c), notify.Error(notify.MsgLoadFailed)),
			"Message":   notify.MsgLoadFailed,
			"RetryPath": "/profile",
		})
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Toasts":      notify.Take(c),
		"User":        rec,
		"BloodGroups": domain.BloodGroups,
	})
}

func (h *Handler) updateProfile(c *gin.Context) {
	userID, ok := h.sessions.Current(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	current, err := h.profiles.Load(c.Request.Context(), userID)
	if err == domain.ErrUserNotFound {
		notify.Push(c, notify.Error(notify.MsgUserDataNotFound))
		c.Redirect(http.StatusFound, "/")
		return
	}
	if err != nil {
		log.Printf("[error] operation=profile.update.load error=%v", err)
		notify.Push(c, notify.Error(notify.MsgUpdateFailed))
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	form := usersservice.ProfileForm{
		Name:         c.PostForm("name"),
		DateOfBirth:  c.PostForm("dateOfBirth"),
		FatherName:   c.PostForm("fatherName"),
		FatherMobile: c.PostForm("fatherMobile"),
		Address:      c.PostForm("address"),
		FriendName:   c.PostForm("friendName"),
		FriendMobile: c.PostForm("friendMobile"),
		BloodGroup:   c.PostForm("bloodGroup"),
	}

	if !domain.ValidBloodGroup(form.BloodGroup) {
		notify.Push(c, notify.Error(notify.MsgUpdateFailed))
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	if err := h.profiles.Update(c.Request.Context(), current, form); err != nil {
		log.Printf("[error] operation=profile.update error=%v", err)
		notify.Push(c, notify.Error(notify.MsgUpdateFailed))
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	notify.Push(c, notify.Success(notify.MsgUpdateOK))
	c.Redirect(http.StatusFound, "/home")
}
