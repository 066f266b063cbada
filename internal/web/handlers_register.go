package web

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	authservice "github.com/sos-giri/emergency-sos/internal/auth/service"
	"github.com/sos-giri/emergency-sos/internal/notify"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

func (h *Handler) showRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Toasts":      notify.Take(c),
		"Form":        authservice.RegistrationForm{},
		"BloodGroups": domain.BloodGroups,
	})
}

func (h *Handler) register(c *gin.Context) {
	form := authservice.RegistrationForm{
		Email:        c.PostForm("email"),
		PIN:          domain.SanitizePIN(c.PostForm("pin")),
		Name:         c.PostForm("name"),
		DateOfBirth:  c.PostForm("dateOfBirth"),
		FatherName:   c.PostForm("fatherName"),
		FatherMobile: c.PostForm("fatherMobile"),
		Address:      c.PostForm("address"),
		FriendName:   c.PostForm("friendName"),
		FriendMobile: c.PostForm("friendMobile"),
		BloodGroup:   c.PostForm("bloodGroup"),
	}

	if len(form.PIN) != 4 || !domain.ValidBloodGroup(form.BloodGroup) {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Toasts":      []notify.Toast{notify.Error(notify.MsgRegistrationFailed)},
			"Form":        form,
			"BloodGroups": domain.BloodGroups,
		})
		return
	}

	rec, err := h.auth.Register(c.Request.Context(), form)
	switch err {
	case nil:
	case domain.ErrEmailTaken:
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Toasts":      []notify.Toast{notify.Error(notify.MsgEmailTaken)},
			"Form":        form,
			"BloodGroups": domain.BloodGroups,
		})
		return
	default:
		log.Printf("[error] operation=register error=%v", err)
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Toasts":      []notify.Toast{notify.Error(notify.MsgRegistrationFailed)},
			"Form":        form,
			"BloodGroups": domain.BloodGroups,
		})
		return
	}

	if err := h.sessions.SignIn(c, rec.ID); err != nil {
		log.Printf("[error] operation=register.session error=%v", err)
		notify.Push(c, notify.Error(notify.MsgRegistrationFailed))
		c.Redirect(http.StatusFound, "/")
		return
	}

	notify.Push(c, notify.Success(notify.MsgRegistrationOK))
	c.Redirect(http.StatusFound, "/home")
}
