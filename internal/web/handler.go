package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sos-giri/emergency-sos/internal/alerts"
	authservice "github.com/sos-giri/emergency-sos/internal/auth/service"
	"github.com/sos-giri/emergency-sos/internal/session"
	usersservice "github.com/sos-giri/emergency-sos/internal/users/service"
)

// Handler serves the four screens. Every dependency is injected; handlers
// never touch ambient singletons.
type Handler struct {
	auth     *authservice.AuthService
	profiles *usersservice.ProfileService
	alerts   *alerts.Service
	sessions *session.Manager
}

func NewHandler(auth *authservice.AuthService, profiles *usersservice.ProfileService, alerts *alerts.Service, sessions *session.Manager) *Handler {
	return &Handler{auth: auth, profiles: profiles, alerts: alerts, sessions: sessions}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.showLogin)
	r.POST("/", h.login)
	r.GET("/register", h.showRegister)
	r.POST("/register", h.register)
	r.GET("/home", h.home)
	r.POST("/home/alert", h.alert)
	r.POST("/logout", h.logout)
	r.GET("/profile", h.showProfile)
	r.POST("/profile", h.updateProfile)
	r.GET("/static/app.css", h.stylesheet)

	// Any unmatched path goes back to the login screen.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}
