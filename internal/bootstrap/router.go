package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/sos-giri/emergency-sos/internal/api/http"

	"github.com/sos-giri/emergency-sos/internal/alerts"
	authservice "github.com/sos-giri/emergency-sos/internal/auth/service"
	"github.com/sos-giri/emergency-sos/internal/device"
	"github.com/sos-giri/emergency-sos/internal/session"
	"github.com/sos-giri/emergency-sos/internal/users/repository"
	usersservice "github.com/sos-giri/emergency-sos/internal/users/service"
	"github.com/sos-giri/emergency-sos/internal/web"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Users       repository.Store
	Sessions    session.Store
	// SessionsClient is only used by the health endpoint; nil disables the
	// session-store probe.
	SessionsClient *redis.Client
	Player         device.Player
	Torch          device.Torch
	Locator        device.Locator
	SoundPath      string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(web.RequestLogMiddleware())
	r.SetHTMLTemplate(web.LoadTemplates())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.SessionsClient)
	healthHandler.RegisterRoutes(r)

	sessions := session.NewManager(dep.Sessions)
	authSvc := authservice.NewAuthService(dep.Users, dep.Locator)
	profileSvc := usersservice.NewProfileService(dep.Users)
	alertSvc := alerts.NewService(dep.Player, dep.Torch, dep.SoundPath)

	web.NewHandler(authSvc, profileSvc, alertSvc, sessions).Register(r)

	return r
}
