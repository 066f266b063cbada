package web

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/app.css
var stylesheet []byte

func (h *Handler) stylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", stylesheet)
}
