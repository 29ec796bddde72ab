package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

type launcherHandler struct {
	launcher portssvc.LauncherSvc
}

func registerLauncherRoutes(r *gin.Engine, launcher portssvc.LauncherSvc) {
	h := &launcherHandler{launcher: launcher}
	r.GET("/xe", h.openXE)
}

// openXE godoc
// @Summary Open the XE currency converter
// @Description Redirects the browser to the external XE converter
// @Tags converter
// @Success 302
// @Router /xe [get]
func (h *launcherHandler) openXE(c *gin.Context) {
	c.Redirect(http.StatusFound, h.launcher.URL())
}
