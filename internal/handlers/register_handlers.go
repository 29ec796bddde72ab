package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// Operation routes are only mounted when services.Operation is set. They are
// served under /api/v1 and, with the ledger's original paths, under /api.
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	RegisterValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	registerLauncherRoutes(r, services.Launcher)

	v1 := r.Group("/api/v1")
	registerConverterRoutes(v1, services.Quote)
	if services.Operation != nil {
		registerOperationRoutes(v1, "/operations", services.Operation)
		registerBackupRoutes(v1, services.Operation)

		legacy := r.Group("/api")
		registerOperationRoutes(legacy, "/operaciones", services.Operation)
		registerBackupRoutes(legacy, services.Operation)
	}
}
