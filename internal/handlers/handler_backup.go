package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/dto"
	"github.com/SscSPs/usdt_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

type backupHandler struct {
	backupService portssvc.BackupSvc
}

func registerBackupRoutes(rg *gin.RouterGroup, backupService portssvc.BackupSvc) {
	h := &backupHandler{backupService: backupService}

	backup := rg.Group("/backup")
	{
		backup.GET("/export", h.exportBackup)
		backup.POST("/import", h.importBackup)
	}
}

// exportBackup godoc
// @Summary Export all operations
// @Description Each row is [id, type, client, amount, usdt, date, status]
// @Tags backup
// @Produce  json
// @Success 200 {array} array
// @Router /backup/export [get]
func (h *backupHandler) exportBackup(c *gin.Context) {
	rows, err := h.backupService.ExportBackup(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to export backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export backup"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// importBackup godoc
// @Summary Import operations
// @Description Inserts every operation in a single transaction
// @Tags backup
// @Accept  json
// @Produce  json
// @Param   backup body dto.ImportBackupRequest true "Operations to restore"
// @Success 200 {object} dto.ImportBackupResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /backup/import [post]
func (h *backupHandler) importBackup(c *gin.Context) {
	var req dto.ImportBackupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	n, err := h.backupService.ImportBackup(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to import backup", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import backup"})
		return
	}

	c.JSON(http.StatusOK, dto.ImportBackupResponse{Message: "Backup importado", Imported: n})
}
