package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/usdt_desk/internal/apperrors"
	portssvc "github.com/SscSPs/usdt_desk/internal/core/ports/services"
	"github.com/SscSPs/usdt_desk/internal/dto"
	"github.com/SscSPs/usdt_desk/internal/middleware"
	"github.com/gin-gonic/gin"
)

// operationHandler handles HTTP requests related to desk operations.
type operationHandler struct {
	operationService portssvc.OperationSvcFacade
}

// newOperationHandler creates a new operationHandler.
func newOperationHandler(svc portssvc.OperationSvcFacade) *operationHandler {
	return &operationHandler{operationService: svc}
}

func registerOperationRoutes(rg *gin.RouterGroup, path string, operationService portssvc.OperationSvcFacade) {
	h := newOperationHandler(operationService)

	operations := rg.Group(path)
	{
		operations.GET("", h.listOperations)
		operations.POST("", h.createOperation)
		operations.PUT("/:id", h.updateOperation)
		operations.DELETE("/:id", h.deleteOperation)
	}
}

func parseOperationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid operation ID"})
		return 0, false
	}
	return id, true
}

// listOperations godoc
// @Summary List operations
// @Description Returns every recorded operation, newest first
// @Tags operations
// @Produce  json
// @Success 200 {array} dto.OperationResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operations [get]
func (h *operationHandler) listOperations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	ops, err := h.operationService.ListOperations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list operations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list operations"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListOperationResponse(ops))
}

// createOperation godoc
// @Summary Record an operation
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   operation body dto.CreateOperationRequest true "Operation details"
// @Success 201 {object} dto.CreateOperationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /operations [post]
func (h *operationHandler) createOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	op, err := h.operationService.CreateOperation(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create operation", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operation"})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOperationResponse{Message: "Operación añadida", ID: op.ID})
}

// updateOperation godoc
// @Summary Update an operation
// @Tags operations
// @Accept  json
// @Produce  json
// @Param   id path int true "Operation ID"
// @Param   operation body dto.UpdateOperationRequest true "New values"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operations/{id} [put]
func (h *operationHandler) updateOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseOperationID(c)
	if !ok {
		return
	}

	var req dto.UpdateOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if _, err := h.operationService.UpdateOperation(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update operation", slog.Int64("operation_id", id), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update operation"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Operación %d actualizada", id)})
}

// deleteOperation godoc
// @Summary Delete an operation
// @Description Marks the operation as Eliminada; the row is kept
// @Tags operations
// @Produce  json
// @Param   id path int true "Operation ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Operation not found"
// @Router /operations/{id} [delete]
func (h *operationHandler) deleteOperation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, ok := parseOperationID(c)
	if !ok {
		return
	}

	if err := h.operationService.DeleteOperation(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Operation not found"})
			return
		}
		logger.Error("Failed to delete operation", slog.Int64("operation_id", id), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete operation"})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Operación %d marcada como eliminada", id)})
}
