package http

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/garyjia/invoice-validation/internal/application/service"
	"github.com/garyjia/invoice-validation/internal/invoice"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	validationService service.ValidationService
	logger            Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(validationService service.ValidationService, logger Logger) *Handlers {
	return &Handlers{
		validationService: validationService,
		logger:            logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// ListResultsRequest represents query parameters for listing runs
type ListResultsRequest struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   "1.0.0",
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    response,
	})
}

// ValidateInvoice handles POST /api/v1/invoices/validate. A structurally
// well-formed payload always yields 200; the validation verdict is carried
// in the run's report, not in the HTTP status.
func (h *Handlers) ValidateInvoice(c *gin.Context) {
	var raw invoice.Raw
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.logger.Error("Invalid validation request body", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	run, err := h.validationService.ValidateInvoice(c.Request.Context(), raw)
	if err != nil {
		h.logger.Error("Validation run failed", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to validate invoice",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    run,
	})
}

// GetResult handles GET /api/v1/results/:id
func (h *Handlers) GetResult(c *gin.Context) {
	id := c.Param("id")

	run, err := h.validationService.GetResult(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, Response{
				Success: false,
				Error:   "validation result not found",
			})
			return
		}

		h.logger.Error("Failed to get validation result", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to get validation result",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    run,
	})
}

// ExportResponse represents the report export result in API responses
type ExportResponse struct {
	RunID    string `json:"run_id"`
	FilePath string `json:"file_path"`
}

// ExportResult handles POST /api/v1/results/:id/export
func (h *Handlers) ExportResult(c *gin.Context) {
	id := c.Param("id")

	path, err := h.validationService.ExportResult(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, Response{
				Success: false,
				Error:   "validation result not found",
			})
			return
		}

		h.logger.Error("Failed to export validation result", "error", err, "id", id)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to export validation result",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    ExportResponse{RunID: id, FilePath: path},
	})
}

// ListResults handles GET /api/v1/results
func (h *Handlers) ListResults(c *gin.Context) {
	var req ListResultsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid query parameters",
		})
		return
	}

	if req.Limit <= 0 || req.Limit > 100 {
		req.Limit = 20
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	runs, err := h.validationService.ListResults(c.Request.Context(), req.Limit, req.Offset)
	if err != nil {
		h.logger.Error("Failed to list validation results", "error", err)
		c.JSON(http.StatusInternalServerError, Response{
			Success: false,
			Error:   "failed to list validation results",
		})
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    runs,
	})
}
