package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "github.com/collegenav/collegenav/backend/internal/http"
	"github.com/collegenav/collegenav/backend/internal/integrity"
)

// Handler exposes the read-only admin endpoints: liveness, the
// integrity check battery, and the applied-migration log. Nothing here
// mutates state.
type Handler struct {
	responseHandler ResponseHandler
	checker         *integrity.Checker
	records         RecordStore
}

// NewHandler creates a new admin health handler
func NewHandler(responseHandler ResponseHandler, checker *integrity.Checker, records RecordStore) *Handler {
	return &Handler{
		responseHandler: responseHandler,
		checker:         checker,
		records:         records,
	}
}

// RegisterRoutes attaches the admin endpoints to the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealthCheck)
	v1 := router.Group("/api/v1")
	v1.GET("/integrity", h.HandleIntegrityCheck)
	v1.GET("/migrations", h.HandleMigrations)
}

// HandleHealthCheck reports that the admin server is running
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	h.responseHandler.SuccessResponse(c, nil, "Health check successful")
}

// HandleIntegrityCheck runs the check battery and reports the summary.
// Responds 503 when any check failed so dashboards can alert on status.
func (h *Handler) HandleIntegrityCheck(c *gin.Context) {
	summary := h.checker.Run(c.Request.Context())
	if !summary.OK() {
		// Same envelope as every other endpoint; the summary rides in Data
		c.JSON(http.StatusServiceUnavailable, apphttp.Response{
			Success: false,
			Message: "Integrity check failed",
			Data:    summary,
		})
		return
	}
	h.responseHandler.SuccessResponse(c, summary, "Integrity check passed")
}

// HandleMigrations lists applied migrations from the record store
func (h *Handler) HandleMigrations(c *gin.Context) {
	applied, err := h.records.ListApplied()
	if err != nil {
		h.responseHandler.ErrorResponse(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list migrations", err)
		return
	}
	h.responseHandler.SuccessResponse(c, gin.H{"applied": applied, "count": len(applied)}, "Applied migrations")
}
