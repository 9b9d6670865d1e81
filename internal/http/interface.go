package http

import (
	"github.com/gin-gonic/gin"

	"github.com/collegenav/collegenav/backend/internal/logger"
)

// ResponseHandler defines the interface for handling HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
}

// Logger interface for logging operations
type Logger = logger.Logger
