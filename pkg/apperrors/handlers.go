package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Status  string    `json:"status"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
	Details any       `json:"details,omitempty"`
}

// HandleError writes an AppError to the response in the
// {status, message} shape the API promises.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		slog.Error("server error", "code", err.Code, "error", err.Error())
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Status:  "Fail",
		Message: err.Message,
		Code:    err.Code,
		Details: err.Details,
	})
}
