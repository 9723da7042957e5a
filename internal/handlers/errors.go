package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/customer_ledger_app/internal/apperrors"
	"github.com/SscSPs/customer_ledger_app/internal/middleware"
	"github.com/SscSPs/customer_ledger_app/internal/validation"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

const invalidInputMessage = "Invalid input"

// isEmptyBody reports whether a bind failed only because no body was sent.
func isEmptyBody(err error) bool {
	return errors.Is(err, io.EOF)
}

// respondBindError renders a request binding failure as 400.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	if fields := validation.FieldErrors(err); fields != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: invalidInputMessage, Fields: fields})
		return
	}
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

// respondServiceError maps service errors onto HTTP statuses.
// action names the failed operation in the generic 500 message.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	var fieldErr *apperrors.FieldError
	switch {
	case errors.As(err, &fieldErr):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:  invalidInputMessage,
			Fields: map[string]string{fieldErr.Field: fieldErr.Message},
		})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid credentials"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Info("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found."})
	default:
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to " + action})
	}
}

// requireUserID fetches the authenticated user ID, answering 401 when it is absent.
func requireUserID(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication credentials were not provided"})
		return "", false
	}
	return userID, true
}
