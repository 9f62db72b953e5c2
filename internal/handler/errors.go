package handler

import (
	"errors"
	"net/http"

	"bga-backend/internal/transport/httpdto"
	bga_errors "bga-backend/pkg/errors"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HTTPStatus maps a service error to its response status.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, bga_errors.ErrInvalidInput),
		errors.Is(err, bga_errors.ErrAlreadyExists),
		errors.Is(err, bga_errors.ErrInvalidCredentials):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the only place errors become responses. serverMsg is the
// body for unexpected failures, which are logged under op.
func writeError(c *gin.Context, l *logger.Logger, op string, err error, serverMsg string) {
	var vErr *bga_errors.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, httpdto.NewValidationErrorResponse(vErr))
		return
	}

	status := HTTPStatus(err)
	switch {
	case errors.Is(err, bga_errors.ErrAlreadyExists):
		c.JSON(status, httpdto.NewErrorResponse("User already exists"))
	case errors.Is(err, bga_errors.ErrInvalidCredentials):
		c.JSON(status, httpdto.NewErrorResponse("Invalid credentials"))
	case errors.Is(err, bga_errors.ErrInvalidInput):
		c.JSON(status, httpdto.NewErrorResponse("Invalid request"))
	default:
		if l != nil {
			l.WithContext(c.Request.Context()).Error("request failed",
				zap.String("op", op),
				zap.Error(err),
			)
		}
		c.JSON(status, httpdto.NewErrorResponse(serverMsg))
	}
}
