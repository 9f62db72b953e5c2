package middleware

import (
	"net/http"

	"bga-backend/internal/transport/httpdto"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryMiddleware turns a panic into a 500 JSON body so no request can take
// the process down.
func RecoveryMiddleware(l *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		l.WithContext(c.Request.Context()).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, httpdto.NewErrorResponse("Server error"))
	})
}
