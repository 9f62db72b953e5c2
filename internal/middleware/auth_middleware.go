package middleware

import (
	"net/http"
	"strings"

	"bga-backend/internal/auth"
	"bga-backend/internal/transport/httpdto"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// TokenVerifier is satisfied by *auth.TokenCodec.
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// AuthMiddleware rejects requests without a valid bearer token and attaches
// the decoded claims to the request context otherwise. It never touches storage.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearer(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.NewErrorResponse("No token provided"))
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httpdto.NewErrorResponse("Invalid token"))
			return
		}

		ctx := auth.WithIdentity(c.Request.Context(), claims)
		ctx = logger.WithUserID(ctx, claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// extractBearer accepts exactly "Bearer <token>".
func extractBearer(c *gin.Context) (string, bool) {
	token, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
	return token, found && token != ""
}
