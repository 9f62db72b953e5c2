package handler

import (
	"net/http"

	"bga-backend/internal/auth"
	"bga-backend/internal/services"
	"bga-backend/internal/transport/httpdto"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const requiredContactFields = "firstName, email and message are required"

// ContactHandler handles the public contact form and the message listing.
type ContactHandler struct {
	service *services.ContactService
	logger  *logger.Logger
}

func NewContactHandler(service *services.ContactService, l *logger.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: l}
}

// Submit handles POST /api/contact. No authentication.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req httpdto.ContactRequest
	if err := bindJSON(c, &req, requiredContactFields); err != nil {
		writeError(c, h.logger, "contact.submit", err, "Failed to save message")
		return
	}

	msg, err := h.service.Submit(c.Request.Context(), services.SubmitContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		writeError(c, h.logger, "contact.submit", err, "Failed to save message")
		return
	}

	h.logger.WithContext(c.Request.Context()).Info("contact message saved", zap.String("contact_id", msg.ID.String()))
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse())
}

// List handles GET /api/messages. Any authenticated caller may list; the
// role claim is not checked.
func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "contact.list", err, "Failed to fetch messages")
		return
	}

	out := make([]httpdto.ContactMessageDTO, 0, len(messages))
	for _, m := range messages {
		out = append(out, httpdto.ContactMessageDTO{
			ID:        m.ID.String(),
			FirstName: m.FirstName,
			LastName:  m.LastName,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	if reader, ok := auth.IdentityFromContext(c.Request.Context()); ok {
		h.logger.WithContext(c.Request.Context()).Info("messages listed",
			zap.String("role", reader.Role),
			zap.Int("count", len(out)),
		)
	}
	c.JSON(http.StatusOK, out)
}
