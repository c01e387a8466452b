package adaptor

import (
	"net/http"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	service usecase.NotificationService
	log     *zap.Logger
}

func NewNotificationHandler(service usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With(zap.String("handler", "notification")),
	}
}

// SendEmail handles POST /api/send-email (public)
func (h *NotificationHandler) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req request.SendEmailRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	if err := h.service.SendBookingEmail(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "send email")
		return
	}

	utils.ResponseSuccess(w, "Email sent", nil)
}
