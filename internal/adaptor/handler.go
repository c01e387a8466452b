package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
	Package      *PackageHandler
	Portfolio    *PortfolioHandler
	Testimonial  *TestimonialHandler
	Media        *MediaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		Booking:      NewBookingHandler(service.Booking, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Package:      NewPackageHandler(service.Package, log),
		Portfolio:    NewPortfolioHandler(service.Portfolio, log),
		Testimonial:  NewTestimonialHandler(service.Testimonial, log),
		Media:        NewMediaHandler(log),
	}
}

const maxBodyBytes = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// validateRequest writes 400 with the field map when req is invalid.
func validateRequest(w http.ResponseWriter, req any) bool {
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationFailed(w, validationErrors)
		return false
	}
	return true
}

// handleServiceError maps usecase errors to HTTP responses. 5xx never leak the cause.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseValidationFailed(w, validationErr.Fields)

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrMailNotConfigured):
		log.Error(operation+" failed - mail not configured",
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Server configuration error")

	case errors.Is(err, usecase.ErrMailDelivery):
		log.Error(operation+" failed - mail delivery",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Failed to send email")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
