package request

type CreateBookingRequest struct {
	Name           string  `json:"name" validate:"required,notblank,max=200"`
	WhatsAppNumber string  `json:"whatsapp_number" validate:"required,notblank,max=50"`
	OccasionType   string  `json:"occasion_type" validate:"required,notblank,max=100"`
	Location       string  `json:"location" validate:"required,notblank,max=300"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=New Contacted Confirmed Completed"`
}

// SendEmailRequest is the standalone notification payload, same fields as a booking.
type SendEmailRequest struct {
	Name           string  `json:"name" validate:"required,notblank"`
	WhatsAppNumber string  `json:"whatsapp_number" validate:"required,notblank"`
	OccasionType   string  `json:"occasion_type" validate:"required,notblank"`
	Location       string  `json:"location" validate:"required,notblank"`
	Notes          *string `json:"notes,omitempty"`
}
