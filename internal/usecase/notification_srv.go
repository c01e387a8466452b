package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"studio-site/internal/dto/request"
	"studio-site/pkg/mailer"
	"studio-site/pkg/metrics"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

// BookingDetails is what the business needs to follow up on an inquiry.
type BookingDetails struct {
	Name           string
	WhatsAppNumber string
	OccasionType   string
	Location       string
	Notes          string
}

type NotificationService interface {
	// SendBookingEmail validates the payload and mails it. Used by POST /api/send-email.
	SendBookingEmail(ctx context.Context, req *request.SendEmailRequest) error
	NotifyBooking(ctx context.Context, details BookingDetails) error
}

type notificationService struct {
	sender mailer.Sender
	config utils.EmailConfig
	log    *zap.Logger
}

func NewNotificationService(sender mailer.Sender, config utils.EmailConfig, log *zap.Logger) NotificationService {
	return &notificationService{
		sender: sender,
		config: config,
		log:    log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) SendBookingEmail(ctx context.Context, req *request.SendEmailRequest) error {
	if err := validate(req); err != nil {
		s.log.Warn("Send email validation failed", zap.Error(err))
		return err
	}

	details := BookingDetails{
		Name:           strings.TrimSpace(req.Name),
		WhatsAppNumber: strings.TrimSpace(req.WhatsAppNumber),
		OccasionType:   strings.TrimSpace(req.OccasionType),
		Location:       strings.TrimSpace(req.Location),
	}
	if req.Notes != nil {
		details.Notes = strings.TrimSpace(*req.Notes)
	}

	return s.NotifyBooking(ctx, details)
}

func (s *notificationService) NotifyBooking(ctx context.Context, details BookingDetails) error {
	if !s.config.Configured() || s.config.To == "" {
		s.log.Error("Email credentials not configured")
		metrics.IncNotification("not_configured")
		return ErrMailNotConfigured
	}

	msg, err := composeBookingEmail(details)
	if err != nil {
		return fmt.Errorf("compose booking email: %w", err)
	}
	msg.FromName = s.config.FromName
	msg.To = []string{s.config.To}

	if err := s.sender.Send(ctx, msg); err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			metrics.IncNotification("not_configured")
			return ErrMailNotConfigured
		}
		s.log.Error("Failed to send booking email",
			zap.Error(err),
			zap.String("occasion", details.OccasionType),
		)
		metrics.IncNotification("failed")
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	s.log.Info("Booking email sent", zap.String("occasion", details.OccasionType))
	metrics.IncNotification("sent")
	return nil
}

var bookingHTML = template.Must(template.New("booking").Parse(`<h2>New Booking Request</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>WhatsApp:</strong> <a href="{{.WhatsAppLink}}">{{.WhatsAppNumber}}</a></p>
<p><strong>Occasion:</strong> {{.OccasionType}}</p>
<p><strong>Location:</strong> {{.Location}}</p>
<p><strong>Notes:</strong><br/>{{.NotesHTML}}</p>
`))

func composeBookingEmail(d BookingDetails) (mailer.Message, error) {
	notes := strings.TrimSpace(d.Notes)
	if notes == "" {
		notes = "None"
	}

	var html bytes.Buffer
	err := bookingHTML.Execute(&html, struct {
		BookingDetails
		WhatsAppLink string
		NotesHTML    template.HTML
	}{
		BookingDetails: d,
		WhatsAppLink:   whatsAppLink(d.WhatsAppNumber),
		NotesHTML:      notesToHTML(notes),
	})
	if err != nil {
		return mailer.Message{}, err
	}

	text := fmt.Sprintf("New Booking Request\n\nName: %s\nWhatsApp: %s\nOccasion: %s\nLocation: %s\nNotes: %s\n",
		d.Name, d.WhatsAppNumber, d.OccasionType, d.Location, notes)

	return mailer.Message{
		Subject: fmt.Sprintf("New Booking: %s from %s", d.OccasionType, d.Name),
		Text:    text,
		HTML:    html.String(),
	}, nil
}

// whatsAppLink keeps only the digits of the number.
func whatsAppLink(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return "https://wa.me/" + b.String()
}

func notesToHTML(notes string) template.HTML {
	escaped := template.HTMLEscapeString(notes)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br/>"))
}
