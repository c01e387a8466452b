package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/internal/dto/response"
	"studio-site/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Admin
	ListBookings(ctx context.Context, status string) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error)
	ExportBookings(ctx context.Context, w io.Writer) error
}

type bookingService struct {
	repo        repository.BookingRepository
	notifier    NotificationService
	mailTimeout time.Duration
	// dispatch runs the notification outside the request, tests swap it for a synchronous call
	dispatch func(fn func())
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, notifier NotificationService, mailTimeout time.Duration, log *zap.Logger) BookingService {
	if mailTimeout <= 0 {
		mailTimeout = 30 * time.Second
	}
	return &bookingService{
		repo:        repo,
		notifier:    notifier,
		mailTimeout: mailTimeout,
		dispatch:    func(fn func()) { go fn() },
		now:         time.Now,
		log:         log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	// 2. Simpan booking dengan status New
	now := s.now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           strings.TrimSpace(req.Name),
		WhatsAppNumber: strings.TrimSpace(req.WhatsAppNumber),
		OccasionType:   strings.TrimSpace(req.OccasionType),
		Location:       strings.TrimSpace(req.Location),
		Notes:          normalizeNotes(req.Notes),
		Status:         entity.BookingStatusNew,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	metrics.IncBookingCreated()
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("occasion", booking.OccasionType),
	)

	// 3. Kirim notifikasi, gagal kirim tidak membatalkan booking
	details := BookingDetails{
		Name:           booking.Name,
		WhatsAppNumber: booking.WhatsAppNumber,
		OccasionType:   booking.OccasionType,
		Location:       booking.Location,
	}
	if booking.Notes != nil {
		details.Notes = *booking.Notes
	}
	bookingID := booking.ID.String()
	s.dispatch(func() {
		notifyCtx, cancel := context.WithTimeout(context.Background(), s.mailTimeout)
		defer cancel()
		if err := s.notifier.NotifyBooking(notifyCtx, details); err != nil {
			s.log.Warn("Booking notification failed",
				zap.Error(err),
				zap.String("booking_id", bookingID),
			)
		}
	})

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string) ([]response.BookingResponse, error) {
	var filter *entity.BookingStatus
	if status != "" {
		st := entity.BookingStatus(status)
		if !st.Valid() {
			return nil, fieldError("status", "Must be one of: New, Contacted, Confirmed, Completed")
		}
		filter = &st
	}

	bookings, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, req *request.UpdateBookingStatusRequest) (*response.BookingResponse, error) {
	bookingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: booking id %q", ErrInvalidInput, id)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	status := entity.BookingStatus(req.Status)
	booking, err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("booking %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	metrics.IncBookingStatus(string(status))
	s.log.Info("Booking status updated",
		zap.String("booking_id", id),
		zap.String("status", req.Status),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func normalizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
