package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/dto/request"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestBookingService(repo *mockBookingRepo, notifier NotificationService) *bookingService {
	s := NewBookingService(repo, notifier, time.Second, zap.NewNop()).(*bookingService)
	s.dispatch = func(fn func()) { fn() }
	return s
}

func strPtr(s string) *string { return &s }

func TestCreateBooking(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &mockNotifier{}
	s := newTestBookingService(repo, notifier)

	resp, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Name:           "Asha",
		WhatsAppNumber: "+62 812-3456",
		OccasionType:   "Birthday",
		Location:       "Jakarta",
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if resp.Status != "New" {
		t.Errorf("status = %q, want New", resp.Status)
	}
	if resp.Notes != nil {
		t.Errorf("notes = %v, want nil", *resp.Notes)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("stored %d bookings, want 1", len(repo.bookings))
	}
	if len(notifier.notified) != 1 || notifier.notified[0].Name != "Asha" {
		t.Errorf("notified = %+v", notifier.notified)
	}
}

func TestCreateBooking_MissingLocation(t *testing.T) {
	tests := []struct {
		name     string
		location string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"tabs and newlines", "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{}
			notifier := &mockNotifier{}
			s := newTestBookingService(repo, notifier)

			_, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
				Name:           "Asha",
				WhatsAppNumber: "+62 812-3456",
				OccasionType:   "Birthday",
				Location:       tt.location,
			})
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("error = %v, want ErrValidation", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) || ve.Fields["location"] == "" {
				t.Errorf("expected location field error, got %v", err)
			}
			if repo.calls != 0 {
				t.Errorf("repository called %d times, want 0", repo.calls)
			}
			if len(notifier.notified) != 0 {
				t.Error("notification sent for invalid booking")
			}
		})
	}
}

func TestCreateBooking_NotificationFailureKeepsBooking(t *testing.T) {
	repo := &mockBookingRepo{}
	notifier := &mockNotifier{err: ErrMailDelivery}
	s := newTestBookingService(repo, notifier)

	resp, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Name:           "Budi",
		WhatsAppNumber: "0812",
		OccasionType:   "Event",
		Location:       "Bandung",
		Notes:          strPtr("  evening shoot  "),
	})
	if err != nil {
		t.Fatalf("CreateBooking() error = %v", err)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("booking not kept after email failure")
	}
	if resp.Notes == nil || *resp.Notes != "evening shoot" {
		t.Errorf("notes = %v", resp.Notes)
	}
}

func TestCreateBooking_RepositoryError(t *testing.T) {
	notifier := &mockNotifier{}
	s := newTestBookingService(&mockBookingRepo{createErr: errDB}, notifier)

	_, err := s.CreateBooking(context.Background(), &request.CreateBookingRequest{
		Name: "A", WhatsAppNumber: "1", OccasionType: "Event", Location: "X",
	})
	if !errors.Is(err, errDB) {
		t.Fatalf("error = %v, want wrapped db error", err)
	}
	if len(notifier.notified) != 0 {
		t.Error("notification sent although booking was not stored")
	}
}

func TestListBookings_StatusFilter(t *testing.T) {
	repo := &mockBookingRepo{bookings: []*entity.Booking{
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Status: entity.BookingStatusNew},
		{BaseNoDelete: entity.BaseNoDelete{ID: uuid.New()}, Status: entity.BookingStatusConfirmed},
	}}
	s := newTestBookingService(repo, &mockNotifier{})

	all, err := s.ListBookings(context.Background(), "")
	if err != nil || len(all) != 2 {
		t.Fatalf("ListBookings(\"\") = %d, %v", len(all), err)
	}

	confirmed, err := s.ListBookings(context.Background(), "Confirmed")
	if err != nil || len(confirmed) != 1 {
		t.Fatalf("ListBookings(Confirmed) = %d, %v", len(confirmed), err)
	}

	if _, err := s.ListBookings(context.Background(), "confirmed"); !errors.Is(err, ErrValidation) {
		t.Errorf("lowercase status error = %v, want ErrValidation", err)
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	id := uuid.New()
	repo := &mockBookingRepo{bookings: []*entity.Booking{
		{BaseNoDelete: entity.BaseNoDelete{ID: id}, Status: entity.BookingStatusNew},
	}}
	s := newTestBookingService(repo, &mockNotifier{})

	tests := []struct {
		name    string
		id      string
		status  string
		wantErr error
	}{
		{"valid skip ahead", id.String(), "Completed", nil},
		{"valid back to new", id.String(), "New", nil},
		{"invalid status", id.String(), "Cancelled", ErrValidation},
		{"malformed id", "abc", "New", ErrInvalidInput},
		{"unknown id", uuid.NewString(), "New", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := s.UpdateStatus(context.Background(), tt.id, &request.UpdateBookingStatusRequest{Status: tt.status})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("UpdateStatus() error = %v", err)
			}
			if resp.Status != tt.status {
				t.Errorf("status = %q, want %q", resp.Status, tt.status)
			}
		})
	}
}

func TestExportBookings(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	repo := &mockBookingRepo{bookings: []*entity.Booking{
		{
			BaseNoDelete:   entity.BaseNoDelete{ID: uuid.New(), CreatedAt: now},
			Name:           "Citra",
			WhatsAppNumber: "0813",
			OccasionType:   "Traditional",
			Location:       "Yogyakarta",
			Notes:          strPtr("two cameras"),
			Status:         entity.BookingStatusContacted,
		},
	}}
	s := newTestBookingService(repo, &mockNotifier{})

	var buf bytes.Buffer
	if err := s.ExportBookings(context.Background(), &buf); err != nil {
		t.Fatalf("ExportBookings() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[0][1] != "Name" || rows[1][1] != "Citra" || rows[1][6] != "Contacted" {
		t.Errorf("unexpected rows: %v", rows)
	}
}
