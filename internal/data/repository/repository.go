package repository

import (
	"errors"

	"studio-site/pkg/database"

	"go.uber.org/zap"
)

// ErrNotFound is returned by writes that matched no row.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	Booking     BookingRepository
	Package     PackageRepository
	Portfolio   PortfolioRepository
	Testimonial TestimonialRepository
	Session     SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking:     NewBookingRepository(db, log),
		Package:     NewPackageRepository(db, log),
		Portfolio:   NewPortfolioRepository(db, log),
		Testimonial: NewTestimonialRepository(db, log),
		Session:     NewSessionRepository(db, log),
	}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
