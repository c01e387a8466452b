package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wirePublic(r chi.Router, handler *adaptor.Handler, limiter *middleware.RateLimiter) {
	// ==================== PUBLIC READS ====================
	r.Get("/packages", handler.Package.ListPackages)
	r.Get("/portfolio", handler.Portfolio.ListPortfolio)
	r.Get("/portfolio/categories", handler.Portfolio.Categories)
	r.Get("/testimonials", handler.Testimonial.ListActive)
	r.Get("/media/embed", handler.Media.Embed)

	// ==================== PUBLIC WRITES (rate limited) ====================
	r.Group(func(r chi.Router) {
		r.Use(limiter.Limit)

		// POST /api/bookings - booking form
		r.Post("/bookings", handler.Booking.CreateBooking)

		// POST /api/send-email - standalone notification dispatch
		r.Post("/send-email", handler.Notification.SendEmail)
	})
}
