package wire

import (
	"studio-site/internal/adaptor"
	"studio-site/internal/data/repository"
	"studio-site/pkg/middleware"
	"studio-site/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/admin", func(r chi.Router) {
		// POST /api/admin/login - exchange the admin credential for a session token
		r.With(limiter.Limit).Post("/login", handler.Auth.Login)

		// ==================== PROTECTED ROUTES (admin gate) ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(repo.Session, config.Admin.Password, log))

			r.Post("/logout", handler.Auth.Logout)
			r.Get("/session", handler.Auth.Session)

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", handler.Booking.ListBookings)
				r.Get("/export", handler.Booking.ExportBookings)
				r.Patch("/{id}", handler.Booking.UpdateStatus)
			})

			r.Route("/packages", func(r chi.Router) {
				r.Get("/", handler.Package.ListPackages)
				r.Post("/", handler.Package.CreatePackage)
				r.Patch("/", handler.Package.UpdatePackage)
				r.Delete("/", handler.Package.DeletePackage)
				r.Patch("/reorder", handler.Package.ReorderPackages)
				r.Patch("/move", handler.Package.MovePackage)
			})

			r.Route("/portfolio", func(r chi.Router) {
				r.Get("/", handler.Portfolio.ListPortfolio)
				r.Post("/", handler.Portfolio.CreatePortfolio)
				r.Patch("/", handler.Portfolio.UpdatePortfolio)
				r.Delete("/", handler.Portfolio.DeletePortfolio)
				r.Patch("/reorder", handler.Portfolio.ReorderPortfolio)
				r.Patch("/move", handler.Portfolio.MovePortfolio)
			})

			r.Route("/testimonials", func(r chi.Router) {
				r.Get("/", handler.Testimonial.ListAll)
				r.Post("/", handler.Testimonial.CreateTestimonial)
				r.Patch("/", handler.Testimonial.UpdateTestimonial)
				r.Delete("/", handler.Testimonial.DeleteTestimonial)
				r.Patch("/reorder", handler.Testimonial.ReorderTestimonials)
				r.Patch("/move", handler.Testimonial.MoveTestimonial)
			})
		})
	})
}
