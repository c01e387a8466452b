package adaptor

import (
	"net/http"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type TestimonialHandler struct {
	service usecase.TestimonialService
	log     *zap.Logger
}

func NewTestimonialHandler(service usecase.TestimonialService, log *zap.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
		log:     log.With(zap.String("handler", "testimonial")),
	}
}

// ListActive handles GET /api/testimonials (public, active only)
func (h *TestimonialHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, true)
}

// ListAll handles GET /api/admin/testimonials (admin)
func (h *TestimonialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, false)
}

func (h *TestimonialHandler) list(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	testimonials, err := h.service.ListTestimonials(r.Context(), activeOnly)
	if err != nil {
		handleServiceError(w, h.log, err, "list testimonials")
		return
	}

	utils.ResponseSuccess(w, "success", testimonials)
}

// CreateTestimonial handles POST /api/admin/testimonials (admin)
func (h *TestimonialHandler) CreateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	t, err := h.service.CreateTestimonial(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create testimonial")
		return
	}

	utils.ResponseCreated(w, "Testimonial created", t)
}

// UpdateTestimonial handles PATCH /api/admin/testimonials (admin), id in body
func (h *TestimonialHandler) UpdateTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateTestimonialRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	t, err := h.service.UpdateTestimonial(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonial updated", t)
}

// DeleteTestimonial handles DELETE /api/admin/testimonials?id= (admin)
func (h *TestimonialHandler) DeleteTestimonial(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTestimonial(r.Context(), r.URL.Query().Get("id")); err != nil {
		handleServiceError(w, h.log, err, "delete testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonial deleted", nil)
}

// ReorderTestimonials handles PATCH /api/admin/testimonials/reorder (admin)
func (h *TestimonialHandler) ReorderTestimonials(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ReorderTestimonials(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reorder testimonials")
		return
	}

	utils.ResponseSuccess(w, "Testimonials reordered", nil)
}

// MoveTestimonial handles PATCH /api/admin/testimonials/move (admin)
func (h *TestimonialHandler) MoveTestimonial(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	testimonials, err := h.service.MoveTestimonial(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "move testimonial")
		return
	}

	utils.ResponseSuccess(w, "Testimonials reordered", testimonials)
}
