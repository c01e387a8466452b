package adaptor

import (
	"net/http"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type PortfolioHandler struct {
	service usecase.PortfolioService
	log     *zap.Logger
}

func NewPortfolioHandler(service usecase.PortfolioService, log *zap.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		service: service,
		log:     log.With(zap.String("handler", "portfolio")),
	}
}

// ListPortfolio handles GET /api/portfolio?category=&group= (public) and GET /api/admin/portfolio (admin)
func (h *PortfolioHandler) ListPortfolio(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := usecase.PortfolioFilter{
		Category: query.Get("category"),
		Group:    query.Get("group"),
	}

	items, err := h.service.ListPortfolio(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list portfolio")
		return
	}

	utils.ResponseSuccess(w, "success", items)
}

// Categories handles GET /api/portfolio/categories (public)
func (h *PortfolioHandler) Categories(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Categories())
}

// CreatePortfolio handles POST /api/admin/portfolio (admin)
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	item, err := h.service.CreatePortfolio(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create portfolio item")
		return
	}

	utils.ResponseCreated(w, "Portfolio item created", item)
}

// UpdatePortfolio handles PATCH /api/admin/portfolio (admin), id in body
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.service.UpdatePortfolio(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item updated", item)
}

// DeletePortfolio handles DELETE /api/admin/portfolio?id= (admin)
func (h *PortfolioHandler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePortfolio(r.Context(), r.URL.Query().Get("id")); err != nil {
		handleServiceError(w, h.log, err, "delete portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio item deleted", nil)
}

// ReorderPortfolio handles PATCH /api/admin/portfolio/reorder (admin)
func (h *PortfolioHandler) ReorderPortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ReorderPortfolio(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reorder portfolio")
		return
	}

	utils.ResponseSuccess(w, "Portfolio reordered", nil)
}

// MovePortfolio handles PATCH /api/admin/portfolio/move (admin)
func (h *PortfolioHandler) MovePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	items, err := h.service.MovePortfolio(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "move portfolio item")
		return
	}

	utils.ResponseSuccess(w, "Portfolio reordered", items)
}
