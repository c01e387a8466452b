package adaptor

import (
	"net/http"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// ListPackages handles GET /api/packages (public) and GET /api/admin/packages (admin)
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// CreatePackage handles POST /api/admin/packages (admin)
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created", pkg)
}

// UpdatePackage handles PATCH /api/admin/packages (admin), id in body
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "Package updated", pkg)
}

// DeletePackage handles DELETE /api/admin/packages?id= (admin)
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), r.URL.Query().Get("id")); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}

// ReorderPackages handles PATCH /api/admin/packages/reorder (admin)
func (h *PackageHandler) ReorderPackages(w http.ResponseWriter, r *http.Request) {
	var req request.ReorderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ReorderPackages(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reorder packages")
		return
	}

	utils.ResponseSuccess(w, "Packages reordered", nil)
}

// MovePackage handles PATCH /api/admin/packages/move (admin)
func (h *PackageHandler) MovePackage(w http.ResponseWriter, r *http.Request) {
	var req request.MoveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	packages, err := h.service.MovePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "move package")
		return
	}

	utils.ResponseSuccess(w, "Packages reordered", packages)
}
