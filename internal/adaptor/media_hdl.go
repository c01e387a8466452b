package adaptor

import (
	"net/http"
	"strings"

	"studio-site/internal/dto/response"
	"studio-site/pkg/media"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type MediaHandler struct {
	log *zap.Logger
}

func NewMediaHandler(log *zap.Logger) *MediaHandler {
	return &MediaHandler{log: log.With(zap.String("handler", "media"))}
}

// Embed handles GET /api/media/embed?url= (public)
func (h *MediaHandler) Embed(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if strings.TrimSpace(raw) == "" {
		utils.ResponseBadRequest(w, "url query parameter is required", nil)
		return
	}

	utils.ResponseSuccess(w, "success", response.EmbedResponse{
		URL:      media.Absolute(raw),
		EmbedURL: media.EmbedURL(raw),
	})
}
