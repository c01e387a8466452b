package response

type EmbedResponse struct {
	URL      string `json:"url"`
	EmbedURL string `json:"embed_url"`
}
