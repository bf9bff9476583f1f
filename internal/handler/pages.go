package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/campusmeet/sportsapp/internal/service"
)

type pagesHandler struct {
	contentService *service.ContentService
}

func NewPagesHandler(contentService *service.ContentService) *pagesHandler {
	return &pagesHandler{
		contentService: contentService,
	}
}

// ShowPage renders a markdown info page (about, community-guidelines, ...).
func (h *pagesHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("page")

	page, err := h.contentService.Page(slug)
	if err != nil {
		slog.Debug("content page not found", "slug", slug, "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>%s</title><link rel="stylesheet" href="/styles.css"></head>
<body>
<main class="page">
<h1>%s</h1>
%s
<p class="updated">Last updated %s</p>
</main>
</body>
</html>`, page.Title, page.Title, page.Content, page.LastUpdated)
}
