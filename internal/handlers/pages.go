package handlers

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"quizlens-backend/internal/models"
	"quizlens-backend/internal/services"
	"quizlens-backend/web"
)

type PageHandler struct {
	store     *services.VideoStore
	templates *template.Template
}

func NewPageHandler(store *services.VideoStore) (*PageHandler, error) {
	templates, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{store: store, templates: templates}, nil
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", nil)
}

func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	videos := h.store.List(r.Context())

	display := make([]models.DisplayVideo, 0, len(videos))
	for _, v := range videos {
		display = append(display, v.Display())
	}

	h.render(w, "form.html", map[string]any{"Videos": display})
}

func (h *PageHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	h.render(w, "analytics.html", nil)
}

// Static serves the embedded stylesheet and placeholder assets.
func (h *PageHandler) Static() http.Handler {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(static)))
}

func (h *PageHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("failed to render %s: %v", name, err)
	}
}
