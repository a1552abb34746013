// Package page renders the browser front end.
package page

import (
	"bytes"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

//go:embed index.html.tmpl
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

type Handler struct {
	appName string
	now     func() time.Time
}

func NewHandler(appName string) *Handler {
	return &Handler{appName: appName, now: time.Now}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.index)
}

type indexData struct {
	AppName string
	Today   string
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer

	err := indexTmpl.Execute(&buf, indexData{
		AppName: h.appName,
		Today:   h.now().Format(time.DateOnly),
	})
	if err != nil {
		slog.Error("failed to render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write page", "error", err)
	}
}
