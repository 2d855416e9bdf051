package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/blendandbeam/storefront/internal/layout"
	"github.com/blendandbeam/storefront/internal/nav"
)

// render writes node only once it has rendered completely, so a failing
// component never leaves a half-written page behind.
func (s *Server) render(w http.ResponseWriter, r *http.Request, node g.Node) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		slog.Error("Failed to render page", "path", r.URL.Path, "error", err)
		s.renderError(w, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := layout.ErrorPage(status, "Something went wrong").Render(w); err != nil {
		slog.Error("Failed to render error page", "error", err)
	}
}

func (s *Server) HandlePage(route nav.Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, layout.Page(layout.Props{
			Title:       pageTitle(route),
			Description: route.Summary,
			Body:        pageBody(route),
			Footer:      s.footer.Render(),
		}))
	}
}

// HandleFooter serves the footer on its own for hosts that embed it.
func (s *Server) HandleFooter(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, s.footer.Render())
}

func (s *Server) serveFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, err := s.assets.Open(path)
		if err != nil {
			http.Error(w, "File not found", http.StatusNotFound)
			return
		}
		defer func() { _ = file.Close() }()
		_, _ = io.Copy(w, file)
	}
}

func (s *Server) cacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/static/") {
			w.Header().Set("Cache-Control", "public, max-age=86400")
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		next.ServeHTTP(w, r)
	})
}
