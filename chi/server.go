// Package chi exposes webgrab requests as a JSON and zip REST API on a chi
// router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/webgrab"
	"github.com/fwojciec/webgrab/grab"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Version is reported by the index route.
const Version = "1.0.0"

// ShutdownTimeout bounds graceful shutdown once the serve context ends.
const ShutdownTimeout = 5 * time.Second

// Server serves the webgrab REST API.
type Server struct {
	grabber *grab.Grabber
	logger  *slog.Logger
	router  chi.Router
}

// NewServer creates a Server backed by grabber.
func NewServer(grabber *grab.Grabber, logger *slog.Logger) *Server {
	s := &Server{grabber: grabber, logger: logger}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "Content-Length"},
	}))

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/scrape", s.handleScrape)
		r.Get("/contact", s.handleContact)
		r.Get("/social", s.handleSocial)
		r.Get("/images", s.handleImages)
		r.Get("/icons", s.handleIcons)
	})
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"message": "webgrab API",
		"version": Version,
		"endpoints": map[string]string{
			"scrape":  "/api/scrape?url=https://example.com",
			"contact": "/api/contact?url=https://example.com",
			"social":  "/api/social?url=https://example.com",
			"images":  "/api/images?url=https://example.com",
			"icons":   "/api/icons?url=https://example.com",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// scrapeResponse is the body of /api/scrape.
type scrapeResponse struct {
	Success bool `json:"success"`
	*webgrab.ExtractionResult
	ImageCount int `json:"image_count"`
	LogoCount  int `json:"logo_count"`
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	result, err := s.grabber.Scrape(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, scrapeResponse{
		Success:          true,
		ExtractionResult: result,
		ImageCount:       result.ImageCount(),
		LogoCount:        result.LogoCount(),
	})
}

// contactResponse is the body of /api/contact.
type contactResponse struct {
	Success bool   `json:"success"`
	URL     string `json:"url"`
	webgrab.ContactInfo
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	result, err := s.grabber.Scrape(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, contactResponse{
		Success:     true,
		URL:         result.URL,
		ContactInfo: result.Contact,
	})
}

// socialResponse is the body of /api/social.
type socialResponse struct {
	Success bool              `json:"success"`
	URL     string            `json:"url"`
	Social  map[string]string `json:"social"`
	Count   int               `json:"count"`
}

func (s *Server) handleSocial(w http.ResponseWriter, r *http.Request) {
	result, err := s.grabber.Scrape(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	found := result.Social.Found()
	s.writeJSON(w, http.StatusOK, socialResponse{
		Success: true,
		URL:     result.URL,
		Social:  found,
		Count:   len(found),
	})
}

// handleImages serves all images, or only those of the kinds named by
// repeated ?type= parameters.
func (s *Server) handleImages(w http.ResponseWriter, r *http.Request) {
	kinds, err := grab.ParseKinds(r.URL.Query()["type"])
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	dl, err := s.grabber.Images(r.Context(), r.URL.Query().Get("url"), kinds...)
	s.writeDownload(w, r, dl, err)
}

func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request) {
	dl, err := s.grabber.Icons(r.Context(), r.URL.Query().Get("url"))
	s.writeDownload(w, r, dl, err)
}

func (s *Server) writeDownload(w http.ResponseWriter, r *http.Request, dl *grab.Download, err error) {
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename="+dl.Filename)
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Archive.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(dl.Archive.Data)
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// errorStatus maps application error codes to HTTP statuses.
func errorStatus(code string) (int, string) {
	switch code {
	case webgrab.EINVALID:
		return http.StatusBadRequest, "Invalid request"
	case webgrab.EFETCH:
		return http.StatusBadRequest, "Failed to fetch URL"
	case webgrab.ENOTFOUND:
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Scraping error"
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := webgrab.ErrorCode(err)
	status, title := errorStatus(code)
	if code == webgrab.EINTERNAL {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, status, errorResponse{
		Success: false,
		Error:   title,
		Detail:  webgrab.ErrorMessage(err),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
