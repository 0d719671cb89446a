package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tezlab/tezcheck/internal/config"
	"github.com/tezlab/tezcheck/internal/pdf"
)

// base64 inflates uploads by ~4/3; the JSON envelope adds a little more.
const requestBodyOverhead = 2

// Server is the HTTP API transport for the thesis checker.
type Server struct {
	cfg        *config.Config
	pdfService *pdf.Service
	httpServer *http.Server
}

// checkThesisRequest is the upload envelope: the PDF travels base64-encoded
// inside JSON, matching what browser clients send.
type checkThesisRequest struct {
	FileName      string `json:"fileName"`
	ContentBase64 string `json:"contentBase64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(cfg *config.Config, pdfService *pdf.Service) (*Server, error) {
	if pdfService == nil {
		return nil, fmt.Errorf("pdfService cannot be nil")
	}

	s := &Server{
		cfg:        cfg,
		pdfService: pdfService,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if cfg.IsDebug() {
		r.Use(middleware.Logger)
	}
	r.Use(corsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/rules", s.handleRules)
	r.Post("/api/check-thesis", s.handleCheckThesis)
	// The original front end posts to the bare root in dev mode.
	r.Post("/", s.handleCheckThesis)
	r.Post("/check-thesis", s.handleCheckThesis)

	s.httpServer = &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Thesis check API listening on http://%s", s.cfg.Address())
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": s.cfg.Version})
}

// handleRules lists the embedded rule catalog so clients can render the
// checks before any upload happens.
func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.pdfService.Catalog())
}

func (s *Server) handleCheckThesis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxFileSize*requestBodyOverhead)

	var req checkThesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("Dosya boyutu sınırı aşıldı (en fazla %d bayt).", s.cfg.MaxFileSize))
			return
		}
		writeError(w, http.StatusBadRequest, "Geçersiz istek gövdesi.")
		return
	}

	if req.FileName == "" || req.ContentBase64 == "" {
		writeError(w, http.StatusBadRequest, "contentBase64 ve fileName zorunludur.")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.ContentBase64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "contentBase64 çözülemedi.")
		return
	}

	result, err := s.pdfService.CheckData(pdf.CheckDataRequest{
		FileName: req.FileName,
		Data:     data,
	})
	if err != nil {
		log.Printf("check-thesis failed for %q: %v", req.FileName, err)
		writeError(w, checkErrorStatus(err), "PDF dosyası işlenemedi: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result.Report)
}

// checkErrorStatus maps service errors onto HTTP statuses: size problems
// are the client exceeding the limit, everything else is an unreadable PDF.
func checkErrorStatus(err error) int {
	if strings.Contains(err.Error(), "too large") {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
