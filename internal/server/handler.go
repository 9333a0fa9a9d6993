// Package server exposes quiz conversion over HTTP.
package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"quizconv/internal/quiz"
)

// DefaultMaxBodyBytes caps request bodies when Config leaves it unset.
const DefaultMaxBodyBytes int64 = 1 << 20

// Config captures the settings for the conversion server.
type Config struct {
	Addr           string
	AllowedOrigins []string
	MaxBodyBytes   int64
	// LogOutput receives one access log line per request. Nil discards.
	LogOutput io.Writer
	NoColor   bool
}

// NewHandler builds the router with middleware and conversion routes.
func NewHandler(cfg Config) http.Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	logOutput := cfg.LogOutput
	if logOutput == nil {
		logOutput = io.Discard
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestIDHeader)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  log.New(logOutput, "", log.LstdFlags),
		NoColor: cfg.NoColor,
	}))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type"},
			ExposedHeaders:   []string{"X-Question-Count", "X-Request-Id"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	h := &handler{maxBodyBytes: maxBody}
	r.Get("/healthz", h.handleHealth)
	r.Post("/api/v1/convert", h.handleConvert)
	return r
}

type handler struct {
	maxBodyBytes int64
}

func (h *handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	format, err := quiz.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unsupported_format")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large")
			return
		}
		writeError(w, http.StatusBadRequest, "read_failed")
		return
	}

	records, err := quiz.ParseReader(bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, quiz.ErrInvalidEncoding) {
			writeError(w, http.StatusUnprocessableEntity, "invalid_encoding")
			return
		}
		writeError(w, http.StatusBadRequest, "read_failed")
		return
	}
	payload, err := quiz.Encode(records, format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode_failed")
		return
	}
	w.Header().Set("X-Question-Count", strconv.Itoa(len(records)))
	writeBytes(w, http.StatusOK, contentType(format), payload)
}

// requestIDHeader echoes the chi request id so clients can correlate logs.
func requestIDHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := middleware.GetReqID(r.Context()); id != "" {
			w.Header().Set("X-Request-Id", id)
		}
		next.ServeHTTP(w, r)
	})
}

func contentType(format quiz.Format) string {
	if format == quiz.FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}
