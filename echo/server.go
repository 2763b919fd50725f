// Package echo implements the HTTP API for worksheet generation.
package echo

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jbetz/lessonforge"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ContentExtractor fetches a URL and returns its cleaned content.
type ContentExtractor interface {
	Extract(ctx context.Context, url string) (*lessonforge.Extraction, error)
}

// Server serves the worksheet API over HTTP.
type Server struct {
	echo *echo.Echo

	Addr string

	// Extractor handles fetch-content requests. Optional; without it the
	// fetch-content endpoint reports unavailable.
	Extractor ContentExtractor

	// Scrapes backs the usage endpoint. Optional.
	Scrapes      lessonforge.ScrapeService
	MonthlyLimit int

	Logger *slog.Logger
}

// NewServer creates a Server with routes registered. Fields on the returned
// Server should be set before calling Open.
func NewServer() *Server {
	s := &Server{
		echo:   echo.New(),
		Logger: slog.Default(),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true

	s.echo.Use(middleware.Recover())
	s.echo.Use(s.requestLogger)

	api := s.echo.Group("/api/worksheets")
	api.POST("/fetch-content", s.handleFetchContent)
	api.POST("/generate", s.handleGenerate)
	api.GET("/types", s.handleTypes)
	api.POST("/answer-key", s.handleAnswerKey)
	api.GET("/usage", s.handleUsage)

	return s
}

// Open starts the HTTP server on Addr. It blocks until the server stops.
func (s *Server) Open() error {
	return s.echo.Start(s.Addr)
}

// Close gracefully shuts down the server.
func (s *Server) Close(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// ServeHTTP dispatches to the underlying router, which makes the Server
// usable directly in httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// requestLogger logs each request with method, path, status, and duration.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		begin := time.Now()
		err := next(c)
		s.Logger.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(begin),
			"err", err,
		)
		return err
	}
}

// errorResponse writes an error as a JSON envelope, translating application
// error codes into HTTP status codes.
func (s *Server) errorResponse(c echo.Context, err error) error {
	code := lessonforge.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case lessonforge.EINVALID:
		status = http.StatusBadRequest
	case lessonforge.ENOTFOUND:
		status = http.StatusNotFound
	case lessonforge.EUNAVAILABLE:
		status = http.StatusServiceUnavailable
	}

	if code == lessonforge.EINTERNAL {
		s.Logger.Error("internal error", "err", err)
	}

	return c.JSON(status, map[string]any{
		"success": false,
		"message": lessonforge.ErrorMessage(err),
	})
}
