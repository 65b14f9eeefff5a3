package ui

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"heroscores/internal"
	"heroscores/internal/errors"
	"heroscores/ports"
	"heroscores/ui/middleware"

	"github.com/gin-gonic/gin"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// Options configures the web server
type Options struct {
	Reader       ports.ScoreReaderPort
	PublicDir    string // serves /scores.xlsx, hero logos and the background image
	ViewTTL      time.Duration
	MaxViews     int // live page views kept at once; <= 0 is unbounded
	FetchTimeout time.Duration
}

// Server serves the hero scores page
type Server struct {
	router    *gin.Engine
	templates *template.Template
	boards    *Boards
	publicDir string
	logger    *internal.Logger
}

// NewServer parses the embedded templates and wires routes
func NewServer(opts Options) (*Server, error) {
	if opts.Reader == nil {
		return nil, errors.ConfigInvalid("score reader is required")
	}

	templates, err := template.New("").Funcs(templateFuncs()).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}

	s := &Server{
		router:    gin.Default(),
		templates: templates,
		boards:    NewBoards(opts.Reader, opts.ViewTTL, opts.FetchTimeout, opts.MaxViews),
		publicDir: opts.PublicDir,
		logger:    internal.DefaultLogger.Named("Server"),
	}

	if err := s.setupMiddleware(); err != nil {
		return nil, err
	}
	s.setupRoutes()

	return s, nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)

	// every page load mounts a fresh board
	s.router.GET("/", s.handleIndex)

	views := s.router.Group("/", middleware.RequireBoard(s.boards))

	// HTMX fragment endpoints
	views.GET("/fragments/cards", s.handleCards)

	views.GET("/api/heroes", s.handleHeroes)
	views.POST("/api/heroes/sort", s.handleSort)
}

// Handler exposes the router for an http.Server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Boards exposes the per-session board registry
func (s *Server) Boards() *Boards {
	return s.boards
}

// Close tears down every live board
func (s *Server) Close() {
	s.boards.Close()
}
