package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AdamPostMontjoie/resumefy/internal/ingestion"
	"github.com/AdamPostMontjoie/resumefy/internal/pipeline"
	"github.com/AdamPostMontjoie/resumefy/internal/rendering"
	"github.com/AdamPostMontjoie/resumefy/internal/server/middleware"
	"github.com/AdamPostMontjoie/resumefy/internal/store"
	"github.com/AdamPostMontjoie/resumefy/internal/types"
)

// ProfileStore is the subset of the store the server needs.
type ProfileStore interface {
	CreateProfile(ctx context.Context, id, email string) error
	GetUser(ctx context.Context, id string) (*store.User, error)
	UpdateProfile(ctx context.Context, id string, document []byte) (*types.Profile, error)
}

// Ingestor fetches a job description from a posting URL.
type Ingestor func(ctx context.Context, url string) (string, error)

// Options wires the server's collaborators.
type Options struct {
	Port      int
	FilesDir  string
	BaseURL   string
	Store     ProfileStore
	Generator pipeline.Generator
	Renderer  rendering.Renderer
	Ingest    Ingestor // defaults to ingestion.FromURL
	JWTSecret string   // auth disabled when empty
}

// Server is the HTTP server for the resume-tailoring API.
type Server struct {
	httpServer *http.Server
	store      ProfileStore
	generator  pipeline.Generator
	renderer   rendering.Renderer
	ingest     Ingestor
	filesDir   string
	baseURL    string
	jwtService *JWTService
}

// New creates a server instance and its router.
func New(opts Options) (*Server, error) {
	if opts.Store == nil || opts.Generator == nil || opts.Renderer == nil {
		return nil, fmt.Errorf("store, generator, and renderer are required")
	}

	if err := os.MkdirAll(opts.FilesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create files directory: %w", err)
	}

	s := &Server{
		store:     opts.Store,
		generator: opts.Generator,
		renderer:  opts.Renderer,
		ingest:    opts.Ingest,
		filesDir:  opts.FilesDir,
		baseURL:   opts.BaseURL,
	}
	if s.ingest == nil {
		s.ingest = ingestion.FromURL
	}
	if opts.JWTSecret != "" {
		s.jwtService = NewJWTService(opts.JWTSecret)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /user/{id}", s.handleGetUser)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /files/{name}", s.handleFiles)
	mux.Handle("PUT /profile/{id}", s.authenticated(http.HandlerFunc(s.handleUpdateProfile)))
	mux.Handle("POST /api/generate", s.authenticated(http.HandlerFunc(s.handleGenerate)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", opts.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // generation requests are slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// authenticated wraps a handler with bearer-token verification when a JWT
// secret is configured; otherwise the handler is served as-is.
func (s *Server) authenticated(next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.Auth(s.jwtService)(next)
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"message": message})
}
