// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-studio/internal/analysis"
	"github.com/jonathan/resume-studio/internal/billing"
	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/server/middleware"
	"github.com/jonathan/resume-studio/internal/server/ratelimit"
)

// PDFExporter abstracts the headless-browser export step so handler tests
// do not need Chrome.
type PDFExporter interface {
	ExportPDF(ctx context.Context, html string) ([]byte, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer    *http.Server
	db            DBClient
	closeDB       func()
	rateLimiter   *ratelimit.Limiter
	jwtService    *JWTService
	userService   *UserService
	authHandler   *AuthHandler
	sessions      *sessionManager
	analyzer      *analysis.Analyzer
	llmClient     llm.Client
	exporter      PDFExporter
	billing       *billing.Service
	billingSecret string
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
	ChromePath  string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	// Connect to database
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	authConfig, err := config.NewAuthConfig()
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create auth config: %w", err)
	}

	// The narrative analyzer is optional; without an API key the analyze
	// endpoint still serves the rule-based review.
	var llmClient llm.Client
	if cfg.APIKey != "" {
		llmClient, err = llm.NewGeminiClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
	}

	exportOpts := []export.Option{}
	if cfg.ChromePath != "" {
		exportOpts = append(exportOpts, export.WithChromePath(cfg.ChromePath))
	}

	s := &Server{
		db:            database,
		closeDB:       database.Close,
		rateLimiter:   ratelimit.NewLimiter(ratelimit.LoadConfig()),
		sessions:      newSessionManager(database),
		analyzer:      analysis.New(llmClient),
		llmClient:     llmClient,
		exporter:      export.New(exportOpts...),
		billing:       billing.NewService(billing.NewSandboxGateway(), database),
		billingSecret: os.Getenv("BILLING_WEBHOOK_SECRET"),
	}

	s.userService = NewUserService(database, authConfig)
	s.jwtService = NewJWTService(authConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// handler builds the route table wrapped in the middleware chain.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	// Template catalog is public; everything touching session state is not.
	mux.HandleFunc("GET /templates", s.handleListTemplates)

	auth := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	mux.Handle("GET /resume", auth(http.HandlerFunc(s.handleGetResume)))
	mux.Handle("PUT /resume", auth(http.HandlerFunc(s.handlePutResume)))
	mux.Handle("PATCH /resume/personal", auth(http.HandlerFunc(s.handlePatchPersonalInfo)))
	mux.Handle("PATCH /resume/settings", auth(http.HandlerFunc(s.handlePatchSettings)))
	mux.Handle("POST /resume/sections", auth(http.HandlerFunc(s.handleAddSection)))
	mux.Handle("PATCH /resume/sections/{sectionID}", auth(http.HandlerFunc(s.handleRenameSection)))
	mux.Handle("DELETE /resume/sections/{sectionID}", auth(http.HandlerFunc(s.handleDeleteSection)))
	mux.Handle("POST /resume/sections/{sectionID}/move", auth(http.HandlerFunc(s.handleMoveSection)))
	mux.Handle("POST /resume/sections/{sectionID}/bullets", auth(http.HandlerFunc(s.handleAddBullet)))
	mux.Handle("PATCH /resume/sections/{sectionID}/bullets/{bulletID}", auth(http.HandlerFunc(s.handleUpdateBullet)))
	mux.Handle("DELETE /resume/sections/{sectionID}/bullets/{bulletID}", auth(http.HandlerFunc(s.handleDeleteBullet)))
	mux.Handle("GET /resume/scores", auth(http.HandlerFunc(s.handleGetScores)))
	mux.Handle("POST /resume/save", auth(http.HandlerFunc(s.handleSaveResume)))
	mux.Handle("POST /resume/analyze", auth(http.HandlerFunc(s.handleAnalyze)))
	mux.Handle("GET /resume/render", auth(http.HandlerFunc(s.handleRender)))
	mux.Handle("GET /resume/outline", auth(http.HandlerFunc(s.handleOutline)))
	mux.Handle("POST /resume/export", auth(http.HandlerFunc(s.handleExport)))
	mux.Handle("POST /billing/checkout", auth(http.HandlerFunc(s.handleCheckout)))

	// The provider authenticates with an HMAC signature, not a JWT.
	mux.HandleFunc("POST /billing/webhook", s.handleBillingWebhook)

	return s.withRateLimit(s.withLogging(s.withCORS(mux)))
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if s.llmClient != nil {
		if err := s.llmClient.Close(); err != nil {
			log.Printf("Error closing LLM client: %v", err)
		}
	}

	if s.closeDB != nil {
		s.closeDB()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
