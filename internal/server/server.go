package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/wrenbeck/WanderBot_Go/internal/adventure"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/database"
	"github.com/wrenbeck/WanderBot_Go/internal/economy"
	"github.com/wrenbeck/WanderBot_Go/internal/handler"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/metrics"
	"github.com/wrenbeck/WanderBot_Go/internal/progression"
	"github.com/wrenbeck/WanderBot_Go/internal/quest"
	"github.com/wrenbeck/WanderBot_Go/internal/stats"
	"github.com/wrenbeck/WanderBot_Go/internal/user"
)

// Services bundles everything the HTTP surface exposes.
type Services struct {
	Progression progression.Service
	Adventure   adventure.Service
	Economy     economy.Service
	Quest       quest.Service
	Stats       stats.Service
	User        user.Service
	Settings    *config.SettingsStore
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, services Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/message/handle", handler.HandleMessageHandler(services.Progression))

		progressionHandlers := handler.NewProgressionHandlers(services.Progression)
		r.Route("/progression", func(r chi.Router) {
			r.Get("/profile", progressionHandlers.HandleProfile())
			r.Get("/table", progressionHandlers.HandleXPTable())
			r.Get("/leaderboard", progressionHandlers.HandleLeaderboard())
		})

		adventureHandlers := handler.NewAdventureHandlers(services.Adventure, services.User)
		r.Route("/adventure", func(r chi.Router) {
			r.Get("/state", adventureHandlers.HandleState())
			r.Post("/action", adventureHandlers.HandleAction())
			r.Get("/leaderboard", adventureHandlers.HandleLeaderboard())
		})

		economyHandlers := handler.NewEconomyHandlers(services.Economy)
		r.Route("/economy", func(r chi.Router) {
			r.Get("/shop", economyHandlers.HandleShop())
			r.Get("/inventory", economyHandlers.HandleInventory())
			r.Post("/buy", economyHandlers.HandleBuy())
			r.Post("/use", economyHandlers.HandleUse())
		})

		questHandlers := handler.NewQuestHandlers(services.Quest)
		r.Route("/quest", func(r chi.Router) {
			r.Get("/today", questHandlers.HandleToday())
			r.Post("/claim", questHandlers.HandleClaim())
		})

		r.Get("/stats", handler.HandleStats(services.Stats))

		adminHandlers := handler.NewAdminHandlers(services.Settings)
		r.Route("/admin", func(r chi.Router) {
			r.Get("/settings", adminHandlers.HandleGetSettings())
			r.Post("/settings", adminHandlers.HandleSetSetting())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
	}
}

// Handler exposes the root handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
