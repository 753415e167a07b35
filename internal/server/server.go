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

	"github.com/osse101/GroupIronmen_Go/internal/database"
	"github.com/osse101/GroupIronmen_Go/internal/group"
	"github.com/osse101/GroupIronmen_Go/internal/handler"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
	"github.com/osse101/GroupIronmen_Go/internal/metrics"
)

const readHeaderTimeout = 5 * time.Second

// Options holds the transport settings of the server
type Options struct {
	Port            int
	TrustedProxies  []string
	MaxRequestBytes int64
}

type Server struct {
	httpServer   *http.Server
	dbPool       database.Pool
	groupService group.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, dbPool database.Pool, authn GroupAuthenticator, groupService group.Service, collectionLogInfo []byte) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	groupHandlers := handler.NewGroupHandlers(groupService)
	r.Route("/api", func(r chi.Router) {
		r.Get("/collection-log-info", handler.HandleCollectionLogInfo(collectionLogInfo))

		r.Route("/group/{"+GroupNameParam+"}", func(r chi.Router) {
			r.Use(GroupAuthMiddleware(authn, opts.TrustedProxies, detector))

			// Member lifecycle
			r.Post("/add-group-member", groupHandlers.HandleAddMember())
			r.Delete("/delete-group-member", groupHandlers.HandleDeleteMember())
			r.Put("/rename-group-member", groupHandlers.HandleRenameMember())
			r.Post("/update-group-member", groupHandlers.HandleUpdateMember())

			// Queries
			r.Get("/get-group-data", groupHandlers.HandleGetGroupData())
			r.Get("/get-skill-data", groupHandlers.HandleGetSkillData())
			r.Get("/collection-log", groupHandlers.HandleGetCollectionLog())
			r.Get("/am-i-logged-in", groupHandlers.HandleAmILoggedIn())
			r.Get("/am-i-in-group", groupHandlers.HandleAmIInGroup())

			// Notifications
			r.Post("/request-item", groupHandlers.HandleRequestItem())
			r.Get("/webhook-settings", groupHandlers.HandleGetWebhookSettings())
			r.Put("/webhook-settings", groupHandlers.HandleUpdateWebhookSettings())
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		dbPool:       dbPool,
		groupService: groupService,
	}
}

// Handler returns the routed handler
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

func isQuietPath(path string) bool {
	for _, prefix := range QuietPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Group tokens travel in Authorization
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
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
