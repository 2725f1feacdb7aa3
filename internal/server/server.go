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

	"github.com/osse101/BroadcasterPro_Go/internal/database"
	"github.com/osse101/BroadcasterPro_Go/internal/handler"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
)

// Config holds the HTTP server settings
type Config struct {
	Port           int
	Version        string
	TrustedProxies []string
}

// Server is the HTTP API
type Server struct {
	httpServer *http.Server
}

// NewServer wires the middleware chain and routes
func NewServer(cfg Config, dbPool database.Pool, sessions *session.Store, h handler.Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, sessions, h),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router. Middleware runs in the order registered.
func NewRouter(cfg Config, dbPool database.Pool, sessions *session.Store, h handler.Handlers) chi.Router {
	r := chi.NewRouter()
	detector := NewSuspiciousActivityDetector()
	requireAdmin := handler.RequireAdmin(h.Admins)

	r.Use(SecurityHeadersMiddleware())
	r.Use(SessionMiddleware(sessions, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/", handleIndex)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Get("/login", h.Auth.HandleLogin)
		r.Get("/callback", h.Auth.HandleCallback)
		r.Post("/logout", h.Auth.HandleLogout)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/me", h.Auth.HandleMe)
		if h.Events != nil {
			r.Get("/events", h.Events)
		}
		r.Post("/action", handler.NewActionHandler(h).HandleAction)

		r.Get("/wallet", h.Wallet.HandleGetWallet)
		r.With(requireAdmin).Post("/wallet/grant", h.Wallet.HandleGrant)

		r.Get("/bot", h.Guild.HandleBotInfo)
		r.Route("/guilds", func(r chi.Router) {
			r.Get("/", h.Guild.HandleListGuilds)
			r.Get("/{guild_id}", h.Guild.HandleVerifyGuild)
			r.Get("/{guild_id}/members", h.Guild.HandleListMembers)
		})

		r.Route("/broadcasts", func(r chi.Router) {
			r.Get("/", h.Broadcast.HandleListUserBroadcasts)
			r.Post("/", h.Broadcast.HandleSend)
			r.Get("/{id}", h.Broadcast.HandleGetStatus)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Post("/", h.Payment.HandleCreateRequest)
			r.Get("/{id}", h.Payment.HandleGetStatus)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(requireAdmin)
			r.Post("/credits", h.Admin.HandleAddCredits)
			r.Get("/transactions", h.Admin.HandleRecentTransactions)
			r.Get("/users/{discord_id}", h.Admin.HandleGetUserInfo)
			r.Get("/users/{discord_id}/reconcile", h.Admin.HandleReconcile)
			r.Get("/admins", h.Admin.HandleListAdmins)
			r.Post("/admins", h.Admin.HandleGrantAdmin)
			r.Delete("/admins/{discord_id}", h.Admin.HandleRevokeAdmin)
			r.Get("/broadcasts/active", h.Broadcast.HandleGetActive)
			r.Post("/payments", h.Payment.HandleProcessManual)
			r.Post("/payments/scan", h.Payment.HandleScan)
		})
	})

	return r
}

func handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"service":"broadcaster-pro","login":"/auth/login","docs":"/swagger/index.html"}` + "\n"))
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
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

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

var quietPrefixes = []string{"/healthz", "/readyz", "/metrics"}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range quietPrefixes {
			if strings.HasPrefix(r.URL.Path, p) {
				next.ServeHTTP(w, r)
				return
			}
		}

		start := time.Now()
		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// redactHeaders copies h with credentials replaced
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start serves until Stop is called. It returns http.ErrServerClosed after a clean shutdown.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// OnShutdown registers f to run when Stop begins, before connections drain.
// Long-lived streams use it to end their responses.
func (s *Server) OnShutdown(f func()) {
	s.httpServer.RegisterOnShutdown(f)
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
