package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bga-backend/config"
	"bga-backend/internal/handler"
	"bga-backend/internal/middleware"
	"bga-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	httpServer *http.Server
	engine     *gin.Engine
	config     *config.Config
	logger     *logger.Logger
}

type Handlers struct {
	Auth    *handler.AuthHandler
	Contact *handler.ContactHandler
	Health  *handler.HealthHandler
}

// Deps are the non-handler collaborators the routes need. Limiter may be nil,
// which leaves the public write routes unthrottled.
type Deps struct {
	Verifier middleware.TokenVerifier
	Limiter  middleware.Limiter
}

// New builds the engine. Only peers in cfg.TrustedProxies may set the client
// IP through X-Forwarded-For; with none configured the TCP peer is used.
func New(cfg *config.Config, l *logger.Logger) (*Server, error) {
	switch cfg.AppMode {
	case config.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case config.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%s", cfg.AppPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		engine: engine,
		config: cfg,
		logger: l,
	}, nil
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) SetupRoutes(handlers *Handlers, deps Deps) {
	s.engine.Use(middleware.RequestIDMiddleware())
	s.engine.Use(middleware.LoggingMiddleware(s.logger))
	s.engine.Use(middleware.RecoveryMiddleware(s.logger))
	s.engine.Use(middleware.CORSMiddleware(s.config.AllowedOrigins))

	s.engine.GET("/", handlers.Health.Root)
	s.engine.GET("/health", handlers.Health.Health)

	api := s.engine.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", s.limit(deps.Limiter, "auth")(handlers.Auth.Register)...)
		auth.POST("/login", s.limit(deps.Limiter, "auth")(handlers.Auth.Login)...)
	}

	api.POST("/contact", s.limit(deps.Limiter, "contact")(handlers.Contact.Submit)...)
	api.GET("/messages", middleware.AuthMiddleware(deps.Verifier), handlers.Contact.List)
}

// limit prepends the rate limit stage when a limiter is configured.
func (s *Server) limit(limiter middleware.Limiter, scope string) func(gin.HandlerFunc) []gin.HandlerFunc {
	return func(h gin.HandlerFunc) []gin.HandlerFunc {
		if limiter == nil {
			return []gin.HandlerFunc{h}
		}
		return []gin.HandlerFunc{middleware.RateLimitMiddleware(limiter, scope, s.logger), h}
	}
}

// Start serves until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting the server on port %s...", s.config.AppPort)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		s.logger.Errorf("Error in starting the server: %s", err)
		return err
	case <-quit:
	}

	s.logger.Infof("Quitting signal received.. Shutting down within 5 seconds")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Error in the graceful shutdown of the server: %s", err)
		return err
	}

	s.logger.Infof("Server stopped gracefully")
	return nil
}
