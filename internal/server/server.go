package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/financecrm/ai-service/internal/config"
	"github.com/financecrm/ai-service/internal/handlers"
	"github.com/financecrm/ai-service/internal/middleware"
	"github.com/financecrm/ai-service/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wires the gin router to an http.Server bound to the configured address
type Server struct {
	router          *gin.Engine
	httpServer      *http.Server
	logger          *zap.Logger
	addr            string
	variant         models.Variant
	metadata        models.ServiceMetadata
	shutdownTimeout time.Duration
}

// New builds the router for the configured variant and attaches the service metadata
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	variant := cfg.ServiceVariant()
	metadata := cfg.Metadata()

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
	)
	router.NoRoute(handlers.NotFoundHandler)
	router.NoMethod(handlers.MethodNotAllowedHandler)

	if err := handlers.RegisterHealthRoutes(router, variant); err != nil {
		return nil, fmt.Errorf("failed to register health routes: %w", err)
	}

	// CORS only guards the docs; the health route answers every caller
	if cfg.DocsEnabled {
		docsGroup := router.Group("/")
		if corsHandler := middleware.CORS(cfg.CORSAllowedOrigins); corsHandler != nil {
			docsGroup.Use(corsHandler)
		}
		if err := registerDocsRoutes(docsGroup, variant, metadata); err != nil {
			return nil, fmt.Errorf("failed to register docs routes: %w", err)
		}
	}

	return &Server{
		router: router,
		httpServer: &http.Server{
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		logger:          logger,
		addr:            cfg.Addr(),
		variant:         variant,
		metadata:        metadata,
		shutdownTimeout: cfg.ShutdownTimeout,
	}, nil
}

// Handler returns the router, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the configured bind address
func (s *Server) Addr() string {
	return s.addr
}

// Metadata returns the metadata attached at construction
func (s *Server) Metadata() models.ServiceMetadata {
	return s.metadata
}

// Run binds the configured address and serves until ctx is cancelled.
// A bind failure is returned before any request is served.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.addr, err)
	}

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
// The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("service", s.metadata.Name),
		zap.String("version", s.metadata.Version),
		zap.String("variant", s.variant.String()),
		zap.String("health_path", s.variant.Path()),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server", zap.Duration("timeout", s.shutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}
