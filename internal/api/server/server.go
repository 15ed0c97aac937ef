package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/philippseith/signalr"
	"go.uber.org/zap"

	"github.com/marcosboni7/backsleeping/internal/api/middleware"
	"github.com/marcosboni7/backsleeping/internal/api/rest"
	"github.com/marcosboni7/backsleeping/internal/api/shared/executor"
	"github.com/marcosboni7/backsleeping/internal/chat"
	"github.com/marcosboni7/backsleeping/internal/logger"
	"github.com/marcosboni7/backsleeping/internal/media"
	"github.com/marcosboni7/backsleeping/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	MaxImageSize int64
	MaxVideoSize int64
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	uploader   media.Uploader
	chatHub    *chat.ChatHub
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, store store.Store, uploader media.Uploader, chatHub *chat.ChatHub) *Server {
	return &Server{
		config:   cfg,
		store:    store,
		uploader: uploader,
		chatHub:  chatHub,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create shared executor
	exec := executor.NewExecutor(s.store, s.uploader, executor.Config{
		JWTSecret:  s.config.JWTSecret,
		TokenTTL:   s.config.TokenTTL,
		BcryptCost: s.config.BcryptCost,
	})

	// Create REST handler
	restHandler := rest.NewHandler(s.config.Debug, exec, s.config.MaxImageSize, s.config.MaxVideoSize)

	// Setup REST routes
	authCfg := middleware.AuthConfig{JWTSecret: s.config.JWTSecret}
	rest.SetupRoutes(router, restHandler, authCfg)

	// Mount the chat hub. The hub is registered as a singleton so every
	// connection shares the presence registry and store handles.
	if s.chatHub != nil {
		chatServer, err := signalr.NewServer(ctx,
			signalr.UseHub(s.chatHub),
			signalr.KeepAliveInterval(15*time.Second),
			signalr.Logger(newSignalRLogger(), s.config.Debug),
		)
		if err != nil {
			return fmt.Errorf("failed to create chat server: %w", err)
		}

		mux := http.NewServeMux()
		chatServer.MapHTTP(signalr.WithHTTPServeMux(mux), "/chat")
		router.Any("/chat", gin.WrapH(mux))
		router.Any("/chat/*path", gin.WrapH(mux))
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}

// signalRLogger adapts zap to the key-value logger the signalr package expects
type signalRLogger struct {
	sugar *zap.SugaredLogger
}

func newSignalRLogger() *signalRLogger {
	return &signalRLogger{sugar: logger.Default().Sugar()}
}

func (l *signalRLogger) Log(keyVals ...interface{}) error {
	l.sugar.Debugw("signalr", keyVals...)
	return nil
}
