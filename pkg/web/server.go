// Package web exposes a small HTTP API with bot status and moderation
// statistics, backed by gin.
package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wardenlabs/warden/pkg/config"
	"github.com/wardenlabs/warden/pkg/logger"
)

// Server wraps the gin engine and its http.Server
type Server struct {
	engine *gin.Engine
	server *http.Server
	port   string
}

var (
	instance *Server
	once     sync.Once
)

// Init initializes the global web server
func Init(cfg *config.Config) *Server {
	once.Do(func() {
		instance = NewServer(cfg)
	})
	return instance
}

// Get returns the global web server instance
func Get() *Server {
	return instance
}

// NewServer creates a new web server
func NewServer(cfg *config.Config) *Server {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())

	return &Server{
		engine: engine,
		port:   cfg.Port,
	}
}

// requestLogger tags every request with an id and logs it on completion
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("requestId", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.Info(fmt.Sprintf("%s %s %d (%s)",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Microsecond),
		), "Web")
	}
}

// Engine returns the underlying gin engine for route registration
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the HTTP server in a goroutine
func (s *Server) Start() {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.engine,
	}

	go func() {
		logger.System(fmt.Sprintf("Web server listening on port %s", s.port), "Web")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(fmt.Sprintf("Web server error: %v", err), "Web")
		}
	}()
}

// Stop gracefully shuts down the HTTP server
func (s *Server) Stop() {
	if s.server == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		logger.Error(fmt.Sprintf("Web server shutdown error: %v", err), "Web")
	}
	logger.System("Web server stopped.", "Web")
}
