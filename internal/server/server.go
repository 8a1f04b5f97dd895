// SPDX-License-Identifier: EPL-2.0

// Package server exposes the transform pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ik5/audxform"
	"github.com/ik5/audxform/audio"
	"github.com/ik5/audxform/internal/config"
)

const (
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 30 * time.Second
)

// Server holds the handlers and their dependencies.
type Server struct {
	cfg      config.ServerConfig
	bitDepth int
	registry *audio.Registry
	log      logrus.FieldLogger
}

// New builds a Server from cfg. A nil logger uses the standard logrus logger.
func New(cfg *config.Config, logger logrus.FieldLogger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Server{
		cfg:      cfg.Server,
		bitDepth: cfg.Output.BitDepth,
		registry: audxform.NewDefaultRegistry(),
		log:      logger,
	}
}

// Router returns the gin engine with every route and middleware attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(s.accessLog())

	r.GET("/healthz", s.health)

	v1 := r.Group("/v1")
	{
		v1.GET("/effects", s.listEffects)
		v1.POST("/transform", s.transform)
	}

	return r
}

// HTTPServer wraps Router in an http.Server using the configured address
// and timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.cfg.Address,
		Handler:      s.Router(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  idleTimeout,
	}
}

// Run serves on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, ln net.Listener) error {
	srv := s.HTTPServer()

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("address", ln.Addr().String()).Info("listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
