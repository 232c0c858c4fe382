// Package gin serves the BookLog JSON API over HTTP.
package gin

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/booklog"
	"github.com/fwojciec/booklog/prometheus"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// ShutdownTimeout is how long Close waits for in-flight requests.
const ShutdownTimeout = 5 * time.Second

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// Server is the HTTP API over a Catalog and a chat Replier.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *gin.Engine
	policy *bluemonday.Policy

	// Addr is the address Open listens on.
	Addr string

	Catalog booklog.Catalog
	Replier booklog.Replier

	// Metrics is optional. When set, requests are observed and /metrics is
	// served.
	Metrics *prometheus.Metrics
	Logger  *slog.Logger
}

// NewServer creates a new Server. Routes are registered from the fields
// set at construction.
func NewServer(catalog booklog.Catalog, replier booklog.Replier, metrics *prometheus.Metrics, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		router:  gin.New(),
		policy:  bluemonday.StrictPolicy(),
		Catalog: catalog,
		Replier: replier,
		Metrics: metrics,
		Logger:  logger,
	}
	s.server = &http.Server{Handler: s.router, ReadHeaderTimeout: 10 * time.Second}

	s.router.Use(gin.Recovery(), s.observe)

	s.router.GET("/healthz", s.handleHealthz)
	if metrics != nil {
		s.router.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	api := s.router.Group("/api")
	{
		api.GET("/genres", s.handleGenres)
		api.GET("/books", s.handleBookIndex)
		api.POST("/books", s.handleBookCreate)
		api.GET("/books/:id", s.handleBookView)
		api.PUT("/books/:id", s.handleBookUpdate)
		api.DELETE("/books/:id", s.handleBookDelete)
		api.POST("/chat", s.handleChat)
	}

	return s
}

// ServeHTTP makes Server usable as an http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Open starts listening on Addr. Call Serve to accept connections.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	return nil
}

// Serve accepts connections until Close is called.
func (s *Server) Serve() error {
	if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// observe logs each request and records it in Metrics.
func (s *Server) observe(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = "unmatched"
	}
	d := time.Since(start)
	status := c.Writer.Status()

	if s.Metrics != nil {
		s.Metrics.ObserveRequest(c.Request.Method, path, status, d)
	}
	s.Logger.Debug("http request",
		"method", c.Request.Method,
		"path", path,
		"status", status,
		"duration", d,
	)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
