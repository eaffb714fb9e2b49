// Package server exposes the engine's operational HTTP API: status,
// sync/flush/cleanup triggers. It is a control surface for operators, not
// the reading UI.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/feedsync/feedsync/pkg/domain"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/engine.go -pkg mocks -skip-ensure -fmt goimports . Engine

// Engine is the sync engine surface the API exposes.
type Engine interface {
	QueueSize() int
	QueueDegraded() bool
	Online() bool
	SetOnline(online bool)
	TriggerFlush()
	SyncNow(ctx context.Context) (*domain.SyncSession, error)
	LastSession() *domain.SyncSession
	CleanupReadArticles(ctx context.Context) (domain.BatchResult, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	engine  Engine
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// New initializes a new server instance
func New(cfg ConfigProvider, engine Engine, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		engine:  engine,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedsync", "feedsync", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("POST /sync", s.syncHandler)
		r.HandleFunc("POST /flush", s.flushHandler)
		r.HandleFunc("POST /cleanup", s.cleanupHandler)
		r.HandleFunc("PUT /online", s.onlineHandler)
	})
}

// statusHandler returns engine status: queue depth, degraded/offline flags
// and the last sync session summary
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"queueSize": s.engine.QueueSize(),
		"degraded":  s.engine.QueueDegraded(),
		"online":    s.engine.Online(),
	}
	if sess := s.engine.LastSession(); sess != nil {
		status["lastSync"] = map[string]interface{}{
			"id":                sess.ID,
			"startedAt":         sess.StartedAt,
			"articlesProcessed": sess.ArticlesProcessed,
			"conflictsDetected": sess.ConflictsDetected,
		}
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// syncHandler triggers an immediate pull sync
func (s *Server) syncHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := s.engine.SyncNow(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusBadGateway)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"syncSessionId":     sess.ID,
		"articlesProcessed": sess.ArticlesProcessed,
		"conflictsDetected": sess.ConflictsDetected,
		"conflictsByType":   sess.ConflictsByType,
	})
}

// flushHandler triggers an immediate queue flush
func (s *Server) flushHandler(w http.ResponseWriter, r *http.Request) {
	s.engine.TriggerFlush()
	RenderJSON(w, r, http.StatusAccepted, map[string]interface{}{
		"status": "flush triggered", "queueSize": s.engine.QueueSize(),
	})
}

// cleanupHandler removes read articles in chunks
func (s *Server) cleanupHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.engine.CleanupReadArticles(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{
		"totalChunks":      res.TotalChunks,
		"successfulChunks": res.SuccessfulChunks,
		"failedChunks":     res.FailedChunks,
		"processedCount":   res.ProcessedCount,
	})
}

// onlineHandler feeds the connectivity signal, body {"online": bool}
func (s *Server) onlineHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Online bool `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}
	s.engine.SetOnline(req.Online)
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"online": req.Online})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
