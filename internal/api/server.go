// Package api wires the HTTP surface: routing, request decoding, and
// the mapping from service errors to status codes. Business logic lives
// in the service packages, never here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gvsu-realestate/clubsite/internal/auth"
	"github.com/gvsu-realestate/clubsite/internal/config"
	"github.com/gvsu-realestate/clubsite/internal/service/announcement"
	"github.com/gvsu-realestate/clubsite/internal/service/home"
	"github.com/gvsu-realestate/clubsite/internal/service/member"
	"github.com/gvsu-realestate/clubsite/internal/service/publish"
	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
	"github.com/gvsu-realestate/clubsite/internal/service/resource"
	"github.com/gvsu-realestate/clubsite/internal/service/syndication"
)

// Handlers bundles the services the HTTP layer dispatches into.
type Handlers struct {
	announcements *announcement.Service
	recipients    *recipient.Service
	publisher     *publish.Service
	resources     *resource.Service
	members       *member.Service
	home          *home.Service
	syndication   *syndication.Service
	auth          *auth.Service

	// ping checks the document store for the health endpoint; nil
	// means no deep check (local mode).
	ping func(ctx context.Context) error
}

// NewHandlers creates the handler set.
func NewHandlers(
	announcements *announcement.Service,
	recipients *recipient.Service,
	publisher *publish.Service,
	resources *resource.Service,
	members *member.Service,
	homeSvc *home.Service,
	syndicationSvc *syndication.Service,
	authSvc *auth.Service,
	ping func(ctx context.Context) error,
) *Handlers {
	return &Handlers{
		announcements: announcements,
		recipients:    recipients,
		publisher:     publisher,
		resources:     resources,
		members:       members,
		home:          homeSvc,
		syndication:   syndicationSvc,
		auth:          authSvc,
		ping:          ping,
	}
}

// Server is the club site HTTP server.
type Server struct {
	cfg     config.ServerConfig
	handler http.Handler
	server  *http.Server
}

// NewServer creates the server with all routes configured.
func NewServer(cfg config.ServerConfig, h *Handlers) *Server {
	return &Server{
		cfg:     cfg,
		handler: SetupRoutes(h, cfg.AllowedOrigins),
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.handler,
		// Uploads (headshots, PDFs) can take a while on campus wifi.
		ReadTimeout:       2 * time.Minute,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
