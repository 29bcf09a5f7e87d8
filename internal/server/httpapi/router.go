// Package httpapi serves the browser-facing endpoints: link landings, logout
// and the forward-auth check a reverse proxy calls before serving media.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gatekeeper/internal/logging"
	"github.com/dmitrijs2005/gatekeeper/internal/server/services"
	"github.com/dmitrijs2005/gatekeeper/internal/server/sessions"
	"github.com/gorilla/mux"
)

// Headers set by /auth/check for the proxied application.
const (
	HeaderUser     = "X-Auth-User"
	HeaderUserID   = "X-Auth-User-Id"
	HeaderDownload = "X-Auth-Download"
	HeaderAdmin    = "X-Auth-Admin"
	HeaderState    = "X-Auth-Session-State"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type Server struct {
	address  string
	svc      *services.Services
	sessions *sessions.Manager
	cookie   CookieConfig
	logger   logging.Logger
}

func NewServer(address string, l logging.Logger, svc *services.Services, sm *sessions.Manager, cookie CookieConfig) *Server {
	return &Server{
		address:  address,
		svc:      svc,
		sessions: sm,
		cookie:   cookie,
		logger:   l.With("module", "http_server"),
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.health).Methods(http.MethodGet)
	r.HandleFunc("/auth/check", s.check).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)
	// Emailed links land on GET, which only renders a confirmation form.
	// Tokens are redeemed by the POST it submits, so link scanners that
	// prefetch cannot spend them.
	r.HandleFunc("/auth/verify", s.landing(verifyPage)).Methods(http.MethodGet)
	r.HandleFunc("/auth/verify", s.verify).Methods(http.MethodPost)
	r.HandleFunc("/auth/recover", s.landing(recoverPage)).Methods(http.MethodGet)
	r.HandleFunc("/auth/recover", s.recoverLink).Methods(http.MethodPost)
	return r
}

// Run serves until ctx is done and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
