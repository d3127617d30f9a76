package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sandevgo/termfolio/internal/core"
	"github.com/sandevgo/termfolio/internal/service/terminal"
	"github.com/sandevgo/termfolio/pkg/log"
)

const (
	maxRequestBody = 4 << 10
	sessionCookie  = "termfolio_session"
)

// Server is the browser surface of the terminal.
type Server struct {
	cfg      core.WebConfig
	registry core.CmdRegistry
	store    *terminal.Store
	page     *template.Template
	title    string
	http     *http.Server
}

func NewServer(
	ctx context.Context,
	cfg core.WebConfig,
	profile core.ProfileConfig,
	registry core.CmdRegistry,
	store *terminal.Store,
) (*Server, error) {
	page, err := parsePage()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		registry: registry,
		store:    store,
		page:     page,
		title:    fmt.Sprintf("%s · terminal", profile.GetName()),
	}

	router, err := s.Router(ctx)
	if err != nil {
		return nil, err
	}

	s.http = &http.Server{
		Addr:              cfg.GetListenAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Router wires the page, the API and the static assets. Request contexts
// carry the logger of ctx.
func (s *Server) Router(ctx context.Context) (*mux.Router, error) {
	static, err := staticFS()
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger := log.FromCtx(ctx)
			next.ServeHTTP(w, req.WithContext(logger.WithContext(req.Context())))
		})
	})

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/api/exec", s.handleExec).Methods(http.MethodPost)
	r.HandleFunc("/api/commands", s.handleCommands).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r, nil
}

func (s *Server) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Str("addr", s.cfg.GetListenAddr()).Msg("starting web server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
