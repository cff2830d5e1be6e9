package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusworks/registrar/internal/platform/config"
	"github.com/campusworks/registrar/internal/platform/timeouts"
	"github.com/campusworks/registrar/internal/services/catalog/client"
	catalogsqlite "github.com/campusworks/registrar/internal/services/catalog/storage/sqlite"
)

type serverEnv struct {
	DBPath         string `env:"REGISTRAR_CATALOG_DB_PATH"`
	EnrollmentAddr string `env:"REGISTRAR_ENROLLMENT_GRPC_ADDR"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "catalog.db")
	}
	if strings.TrimSpace(cfg.EnrollmentAddr) == "" {
		cfg.EnrollmentAddr = "localhost:8091"
	}
	return cfg
}

// Server hosts the catalog HTTP API and its storage and client lifecycle.
type Server struct {
	listener   net.Listener
	httpServer *http.Server
	store      *catalogsqlite.Store
	enrollment *client.Client
}

// New creates a configured catalog server listening on the provided port.
func New(ctx context.Context, port int) (*Server, error) {
	return NewWithAddr(ctx, fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured catalog server for the provided address.
// It dials the enrollment service and waits for its health check.
func NewWithAddr(ctx context.Context, addr string) (*Server, error) {
	srvEnv := loadServerEnv()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	store, err := openCatalogStore(srvEnv.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}

	enrollment, err := client.Dial(ctx, srvEnv.EnrollmentAddr)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, err
	}

	handler, err := NewHandler(store, enrollment)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = enrollment.Close()
		return nil, fmt.Errorf("build catalog handler: %w", err)
	}

	return &Server{
		listener: listener,
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:      store,
		enrollment: enrollment,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a catalog server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(ctx, port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the HTTP server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("catalog HTTP listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		err := s.httpServer.Serve(s.listener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown catalog HTTP: %v", err)
		}
		if err := <-serveErr; err != nil {
			return fmt.Errorf("serve catalog: %w", err)
		}
		return nil
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve catalog: %w", err)
		}
		return nil
	}
}

// Close releases catalog server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.enrollment != nil {
		if err := s.enrollment.Close(); err != nil {
			log.Printf("close enrollment client: %v", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close catalog store: %v", err)
		}
	}
}

func openCatalogStore(path string) (*catalogsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := catalogsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog sqlite store: %w", err)
	}
	return store, nil
}
