// Package server wires the enrollment runtime: storage, the consistency
// coordinator, the admission controller, the gRPC query API, and the HTTP
// mutation shim, plus lifecycle for all of them.
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

	enrollmentv1 "github.com/campusworks/registrar/api/gen/go/enrollment/v1"
	"github.com/campusworks/registrar/internal/platform/config"
	"github.com/campusworks/registrar/internal/platform/timeouts"
	enrollmentservice "github.com/campusworks/registrar/internal/services/enrollment/api/grpc/enrollment"
	"github.com/campusworks/registrar/internal/services/enrollment/admission"
	"github.com/campusworks/registrar/internal/services/enrollment/consistency"
	"github.com/campusworks/registrar/internal/services/enrollment/directory"
	"github.com/campusworks/registrar/internal/services/enrollment/httpapi"
	enrollmentsqlite "github.com/campusworks/registrar/internal/services/enrollment/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath         string `env:"REGISTRAR_ENROLLMENT_DB_PATH"`
	ReplicaDBPath  string `env:"REGISTRAR_ENROLLMENT_REPLICA_DB_PATH"`
	CatalogDBPath  string `env:"REGISTRAR_CATALOG_DB_PATH"`
	IdentityDBPath string `env:"REGISTRAR_IDENTITY_DB_PATH"`
}

func loadServerEnv() serverEnv {
	var cfg serverEnv
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "enrollment.db")
	}
	if strings.TrimSpace(cfg.CatalogDBPath) == "" {
		cfg.CatalogDBPath = filepath.Join("data", "catalog.db")
	}
	if strings.TrimSpace(cfg.IdentityDBPath) == "" {
		cfg.IdentityDBPath = filepath.Join("data", "identity.db")
	}
	return cfg
}

// Server hosts the enrollment gRPC and HTTP APIs and their storage lifecycle.
type Server struct {
	grpcListener net.Listener
	httpListener net.Listener
	grpcServer   *grpc.Server
	httpServer   *http.Server
	health       *health.Server
	store        *enrollmentsqlite.Store
	replica      *enrollmentsqlite.Replica
	catalogDir   *directory.CatalogDirectory
	identityDir  *directory.IdentityDirectory
}

// New creates a configured enrollment server on the provided ports.
func New(grpcPort, httpPort int) (*Server, error) {
	return NewWithAddrs(fmt.Sprintf(":%d", grpcPort), fmt.Sprintf(":%d", httpPort))
}

// NewWithAddrs creates a configured enrollment server for the provided
// listen addresses.
func NewWithAddrs(grpcAddr, httpAddr string) (*Server, error) {
	srvEnv := loadServerEnv()

	server := &Server{}
	closeOnError := func() { server.Close() }

	var err error
	server.grpcListener, err = net.Listen("tcp", grpcAddr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", grpcAddr, err)
	}
	server.httpListener, err = net.Listen("tcp", httpAddr)
	if err != nil {
		closeOnError()
		return nil, fmt.Errorf("listen on %s: %w", httpAddr, err)
	}

	server.store, err = openEnrollmentStore(srvEnv.DBPath)
	if err != nil {
		closeOnError()
		return nil, err
	}
	if strings.TrimSpace(srvEnv.ReplicaDBPath) != "" {
		server.replica, err = enrollmentsqlite.OpenReplica(srvEnv.ReplicaDBPath)
		if err != nil {
			closeOnError()
			return nil, fmt.Errorf("open enrollment replica: %w", err)
		}
	}
	server.catalogDir, err = directory.OpenCatalogDirectory(srvEnv.CatalogDBPath)
	if err != nil {
		closeOnError()
		return nil, err
	}
	server.identityDir, err = directory.OpenIdentityDirectory(srvEnv.IdentityDBPath)
	if err != nil {
		closeOnError()
		return nil, err
	}

	coordinator, err := newCoordinator(server.store, server.replica)
	if err != nil {
		closeOnError()
		return nil, err
	}

	controller, err := admission.NewController(admission.Config{
		Store:       server.store,
		Reads:       coordinator,
		Courses:     server.catalogDir,
		Identity:    server.identityDir,
		IsTransient: enrollmentsqlite.IsTransient,
	})
	if err != nil {
		closeOnError()
		return nil, fmt.Errorf("build admission controller: %w", err)
	}

	apiService, err := enrollmentservice.NewService(coordinator, server.catalogDir, server.identityDir)
	if err != nil {
		closeOnError()
		return nil, fmt.Errorf("build query service: %w", err)
	}

	server.grpcServer = grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	server.health = health.NewServer()
	enrollmentv1.RegisterEnrollmentAdmissionServiceServer(server.grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(server.grpcServer, server.health)
	server.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	server.health.SetServingStatus("enrollment.v1.EnrollmentAdmissionService", grpc_health_v1.HealthCheckResponse_SERVING)

	handler, err := httpapi.NewHandler(controller)
	if err != nil {
		closeOnError()
		return nil, fmt.Errorf("build http handler: %w", err)
	}
	server.httpServer = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return server, nil
}

// newCoordinator avoids handing the coordinator a typed-nil replica reader.
func newCoordinator(primary *enrollmentsqlite.Store, replica *enrollmentsqlite.Replica) (*consistency.Coordinator, error) {
	if replica == nil {
		return consistency.NewCoordinator(primary, nil)
	}
	return consistency.NewCoordinator(primary, replica)
}

// GRPCAddr returns the gRPC listener address.
func (s *Server) GRPCAddr() string {
	if s == nil || s.grpcListener == nil {
		return ""
	}
	return s.grpcListener.Addr().String()
}

// HTTPAddr returns the HTTP listener address.
func (s *Server) HTTPAddr() string {
	if s == nil || s.httpListener == nil {
		return ""
	}
	return s.httpListener.Addr().String()
}

// Run creates and serves an enrollment server until context cancellation.
func Run(ctx context.Context, grpcPort, httpPort int) error {
	server, err := New(grpcPort, httpPort)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts both listeners until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("enrollment gRPC listening at %v", s.grpcListener.Addr())
	log.Printf("enrollment HTTP listening at %v", s.httpListener.Addr())

	serveErr := make(chan error, 2)
	go func() {
		serveErr <- s.grpcServer.Serve(s.grpcListener)
	}()
	go func() {
		err := s.httpServer.Serve(s.httpListener)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serveErr <- err
	}()

	select {
	case <-ctx.Done():
		s.shutdown()
		firstErr := <-serveErr
		secondErr := <-serveErr
		for _, err := range []error{firstErr, secondErr} {
			if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
				return fmt.Errorf("serve enrollment: %w", err)
			}
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve enrollment: %w", err)
	}
}

func (s *Server) shutdown() {
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown enrollment HTTP: %v", err)
		}
	}
	if s.grpcServer != nil {
		s.grpcServer.GracefulStop()
	}
}

// Close releases enrollment server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.httpServer != nil {
		_ = s.httpServer.Close()
	}
	if s.grpcListener != nil {
		_ = s.grpcListener.Close()
	}
	if s.httpListener != nil {
		_ = s.httpListener.Close()
	}
	for _, closer := range []interface{ Close() error }{s.replica, s.catalogDir, s.identityDir, s.store} {
		if closer == nil {
			continue
		}
		if err := closer.Close(); err != nil {
			log.Printf("close enrollment resource: %v", err)
		}
	}
}

func openEnrollmentStore(path string) (*enrollmentsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := enrollmentsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open enrollment sqlite store: %w", err)
	}
	return store, nil
}
