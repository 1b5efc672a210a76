// Package server wires the dice tray runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	dicetrayv1 "github.com/louisbranch/dicetray/api/gen/go/dicetray/v1"
	trayservice "github.com/louisbranch/dicetray/internal/services/tray/api/grpc/tray"
	"github.com/louisbranch/dicetray/internal/services/tray/domain"
	"github.com/louisbranch/dicetray/internal/services/tray/storage"
	"github.com/louisbranch/dicetray/internal/services/tray/storage/memory"
	traysqlite "github.com/louisbranch/dicetray/internal/services/tray/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Config describes one tray server.
type Config struct {
	Addr string
	// DBPath is the SQLite settings database. Empty keeps settings in memory.
	DBPath   string
	Defaults domain.Settings

	Debounce    time.Duration
	Animation   time.Duration
	Jitter      time.Duration
	RollTimeout time.Duration
}

// Server hosts the tray gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	tray       *domain.Service
	store      *traysqlite.Store
}

// NewWithAddr creates a tray server with default settings kept in memory.
func NewWithAddr(addr string) (*Server, error) {
	return New(context.Background(), Config{Addr: addr})
}

// New creates a configured tray server and provisions its dice.
func New(ctx context.Context, cfg Config) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}

	var (
		settingsStore storage.SettingsStore = memory.NewStore()
		sqliteStore   *traysqlite.Store
	)
	if strings.TrimSpace(cfg.DBPath) != "" {
		sqliteStore, err = openTrayStore(cfg.DBPath)
		if err != nil {
			_ = listener.Close()
			return nil, err
		}
		settingsStore = sqliteStore
	}

	tray, err := domain.NewService(domain.ServiceConfig{
		Store:       settingsStore,
		Defaults:    cfg.Defaults,
		Debounce:    cfg.Debounce,
		Animation:   cfg.Animation,
		Jitter:      cfg.Jitter,
		RollTimeout: cfg.RollTimeout,
		Logf:        log.Printf,
	})
	if err == nil {
		err = tray.Start(ctx)
	}
	if err != nil {
		_ = listener.Close()
		if sqliteStore != nil {
			_ = sqliteStore.Close()
		}
		return nil, fmt.Errorf("start tray: %w", err)
	}

	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	dicetrayv1.RegisterDiceTrayServiceServer(grpcServer, trayservice.NewService(tray))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(dicetrayv1.DiceTrayService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		tray:       tray,
		store:      sqliteStore,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("dicetray server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		// Pending rolls and watch streams must end before GracefulStop returns.
		s.tray.Close()
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases tray server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.tray != nil {
		s.tray.Close()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close tray store: %v", err)
		}
	}
}

func openTrayStore(path string) (*traysqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := traysqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tray sqlite store: %w", err)
	}
	return store, nil
}
