// Package enrollment parses enrollment service flags and launches the service.
package enrollment

import (
	"context"
	"flag"

	entrypoint "github.com/campusworks/registrar/internal/platform/cmd"
	server "github.com/campusworks/registrar/internal/services/enrollment/app"
)

// Config holds enrollment command configuration.
type Config struct {
	GRPCPort int `env:"REGISTRAR_ENROLLMENT_GRPC_PORT" envDefault:"8091"`
	HTTPPort int `env:"REGISTRAR_ENROLLMENT_HTTP_PORT" envDefault:"8092"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.GRPCPort, "grpc-port", cfg.GRPCPort, "The enrollment gRPC server port")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "The enrollment HTTP server port")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the enrollment service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceEnrollment, func(context.Context) error {
		return server.Run(ctx, cfg.GRPCPort, cfg.HTTPPort)
	})
}
