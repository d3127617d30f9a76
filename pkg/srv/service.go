package srv

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/termfolio/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// Service is a long-running part of the process. Start may block until the
// service stops; Shutdown must make a blocked Start return.
type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Run starts every service and blocks until ctx is done or one of them
// fails to start. Services are then shut down in reverse order. The first
// start error is returned.
func Run(ctx context.Context, services []Service) error {
	errs := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				errs <- fmt.Errorf("%T failed to start: %w", service, err)
			}
		}(service)
	}

	var err error
	select {
	case <-ctx.Done():
	case err = <-errs:
		log.FromCtx(ctx).Error().Err(err).Msg("stopping services")
	}

	ShutdownServices(ctx, services)
	return err
}

// ShutdownServices stops services in reverse start order. It does not wait
// for ctx; the shutdown itself gets a fresh deadline.
func ShutdownServices(ctx context.Context, services []Service) {
	logger := log.FromCtx(ctx)
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
}
