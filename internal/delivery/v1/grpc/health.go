package grpc

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/store-backend/pkg/logger"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName — имя сервиса в ответах grpc.health.v1.Health.
const ServiceName = "store.Backend"

// Pinger — зависимость, доступность которой определяет статус сервиса.
type Pinger interface {
	Ping(ctx context.Context) error
}

// StatusSetter — часть health.Server, которую обновляет HealthWatcher.
type StatusSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// HealthWatcher периодически пингует хранилище и выставляет статус сервиса.
type HealthWatcher struct {
	pinger   Pinger
	status   StatusSetter
	interval time.Duration
	logger   logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewHealthWatcher(pinger Pinger, status StatusSetter, interval time.Duration, logger logger.Logger) *HealthWatcher {
	return &HealthWatcher{
		pinger:   pinger,
		status:   status,
		interval: interval,
		logger:   logger,
	}
}

// Start делает первую проверку сразу и дальше повторяет её каждые interval.
func (h *HealthWatcher) Start(ctx context.Context) {
	ctx, h.cancel = context.WithCancel(ctx)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()

		ticker := time.NewTicker(h.interval)
		defer ticker.Stop()

		h.check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.check(ctx)
			}
		}
	}()
}

// Stop останавливает проверки и ждёт завершения горутины.
func (h *HealthWatcher) Stop(ctx context.Context) error {
	if h.cancel != nil {
		h.cancel()
	}

	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (h *HealthWatcher) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(pingCtx); err != nil {
		if ctx.Err() != nil {
			return
		}
		h.logger.Warnf("health check failed: %v", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.status.SetServingStatus(ServiceName, status)
	h.status.SetServingStatus("", status)
}
