package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/kernel"
)

const (
	DefaultDispatchWorkers   = 4
	DefaultDispatchQueueSize = 100
	DefaultDispatchTimeout   = 30 * time.Second
)

type courierDispatchHandler interface {
	Handle(ctx context.Context, cmd commands.DispatchCourierCommand) (delivery.CourierOrder, error)
}

// CourierDispatcher runs courier dispatches in the background.
// It implements commands.CourierDispatchQueue.
type CourierDispatcher struct {
	handler courierDispatchHandler
	queue   chan kernel.UUID
	workers int
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.RWMutex
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewCourierDispatcher creates a dispatcher. Non-positive sizes fall back to
// the defaults.
func NewCourierDispatcher(
	handler courierDispatchHandler,
	workers, queueSize int,
	timeout time.Duration,
	logger *slog.Logger,
) *CourierDispatcher {
	if workers <= 0 {
		workers = DefaultDispatchWorkers
	}
	if queueSize <= 0 {
		queueSize = DefaultDispatchQueueSize
	}
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}

	return &CourierDispatcher{
		handler: handler,
		queue:   make(chan kernel.UUID, queueSize),
		workers: workers,
		timeout: timeout,
		logger:  logger.With("component", "courier_dispatcher"),
	}
}

// Start launches the workers. Calling it again has no effect.
func (d *CourierDispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.started || d.stopped {
		return
	}
	d.started = true

	for range d.workers {
		d.wg.Add(1)
		go d.work()
	}

	d.logger.Info("Courier dispatcher started", "workers", d.workers, "queue_size", cap(d.queue))
}

// Enqueue schedules a dispatch for the order. It never blocks: when the queue
// is full or the dispatcher is stopped the order id is dropped and false is
// returned.
func (d *CourierDispatcher) Enqueue(orderID kernel.UUID) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.logger.Warn("Courier dispatch dropped, dispatcher stopped", "order_id", orderID.String())
		return false
	}

	select {
	case d.queue <- orderID:
		return true
	default:
		d.logger.Warn("Courier dispatch dropped, queue is full", "order_id", orderID.String())
		return false
	}
}

// Stop refuses new work and waits until the queued dispatches are done.
func (d *CourierDispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		d.logger.Info("Courier dispatcher stopped", "dropped", len(d.queue))
		return
	}

	d.wg.Wait()
	d.logger.Info("Courier dispatcher stopped")
}

func (d *CourierDispatcher) work() {
	defer d.wg.Done()

	for orderID := range d.queue {
		d.dispatch(orderID)
	}
}

func (d *CourierDispatcher) dispatch(orderID kernel.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	log := d.logger.With("order_id", orderID.String())

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "Courier dispatch panicked", "panic", r)
		}
	}()

	cmd, err := commands.NewDispatchCourierCommand(orderID)
	if err != nil {
		log.ErrorContext(ctx, "Courier dispatch rejected", "error", err)
		return
	}

	courierOrder, err := d.handler.Handle(ctx, cmd)
	switch {
	case err == nil:
		log.InfoContext(ctx, "Courier dispatched", "courier_order_id", courierOrder.OrderID)
	case commands.IsDispatchSkipped(err):
		log.InfoContext(ctx, "Courier dispatch skipped", "reason", err.Error())
	default:
		log.ErrorContext(ctx, "Courier dispatch failed", "error", err)
	}
}

var _ commands.CourierDispatchQueue = (*CourierDispatcher)(nil)
