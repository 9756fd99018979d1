package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/ports"
)

const lateWatchTimeout = 15 * time.Second

// LateOrderWatchJob flags picked-up orders past their deadline. Runs every
// minute, logs a warning and emits an order-late event per overdue order.
// Lateness stays a read-model property: the job never mutates order status.
type LateOrderWatchJob struct {
	handler   queries.GetLateOrdersQueryHandler
	publisher ports.OrderEventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLateOrderWatchJob creates the late-order watch job.
func NewLateOrderWatchJob(
	handler queries.GetLateOrdersQueryHandler,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) *LateOrderWatchJob {
	return &LateOrderWatchJob{
		handler:   handler,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "late_order_watch_job"),
	}
}

// Start schedules the watch to run every minute.
func (j *LateOrderWatchJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), lateWatchTimeout)
		defer cancel()

		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Late order watch run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Late order watch job started (running every minute)")
	return nil
}

// Stop stops the watch job.
func (j *LateOrderWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Late order watch job stopped")
}

func (j *LateOrderWatchJob) run(ctx context.Context) error {
	now := time.Now().UTC()
	lateOrders, err := j.handler.Handle(ctx, queries.NewGetLateOrdersQuery(now))
	if err != nil {
		return err
	}

	for _, lateOrder := range lateOrders {
		j.logger.WarnContext(ctx, "Order is past its deadline",
			"orderId", lateOrder.ID.String(),
			"reference", lateOrder.Reference,
			"deadline", lateOrder.Deadline,
			"lateBy", lateOrder.LateBy.String(),
		)

		event := ports.NewOrderEvent(
			ports.OrderLateEvent,
			lateOrder.ID,
			lateOrder.Reference,
			order.StatusPickedUp.String(),
			lateOrder.DriverID,
			nil,
			now,
		)
		if err := j.publisher.Publish(ctx, event); err != nil {
			j.logger.WarnContext(ctx, "Late order event publish failed",
				"orderId", lateOrder.ID.String(),
				"error", err,
			)
		}
	}
	return nil
}
