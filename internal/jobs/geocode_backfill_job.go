package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/ports"
)

const backfillTimeout = 45 * time.Second

// GeocodeBackfillJob re-resolves addresses of orders that were committed
// without coordinates. Runs every minute; an order stays flagged until both
// sides resolve, so a provider outage only delays the backfill.
type GeocodeBackfillJob struct {
	uowFactory ports.UnitOfWorkFactory
	geocoder   ports.Geocoder
	table      *tariff.Table
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewGeocodeBackfillJob creates the backfill job.
func NewGeocodeBackfillJob(
	uowFactory ports.UnitOfWorkFactory,
	geocoder ports.Geocoder,
	table *tariff.Table,
	logger *slog.Logger,
) *GeocodeBackfillJob {
	return &GeocodeBackfillJob{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		table:      table,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "geocode_backfill_job"),
	}
}

// Start schedules the backfill to run every minute.
func (j *GeocodeBackfillJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), backfillTimeout)
		defer cancel()

		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Geocode backfill run failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Geocode backfill job started (running every minute)")
	return nil
}

// Stop stops the backfill job.
func (j *GeocodeBackfillJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Geocode backfill job stopped")
}

func (j *GeocodeBackfillJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	orders, err := uow.OrderRepository().GetAllNeedingGeocoding(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		if err := j.backfillOrder(ctx, aggregate); err != nil {
			// Leave the flag set; the next run retries.
			j.logger.WarnContext(ctx, "Order geocode backfill skipped",
				"orderId", aggregate.ID().String(),
				"error", err,
			)
		}
	}
	return nil
}

// backfillOrder resolves both addresses and persists the order when at least
// one side gained coordinates. Resolution failures are returned unless the
// order was already fully resolved.
func (j *GeocodeBackfillJob) backfillOrder(ctx context.Context, aggregate *order.Order) error {
	pickup, pickupErr := j.resolveAddress(ctx, aggregate.PickupAddress())
	delivery, deliveryErr := j.resolveAddress(ctx, aggregate.DeliveryAddress())
	if pickupErr != nil {
		return pickupErr
	}
	if deliveryErr != nil {
		return deliveryErr
	}

	resolvedSomething := pickup.NeedsGeocoding() != aggregate.PickupAddress().NeedsGeocoding() ||
		delivery.NeedsGeocoding() != aggregate.DeliveryAddress().NeedsGeocoding()
	if !resolvedSomething {
		// Neither side gained coordinates; nothing to persist.
		return nil
	}

	if err := aggregate.ResolveAddresses(pickup, delivery); err != nil {
		return err
	}

	uow := j.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return err
	}

	j.logger.InfoContext(ctx, "Order addresses resolved",
		"orderId", aggregate.ID().String(),
		"fullyResolved", !aggregate.NeedsGeocoding(),
	)
	return nil
}

// resolveAddress geocodes one side. Addresses that already carry coordinates
// pass through unchanged. Only suggestions whose locality matches the curated
// city table are accepted, so the backfill never writes an unpriceable city.
func (j *GeocodeBackfillJob) resolveAddress(ctx context.Context, address order.Address) (order.Address, error) {
	if !address.NeedsGeocoding() {
		return address, nil
	}

	suggestions, err := j.geocoder.Autocomplete(ctx, address.Text())
	if err != nil {
		return order.Address{}, err
	}

	for _, suggestion := range suggestions {
		city, ok := j.table.FindCity(suggestion.PostalCode, suggestion.City)
		if !ok {
			continue
		}

		point, err := kernel.NewGeoPoint(suggestion.Latitude, suggestion.Longitude)
		if err != nil {
			continue
		}
		return order.NewResolvedAddress(address.Text(), city.Name, city.PostalCode, point)
	}

	// No usable suggestion: keep the unresolved address as-is.
	return address, nil
}
