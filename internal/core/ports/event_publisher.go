package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/kernel"
)

// OrderEventType identifies the kind of change an OrderEvent describes.
type OrderEventType string

const (
	OrderCreatedEvent    OrderEventType = "order.created"
	OrderAcceptedEvent   OrderEventType = "order.accepted"
	OrderDispatchedEvent OrderEventType = "order.dispatched"
	OrderReassignedEvent OrderEventType = "order.reassigned"
	OrderPickedUpEvent   OrderEventType = "order.picked_up"
	OrderDeliveredEvent  OrderEventType = "order.delivered"
	OrderCancelledEvent  OrderEventType = "order.cancelled"
	OrderLateEvent       OrderEventType = "order.late"
)

// OrderEvent is a change notification for a single order. Sequence is a
// monotonically increasing watermark per order (unix milliseconds of the
// change): consumers detect missed updates by watching for gaps and re-fetch
// the order instead of trusting event payloads to be complete.
type OrderEvent struct {
	Type             OrderEventType `json:"type"`
	OrderID          string         `json:"orderId"`
	Reference        string         `json:"reference"`
	Status           string         `json:"status"`
	DriverID         *string        `json:"driverId,omitempty"`
	PreviousDriverID *string        `json:"previousDriverId,omitempty"`
	Sequence         int64          `json:"sequence"`
	OccurredAt       time.Time      `json:"occurredAt"`
}

// NewOrderEvent builds an event for the given order change. driverID and
// previousDriverID may be nil.
func NewOrderEvent(
	eventType OrderEventType,
	orderID kernel.UUID,
	reference string,
	status string,
	driverID *kernel.UUID,
	previousDriverID *kernel.UUID,
	occurredAt time.Time,
) OrderEvent {
	event := OrderEvent{
		Type:       eventType,
		OrderID:    orderID.String(),
		Reference:  reference,
		Status:     status,
		Sequence:   occurredAt.UnixMilli(),
		OccurredAt: occurredAt,
	}
	if driverID != nil {
		s := driverID.String()
		event.DriverID = &s
	}
	if previousDriverID != nil {
		s := previousDriverID.String()
		event.PreviousDriverID = &s
	}
	return event
}

// OrderEventPublisher pushes order change notifications to interested
// consumers. Publishing is best-effort from the command handlers' point of
// view: a failed publish is logged, never rolled back into the transaction.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
}
