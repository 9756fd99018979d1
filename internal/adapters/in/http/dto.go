package http

import (
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
)

// ErrorResponse is the envelope for every non-2xx answer.
// RequiresConfirmation marks the dispatch conflict that a retry with
// confirmReassign set will resolve.
type ErrorResponse struct {
	Code                 int    `json:"code"`
	Message              string `json:"message"`
	RequiresConfirmation bool   `json:"requiresConfirmation,omitempty"`
	PreviousDriverID     string `json:"previousDriverId,omitempty"`
}

// ContactPayload carries the person to meet at an address.
type ContactPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AccessCode   string `json:"accessCode"`
	Instructions string `json:"instructions"`
}

// AddressPayload is one side of the order as the operator entered it.
// Coordinates are present when the operator picked a suggestion; an address
// without them is accepted and geocoded in the background.
type AddressPayload struct {
	Text       string   `json:"text"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

// CreateOrderRequest is the body of POST /api/v1/orders. It mirrors a
// complete order draft, quoted price included.
type CreateOrderRequest struct {
	ID              string         `json:"id"`
	Reference       string         `json:"reference"`
	Pickup          AddressPayload `json:"pickup"`
	Delivery        AddressPayload `json:"delivery"`
	PickupContact   ContactPayload `json:"pickupContact"`
	DeliveryContact ContactPayload `json:"deliveryContact"`
	ScheduleType    string         `json:"scheduleType"`
	PickupAt        *time.Time     `json:"pickupAt"`
	Deadline        *time.Time     `json:"deadline"`
	Vehicle         string         `json:"vehicle"`
	Formula         string         `json:"formula"`
	PriceHTCents    *int64         `json:"priceHtCents"`
}

func (r CreateOrderRequest) toDraft() (commands.Draft, error) {
	draft := commands.Draft{
		Reference: r.Reference,

		PickupText:       r.Pickup.Text,
		PickupCity:       r.Pickup.City,
		PickupPostalCode: r.Pickup.PostalCode,
		PickupLatitude:   r.Pickup.Latitude,
		PickupLongitude:  r.Pickup.Longitude,

		DeliveryText:       r.Delivery.Text,
		DeliveryCity:       r.Delivery.City,
		DeliveryPostalCode: r.Delivery.PostalCode,
		DeliveryLatitude:   r.Delivery.Latitude,
		DeliveryLongitude:  r.Delivery.Longitude,

		PickupContact:   contactFromPayload(r.PickupContact),
		DeliveryContact: contactFromPayload(r.DeliveryContact),

		ScheduleType: r.ScheduleType,
		PickupAt:     r.PickupAt,
		Deadline:     r.Deadline,

		Vehicle:      r.Vehicle,
		Formula:      r.Formula,
		PriceHTCents: r.PriceHTCents,
	}

	if r.ID != "" {
		orderID, err := kernel.UUIDFromString(r.ID)
		if err != nil {
			return commands.Draft{}, err
		}
		draft.OrderID = &orderID
	}
	return draft, nil
}

func contactFromPayload(payload ContactPayload) order.Contact {
	return order.Contact{
		Name:         payload.Name,
		Phone:        payload.Phone,
		AccessCode:   payload.AccessCode,
		Instructions: payload.Instructions,
	}
}

// CreateOrderResponse returns the id of the committed order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// DispatchOrderRequest is the body of POST /api/v1/orders/:id/dispatch.
type DispatchOrderRequest struct {
	DriverID        string `json:"driverId"`
	Override        bool   `json:"override"`
	ConfirmReassign bool   `json:"confirmReassign"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

// ActiveOrderResponse is one in-flight order in the board view.
// DriverPayoutCents appears once the order is priced and held by a driver.
type ActiveOrderResponse struct {
	ID                string     `json:"id"`
	Reference         string     `json:"reference"`
	Status            string     `json:"status"`
	DriverID          *string    `json:"driverId,omitempty"`
	PickupText        string     `json:"pickupText"`
	DeliveryText      string     `json:"deliveryText"`
	Vehicle           string     `json:"vehicle"`
	Formula           *string    `json:"formula,omitempty"`
	PriceHTCents      *int64     `json:"priceHtCents,omitempty"`
	DriverPayoutCents *int64     `json:"driverPayoutCents,omitempty"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

func activeOrderFromQuery(o queries.GetActiveOrdersQueryResponse) ActiveOrderResponse {
	return ActiveOrderResponse{
		ID:                o.ID.String(),
		Reference:         o.Reference,
		Status:            o.Status,
		DriverID:          uuidToString(o.DriverID),
		PickupText:        o.PickupText,
		DeliveryText:      o.DeliveryText,
		Vehicle:           o.Vehicle,
		Formula:           o.Formula,
		PriceHTCents:      o.PriceHTCents,
		DriverPayoutCents: o.DriverPayoutCents,
		Deadline:          o.Deadline,
		CreatedAt:         o.CreatedAt,
	}
}

// LateOrderResponse is one overdue order. LateBySeconds counts whole seconds
// past the deadline at query time.
type LateOrderResponse struct {
	ID            string    `json:"id"`
	Reference     string    `json:"reference"`
	DriverID      *string   `json:"driverId,omitempty"`
	Deadline      time.Time `json:"deadline"`
	LateBySeconds int64     `json:"lateBySeconds"`
}

func lateOrderFromQuery(o queries.GetLateOrdersQueryResponse) LateOrderResponse {
	return LateOrderResponse{
		ID:            o.ID.String(),
		Reference:     o.Reference,
		DriverID:      uuidToString(o.DriverID),
		Deadline:      o.Deadline,
		LateBySeconds: int64(o.LateBy.Seconds()),
	}
}

// OnlineDriverResponse is one dispatchable driver.
type OnlineDriverResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Vehicle   string `json:"vehicle"`
}

func onlineDriverFromQuery(d queries.GetOnlineDriversQueryResponse) OnlineDriverResponse {
	return OnlineDriverResponse{
		ID:        d.ID.String(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Vehicle:   d.Vehicle,
	}
}

// AddressSuggestionResponse is one autocomplete suggestion. Curated entries
// come straight from the city table and carry no coordinates.
type AddressSuggestionResponse struct {
	Label      string   `json:"label"`
	City       string   `json:"city"`
	PostalCode string   `json:"postalCode"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Curated    bool     `json:"curated"`
}

func suggestionFromQuery(s queries.AddressSuggestion) AddressSuggestionResponse {
	return AddressSuggestionResponse{
		Label:      s.Label,
		City:       s.City,
		PostalCode: s.PostalCode,
		Latitude:   s.Latitude,
		Longitude:  s.Longitude,
		Curated:    s.Curated,
	}
}

func uuidToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
