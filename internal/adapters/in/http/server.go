package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
)

// Server implements the HTTP API for handling dispatch requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler   commands.CreateOrderCommandHandler
	acceptOrderHandler   commands.AcceptOrderCommandHandler
	dispatchOrderHandler commands.DispatchOrderCommandHandler
	pickUpOrderHandler   commands.PickUpOrderCommandHandler
	deliverOrderHandler  commands.DeliverOrderCommandHandler
	cancelOrderHandler   commands.CancelOrderCommandHandler

	// Query handlers
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getLateOrdersHandler    queries.GetLateOrdersQueryHandler
	getOnlineDriversHandler queries.GetOnlineDriversQueryHandler
	suggestAddressesHandler queries.SuggestAddressesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	pickUpOrderHandler commands.PickUpOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getLateOrdersHandler queries.GetLateOrdersQueryHandler,
	getOnlineDriversHandler queries.GetOnlineDriversQueryHandler,
	suggestAddressesHandler queries.SuggestAddressesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		acceptOrderHandler:      acceptOrderHandler,
		dispatchOrderHandler:    dispatchOrderHandler,
		pickUpOrderHandler:      pickUpOrderHandler,
		deliverOrderHandler:     deliverOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getLateOrdersHandler:    getLateOrdersHandler,
		getOnlineDriversHandler: getOnlineDriversHandler,
		suggestAddressesHandler: suggestAddressesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:id/accept", s.AcceptOrder)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/pickup", s.PickUpOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/late", s.GetLateOrders)
	api.GET("/drivers/online", s.GetOnlineDrivers)
	api.GET("/addresses/suggest", s.SuggestAddresses)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders - commits a complete order draft.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	draft, err := request.toDraft()
	if err != nil {
		return writeMappedError(ctx, err)
	}

	cmd, err := draft.ToCommand()
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID: cmd.OrderID().String(),
	})
}

// AcceptOrder handles POST /api/v1/orders/:id/accept.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID)
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch - assigns or
// reassigns a driver. Reassigning over another driver requires the
// confirmReassign flag; the 409 response carries requiresConfirmation so
// clients know a retry with the flag set will succeed.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request DispatchOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	driverID, err := kernel.UUIDFromString(request.DriverID)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid driver id")
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID, driverID, request.Override, request.ConfirmReassign)
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// PickUpOrder handles POST /api/v1/orders/:id/pickup.
func (s *Server) PickUpOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewPickUpOrderCommand(orderID)
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.pickUpOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var request CancelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, request.Reason)
	if err != nil {
		return writeMappedError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeMappedError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]ActiveOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = activeOrderFromQuery(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetLateOrders handles GET /api/v1/orders/late.
func (s *Server) GetLateOrders(ctx echo.Context) error {
	query := queries.NewGetLateOrdersQuery(time.Now().UTC())

	orders, err := s.getLateOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve late orders")
	}

	response := make([]LateOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = lateOrderFromQuery(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOnlineDrivers handles GET /api/v1/drivers/online.
func (s *Server) GetOnlineDrivers(ctx echo.Context) error {
	query := queries.NewGetOnlineDriversQuery()

	drivers, err := s.getOnlineDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve drivers")
	}

	response := make([]OnlineDriverResponse, len(drivers))
	for i, d := range drivers {
		response[i] = onlineDriverFromQuery(d)
	}
	return ctx.JSON(http.StatusOK, response)
}

// SuggestAddresses handles GET /api/v1/addresses/suggest?q= - address
// autocompletion backed by the curated city table and the geocoding provider.
func (s *Server) SuggestAddresses(ctx echo.Context) error {
	query := queries.NewSuggestAddressesQuery(ctx.QueryParam("q"))

	suggestions, err := s.suggestAddressesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, http.StatusInternalServerError, "Failed to retrieve suggestions")
	}

	response := make([]AddressSuggestionResponse, len(suggestions))
	for i, suggestion := range suggestions {
		response[i] = suggestionFromQuery(suggestion)
	}
	return ctx.JSON(http.StatusOK, response)
}

func orderIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// writeMappedError translates application and domain errors into HTTP status
// codes: missing/invalid input 400, unknown object 404, state conflicts 409.
func writeMappedError(ctx echo.Context, err error) error {
	var reassignment *order.ReassignmentError
	if errors.As(err, &reassignment) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:                 http.StatusConflict,
			Message:              err.Error(),
			RequiresConfirmation: true,
			PreviousDriverID:     reassignment.PreviousDriverID.String(),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, commands.ErrDriverIsOffline):
		return writeError(ctx, http.StatusConflict, err.Error())
	case isTransitionConflict(err):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrFormulaIsNotEligible):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		return writeError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// isTransitionConflict distinguishes a rejected state-machine transition
// (conflict with current order state) from plain input validation. Transition
// rejections all come out of the domain as invalid "status" values.
func isTransitionConflict(err error) bool {
	var invalid *errs.ValueIsInvalidError
	return errors.As(err, &invalid) && invalid.ParamName == "status"
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
