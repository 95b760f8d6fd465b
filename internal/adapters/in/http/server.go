// Package http exposes the order API over HTTP.
//
// Handlers validate request structure, translate core errors to status
// codes, and delegate all business behavior to command and query handlers.
package http

import (
	"errors"
	"net/http"
	"time"

	"eatfit/internal/core/application/usecases/commands"
	"eatfit/internal/core/application/usecases/queries"
	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
	"eatfit/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItem is one order line on the wire.
type OrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is the wire representation of an order.
type Order struct {
	ID              string      `json:"id"`
	OwnerID         string      `json:"ownerId"`
	Items           []OrderItem `json:"items"`
	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	OwnerID       string      `json:"ownerId"`
	Items         []OrderItem `json:"items"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
}

// StatusUpdate is the request body for changing an order's status.
type StatusUpdate struct {
	Status string `json:"status"`
}

// Server handles the order API endpoints.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersByOwnerHandler queries.GetOrdersByOwnerQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		updateStatusHandler:     updateStatusHandler,
		getOrderHandler:         getOrderHandler,
		getOrdersByOwnerHandler: getOrdersByOwnerHandler,
	}
}

// RegisterRoutes attaches the order API to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/orders", s.CreateOrder)
	e.POST("/orders/:id/status", s.UpdateOrderStatus)
	e.GET("/orders/:id", s.GetOrder)
	e.GET("/orders/owner/:ownerId", s.GetOrdersByOwner)
}

// CreateOrder handles POST /orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(newOrder.OwnerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Valid ownerId is required")
	}

	paymentMethod, err := order.PaymentMethodFromString(newOrder.PaymentMethod)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown payment method: "+newOrder.PaymentMethod)
	}

	items := make([]order.Item, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		item, itemErr := order.NewItem(line.Name, line.Quantity, line.Size, line.UnitPrice)
		if itemErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "Invalid order item: "+itemErr.Error())
		}
		items = append(items, item)
	}

	// The order id is assigned at the boundary so the response can
	// reference it regardless of storage behavior.
	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(orderID, ownerID, items, newOrder.Address, paymentMethod)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, map[string]any{
		"message": "Order placed successfully",
		"orderId": orderID.String(),
	})
}

// UpdateOrderStatus handles POST /orders/:id/status - changes an order's status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	// A malformed id cannot name any stored order.
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	}

	var update StatusUpdate
	if err = ctx.Bind(&update); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(update.Status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Unknown status: "+update.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid status update: "+err.Error())
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"message": "Order status updated",
		"order":   fromDomain(updated),
	})
}

// GetOrder handles GET /orders/:id - retrieves a single order for its owner.
func (s *Server) GetOrder(ctx echo.Context) error {
	rawOwnerID := ctx.QueryParam("ownerId")
	if rawOwnerID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "ownerId is required")
	}

	callerID, err := kernel.UUIDFromString(rawOwnerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Valid ownerId is required")
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	}

	query, err := queries.NewGetOrderQuery(orderID, callerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(err, errs.ErrForbidden):
			return errorResponse(ctx, http.StatusForbidden, "Order belongs to a different user")
		default:
			return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
		}
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"order": fromQueryResponse(response),
	})
}

// GetOrdersByOwner handles GET /orders/owner/:ownerId - retrieves a user's
// order history, newest first.
func (s *Server) GetOrdersByOwner(ctx echo.Context) error {
	ownerID, err := kernel.UUIDFromString(ctx.Param("ownerId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Valid ownerId is required")
	}

	query, err := queries.NewGetOrdersByOwnerQuery(ownerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	responses, err := s.getOrdersByOwnerHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	orders := make([]Order, 0, len(responses))
	for _, response := range responses {
		orders = append(orders, fromQueryResponse(response))
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"orders": orders,
	})
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}

// fromQueryResponse maps the read model to the wire representation.
func fromQueryResponse(response queries.OrderResponse) Order {
	items := make([]OrderItem, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, OrderItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			Size:      item.Size,
			UnitPrice: item.UnitPrice,
		})
	}

	return Order{
		ID:              response.ID.String(),
		OwnerID:         response.OwnerID.String(),
		Items:           items,
		DeliveryAddress: response.DeliveryAddress,
		PaymentMethod:   response.PaymentMethod.String(),
		Status:          response.Status.String(),
		CreatedAt:       response.CreatedAt,
		UpdatedAt:       response.UpdatedAt,
	}
}

// fromDomain maps an order aggregate to the wire representation.
func fromDomain(aggregate *order.Order) Order {
	items := make([]OrderItem, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItem{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Size:      item.Size(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return Order{
		ID:              aggregate.ID().String(),
		OwnerID:         aggregate.OwnerID().String(),
		Items:           items,
		DeliveryAddress: aggregate.DeliveryAddress(),
		PaymentMethod:   aggregate.PaymentMethod().String(),
		Status:          aggregate.Status().String(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}
