// Package ws implements the WebSocket notification channel for live order
// status updates.
//
// Each order id is a topic. A connected client subscribes by sending a join
// message naming the order id and from then on receives every status event
// published on that topic while it stays connected. There is no replay:
// events published before the join, or while a client's send buffer is
// full, are gone. Delivery is at-most-once per connected subscriber.
//
// The Hub implements ports.StatusPublisher, so the command layer publishes
// through it without knowing the transport.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"eatfit/internal/core/domain/model/kernel"
	"eatfit/internal/core/domain/model/order"
)

// joinMessage is the inbound frame a client sends to manage subscriptions.
// Action is "join" or "leave"; OrderID names the topic.
type joinMessage struct {
	Action  string `json:"action"`
	OrderID string `json:"orderId"`
}

// statusEvent is the outbound frame broadcast on an order's topic.
type statusEvent struct {
	Event   string `json:"event"`
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}

const statusUpdateEvent = "status-update"

// Hub maintains the set of active connections and their topic subscriptions,
// and fans status events out to the subscribers of the affected order.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	logger     *slog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
	rooms   map[kernel.UUID]map[*Client]struct{}
}

// NewHub creates a hub with no connections. Run must be started before
// clients are served.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger.With("component", "ws_hub"),
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[kernel.UUID]map[*Client]struct{}),
	}
}

// Run processes connect and disconnect events until ctx is cancelled.
// Intended to run in its own goroutine for the lifetime of the process.
// Cancelling drops every connected client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("Client connected")

		case client := <-h.unregister:
			h.drop(client)
			h.logger.Debug("Client disconnected")

		case <-ctx.Done():
			h.mu.RLock()
			remaining := make([]*Client, 0, len(h.clients))
			for client := range h.clients {
				remaining = append(remaining, client)
			}
			h.mu.RUnlock()

			for _, client := range remaining {
				h.drop(client)
			}
			return
		}
	}
}

// join subscribes a client to an order's topic. The order does not have to
// exist: a subscriber may join before the order is visible to it, it simply
// receives nothing until an event is published.
func (h *Hub) join(client *Client, orderID kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[orderID]
	if !ok {
		room = make(map[*Client]struct{})
		h.rooms[orderID] = room
	}
	room[client] = struct{}{}
	client.rooms[orderID] = struct{}{}
}

// leave unsubscribes a client from an order's topic.
func (h *Hub) leave(client *Client, orderID kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeFromRoom(client, orderID)
	delete(client.rooms, orderID)
}

// drop removes a client from every topic it joined and closes its send
// channel, terminating the write pump.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if client.closed {
		return
	}

	for orderID := range client.rooms {
		h.removeFromRoom(client, orderID)
	}
	client.rooms = make(map[kernel.UUID]struct{})
	delete(h.clients, client)
	client.closed = true
	close(client.send)
}

// removeFromRoom must be called with h.mu held.
func (h *Hub) removeFromRoom(client *Client, orderID kernel.UUID) {
	room, ok := h.rooms[orderID]
	if !ok {
		return
	}

	delete(room, client)
	if len(room) == 0 {
		delete(h.rooms, orderID)
	}
}

// PublishStatus broadcasts a status event to every subscriber of the
// order's topic. A subscriber whose send buffer is full misses the event;
// delivery is best effort and never blocks the caller.
func (h *Hub) PublishStatus(ctx context.Context, orderID kernel.UUID, status order.Status) {
	payload, err := json.Marshal(statusEvent{
		Event:   statusUpdateEvent,
		OrderID: orderID.String(),
		Status:  status.String(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to encode status event",
			"orderId", orderID.String(), "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.rooms[orderID] {
		select {
		case client.send <- payload:
		default:
			h.logger.WarnContext(ctx, "Subscriber buffer full, dropping status event",
				"orderId", orderID.String(), "status", status.String())
		}
	}
}

// Subscribers reports how many clients are joined to an order's topic.
func (h *Hub) Subscribers(orderID kernel.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.rooms[orderID])
}
