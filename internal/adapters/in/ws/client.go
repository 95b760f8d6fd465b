package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"eatfit/internal/core/domain/model/kernel"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size; clients only send small join frames.
	maxMessageSize = 512

	// Outbound buffer per client. A full buffer drops events rather
	// than blocking publishers.
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browser clients are served from a separate origin.
	CheckOrigin: func(*http.Request) bool { return true },
}

// Client represents one WebSocket connection and its topic subscriptions.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// rooms and closed are guarded by hub.mu.
	rooms  map[kernel.UUID]struct{}
	closed bool
}

// ServeWS returns an echo handler that upgrades the request to a WebSocket
// connection and attaches it to the hub.
func ServeWS(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			// Upgrade already wrote the failure response.
			return nil
		}

		client := &Client{
			hub:   hub,
			conn:  conn,
			send:  make(chan []byte, sendBufferSize),
			rooms: make(map[kernel.UUID]struct{}),
		}
		hub.register <- client

		go client.writePump()
		go client.readPump()

		return nil
	}
}

// readPump reads subscription frames from the connection and keeps the
// read deadline alive via pongs. One goroutine per connection.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg joinMessage
		if err = json.Unmarshal(raw, &msg); err != nil {
			c.hub.logger.Debug("Ignoring malformed client frame", "error", err)
			continue
		}

		orderID, err := kernel.UUIDFromString(msg.OrderID)
		if err != nil {
			c.hub.logger.Debug("Ignoring frame with invalid order id", "orderId", msg.OrderID)
			continue
		}

		switch msg.Action {
		case "join":
			c.hub.join(c, orderID)
		case "leave":
			c.hub.leave(c, orderID)
		default:
			c.hub.logger.Debug("Ignoring frame with unknown action", "action", msg.Action)
		}
	}
}

// writePump forwards events from the send channel to the connection and
// pings the peer to keep it alive. One goroutine per connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub dropped the client.
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
