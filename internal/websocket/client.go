package websocket

import (
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// InboundFunc handles one text frame received from the peer. Returning an
// error stops the receive loop and tears the connection down.
type InboundFunc func(text string) error

// Client is one live chat connection, bound to exactly one order and one
// authenticated principal for its whole lifetime.
type Client struct {
	Registry *Registry

	Conn *websocket.Conn

	OrderId    uuid.UUID
	SenderType entity.SenderType

	// Buffered channel of outbound frames.
	Send chan []byte
}

func NewClient(registry *Registry, conn *websocket.Conn, orderId uuid.UUID, senderType entity.SenderType) *Client {
	return &Client{
		Registry:   registry,
		Conn:       conn,
		OrderId:    orderId,
		SenderType: senderType,
		Send:       make(chan []byte, 256),
	}
}

// readPump pumps inbound frames into the sink until the peer disconnects or
// the transport errors. It owns teardown: unregister first so no broadcast
// targets a dead socket, then close the connection.
func (c *Client) readPump(inbound InboundFunc) {
	defer func() {
		c.Registry.Unregister(c.OrderId, c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.Registry.logger.Warn("Client", "Unexpected close", map[string]interface{}{"order_id": c.OrderId, "error": err})
			}
			break
		}
		if err := inbound(string(data)); err != nil {
			c.Registry.logger.Error("Client", "Inbound message rejected", map[string]interface{}{"order_id": c.OrderId, "error": err})
			break
		}
	}
}

// writePump pumps frames from the registry to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The registry closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Flush whatever queued up behind this frame.
			n := len(c.Send)
			for i := 0; i < n; i++ {
				w.Write(<-c.Send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Serve registers the client and runs both pumps. It blocks until the
// connection drops; the caller's goroutine doubles as the read loop.
func Serve(client *Client, inbound InboundFunc) {
	client.Registry.Register(client.OrderId, client)

	go client.writePump()
	client.readPump(inbound)
}
