package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "order_chat_events"

// Registry tracks the live chat connections per order. It is constructed
// once in the container and injected wherever broadcasts originate; it is
// never package-global. State is process memory only: a restart drops every
// connection and clients recover history through the store, not here.
type Registry struct {
	// order id -> open connections for that order
	clients map[uuid.UUID][]*Client

	mu sync.RWMutex

	// Optional Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Identifies this process on the cluster channel so it can skip its own
	// publishes; local delivery already happened, a second one would hand
	// every connection a duplicate event.
	instanceId string

	logger logger.ILogger
}

func NewRegistry(rdb *redis.Client, log logger.ILogger) *Registry {
	return &Registry{
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

// Run starts the cross-instance subscriber. No-op without Redis.
func (r *Registry) Run() {
	if r.rdb != nil {
		go r.subscribeToRedis()
	}
}

// Register adds a connection under its order's bucket, creating the bucket
// if absent.
func (r *Registry) Register(orderId uuid.UUID, client *Client) {
	r.mu.Lock()
	r.clients[orderId] = append(r.clients[orderId], client)
	r.mu.Unlock()
	r.logger.Info("Registry", "Client registered", map[string]interface{}{"order_id": orderId})
}

// Unregister removes a connection if present. Calling it for an absent
// connection is a no-op; the bucket is dropped once empty.
func (r *Registry) Unregister(orderId uuid.UUID, client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	clients, ok := r.clients[orderId]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			r.clients[orderId] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(r.clients[orderId]) == 0 {
		delete(r.clients, orderId)
		r.logger.Info("Registry", "Order bucket emptied", map[string]interface{}{"order_id": orderId})
	}
}

// Broadcast fans a payload out to every connection registered for the order.
// Delivery is best effort per connection: a connection that cannot take the
// payload is dropped without blocking the others.
func (r *Registry) Broadcast(orderId uuid.UUID, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		r.logger.Error("Registry", "Failed to marshal broadcast payload", map[string]interface{}{"error": err, "order_id": orderId})
		return
	}

	r.deliverLocal(orderId, data)

	// Other instances pick this up via the cluster channel.
	if r.rdb != nil {
		envelope, _ := json.Marshal(map[string]interface{}{
			"origin":   r.instanceId,
			"order_id": orderId.String(),
			"message":  json.RawMessage(data),
		})
		r.rdb.Publish(context.Background(), clusterChannel, envelope)
	}
}

// Count reports how many connections are registered for an order.
func (r *Registry) Count(orderId uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients[orderId])
}

func (r *Registry) deliverLocal(orderId uuid.UUID, data []byte) {
	r.mu.RLock()
	clients := r.clients[orderId]
	var dead []*Client
	for _, client := range clients {
		select {
		case client.Send <- data:
		default:
			r.logger.Warn("Registry", "Client send buffer full, dropping connection", map[string]interface{}{"order_id": orderId})
			dead = append(dead, client)
		}
	}
	r.mu.RUnlock()

	// Unregister after releasing the read lock.
	for _, client := range dead {
		r.Unregister(orderId, client)
	}
}

func (r *Registry) subscribeToRedis() {
	ctx := context.Background()
	pubsub := r.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Origin  string          `json:"origin"`
			OrderId string          `json:"order_id"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			r.logger.Warn("Registry", "Bad cluster event payload", map[string]interface{}{"error": err})
			continue
		}

		if payload.Origin == r.instanceId {
			continue
		}

		orderId, err := uuid.Parse(payload.OrderId)
		if err != nil {
			continue
		}

		// Deliver locally only; re-publishing would echo forever.
		r.deliverLocal(orderId, payload.Message)
	}
}
