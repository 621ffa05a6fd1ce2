package websocket

import (
	"encoding/json"
	"testing"

	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

var _ logger.ILogger = nopLogger{}

func newTestClient(reg *Registry, orderId uuid.UUID) *Client {
	// No underlying conn: broadcasts only touch the Send channel.
	return NewClient(reg, nil, orderId, entity.SenderTypeUser)
}

func TestRegisterAndBroadcast(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderId := uuid.New()

	a := newTestClient(reg, orderId)
	b := newTestClient(reg, orderId)
	reg.Register(orderId, a)
	reg.Register(orderId, b)
	assert.Equal(t, 2, reg.Count(orderId))

	reg.Broadcast(orderId, map[string]string{"message": "hello"})

	for _, c := range []*Client{a, b} {
		data := <-c.Send
		var got map[string]string
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "hello", got["message"])
	}
}

func TestBroadcastScopedToOrder(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderA, orderB := uuid.New(), uuid.New()

	a := newTestClient(reg, orderA)
	b := newTestClient(reg, orderB)
	reg.Register(orderA, a)
	reg.Register(orderB, b)

	reg.Broadcast(orderA, map[string]string{"message": "only for A"})

	assert.Len(t, a.Send, 1)
	assert.Len(t, b.Send, 0)
}

func TestBroadcastOrderPreservedPerConnection(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderId := uuid.New()

	c := newTestClient(reg, orderId)
	reg.Register(orderId, c)

	for i := 0; i < 5; i++ {
		reg.Broadcast(orderId, map[string]int{"seq": i})
	}

	for i := 0; i < 5; i++ {
		var got map[string]int
		require.NoError(t, json.Unmarshal(<-c.Send, &got))
		assert.Equal(t, i, got["seq"])
	}
}

func TestUnregisterIdempotent(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderId := uuid.New()

	a := newTestClient(reg, orderId)
	b := newTestClient(reg, orderId)
	reg.Register(orderId, a)
	reg.Register(orderId, b)

	reg.Unregister(orderId, a)
	assert.Equal(t, 1, reg.Count(orderId))

	// Second removal of the same client must not panic or shrink the bucket.
	assert.NotPanics(t, func() { reg.Unregister(orderId, a) })
	assert.Equal(t, 1, reg.Count(orderId))

	// Unknown order is a no-op too.
	assert.NotPanics(t, func() { reg.Unregister(uuid.New(), b) })
}

func TestUnregisterDropsEmptyBucket(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderId := uuid.New()

	c := newTestClient(reg, orderId)
	reg.Register(orderId, c)
	reg.Unregister(orderId, c)

	assert.Equal(t, 0, reg.Count(orderId))
	// Broadcast to an empty bucket is harmless.
	assert.NotPanics(t, func() { reg.Broadcast(orderId, map[string]string{"message": "nobody home"}) })
}

func TestBroadcastDropsSaturatedConnection(t *testing.T) {
	reg := NewRegistry(nil, nopLogger{})
	orderId := uuid.New()

	stuck := NewClient(reg, nil, orderId, entity.SenderTypeUser)
	stuck.Send = make(chan []byte) // no buffer, nobody reading
	healthy := newTestClient(reg, orderId)
	reg.Register(orderId, stuck)
	reg.Register(orderId, healthy)

	reg.Broadcast(orderId, map[string]string{"message": "hi"})

	// The saturated connection is removed, the healthy one still delivered.
	assert.Equal(t, 1, reg.Count(orderId))
	assert.Len(t, healthy.Send, 1)
}
