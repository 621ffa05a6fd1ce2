package service

import (
	"context"
	"testing"

	"github.com/Ishowar84/urban-plate-backend/internal/apperror"
	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/contract"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the persistence layer. They understand just the
// specifications the gateway actually issues.

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.orders[order.Id] = order
	return nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	r.orders[order.Id] = order
	return nil
}

func (r *fakeOrderRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Order, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			if order, found := r.orders[byId.ID]; found {
				return order, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	var all []*entity.Order
	for _, order := range r.orders {
		all = append(all, order)
	}
	return all, nil
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	clone := *message
	r.messages = append(r.messages, &clone)
	return nil
}

func (r *fakeChatRepo) Update(ctx context.Context, message *entity.ChatMessage) error {
	for i, existing := range r.messages {
		if existing.Id == message.Id {
			clone := *message
			r.messages[i] = &clone
			return nil
		}
	}
	return nil
}

func (r *fakeChatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	kept := r.messages[:0]
	for _, existing := range r.messages {
		if existing.Id != id {
			kept = append(kept, existing)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatRepo) DeleteByOrderId(ctx context.Context, orderId uuid.UUID) error {
	kept := r.messages[:0]
	for _, existing := range r.messages {
		if existing.OrderId != orderId {
			kept = append(kept, existing)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatMessage, error) {
	for _, spec := range specs {
		if byId, ok := spec.(specification.ByID); ok {
			for _, existing := range r.messages {
				if existing.Id == byId.ID {
					clone := *existing
					return &clone, nil
				}
			}
		}
	}
	return nil, nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var matched []*entity.ChatMessage
	for _, spec := range specs {
		if byOrder, ok := spec.(specification.ByOrderID); ok {
			for _, existing := range r.messages {
				if existing.OrderId == byOrder.OrderID {
					clone := *existing
					matched = append(matched, &clone)
				}
			}
		}
	}
	return matched, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matched, _ := r.FindAll(ctx, specs...)
	return int64(len(matched)), nil
}

type fakeUnitOfWork struct {
	orders      *fakeOrderRepo
	chats       *fakeChatRepo
	restaurants *fakeRestaurantRepo
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }
func (u *fakeUnitOfWork) RestaurantRepository() contract.RestaurantRepository {
	return u.restaurants
}
func (u *fakeUnitOfWork) OrderRepository() contract.OrderRepository { return u.orders }
func (u *fakeUnitOfWork) ChatMessageRepository() contract.ChatMessageRepository {
	return u.chats
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type recordedBroadcast struct {
	orderId uuid.UUID
	payload interface{}
}

type fakeBroadcaster struct {
	events []recordedBroadcast
	// onBroadcast lets a test observe state at the instant of fan-out.
	onBroadcast func()
}

func (b *fakeBroadcaster) Broadcast(orderId uuid.UUID, payload interface{}) {
	if b.onBroadcast != nil {
		b.onBroadcast()
	}
	b.events = append(b.events, recordedBroadcast{orderId: orderId, payload: payload})
}

type chatFixture struct {
	service     IChatService
	orders      *fakeOrderRepo
	chats       *fakeChatRepo
	broadcaster *fakeBroadcaster
}

func newChatFixture() *chatFixture {
	orders := &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
	chats := &fakeChatRepo{}
	broadcaster := &fakeBroadcaster{}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{orders: orders, chats: chats}}
	return &chatFixture{
		service:     NewChatService(factory, broadcaster, &nopLogger{}),
		orders:      orders,
		chats:       chats,
		broadcaster: broadcaster,
	}
}

func (f *chatFixture) addOrder(customerId uuid.UUID, status entity.OrderStatus) *entity.Order {
	order := &entity.Order{Id: uuid.New(), CustomerId: customerId, Status: status}
	f.orders.orders[order.Id] = order
	return order
}

func TestChatServiceSendThenHistory(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusPending)

	sent, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "where is my order"})
	require.NoError(t, err)
	assert.Equal(t, "where is my order", sent.Message)
	assert.Equal(t, "user", sent.SenderType)
	assert.NotEmpty(t, sent.Timestamp)

	history, err := f.service.GetHistory(context.Background(), customer, order.Id)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, sent.Id, history[0].Id)
	assert.Equal(t, sent.Message, history[0].Message)
}

func TestChatServiceBroadcastAfterPersist(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusCooking)

	persistedAtBroadcast := -1
	f.broadcaster.onBroadcast = func() {
		persistedAtBroadcast = len(f.chats.messages)
	}

	_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, 1, persistedAtBroadcast, "fan-out must see the row already written")
	require.Len(t, f.broadcaster.events, 1)
	assert.Equal(t, order.Id, f.broadcaster.events[0].orderId)

	broadcast, ok := f.broadcaster.events[0].payload.(dto.ChatBroadcast)
	require.True(t, ok)
	assert.Equal(t, "hello", broadcast.Message)
	assert.Equal(t, "user", broadcast.SenderType)
}

func TestChatServiceClosedOrderRejectsSendAndHistory(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()

	for _, status := range []entity.OrderStatus{entity.OrderStatusDelivered, entity.OrderStatusCancelled} {
		order := f.addOrder(customer, status)

		_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
			&dto.SendMessageRequest{Message: "too late"})
		assert.True(t, apperror.IsKind(err, apperror.KindConflict), "send on %s", status)

		_, err = f.service.GetHistory(context.Background(), customer, order.Id)
		assert.True(t, apperror.IsKind(err, apperror.KindConflict), "history on %s", status)
	}
	assert.Empty(t, f.broadcaster.events)
}

func TestChatServiceUnknownOrder(t *testing.T) {
	f := newChatFixture()

	_, err := f.service.GetHistory(context.Background(), uuid.New(), uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))

	_, err = f.service.Send(context.Background(), uuid.New(), uuid.New(), entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "hi"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChatServiceForeignPrincipalDenied(t *testing.T) {
	f := newChatFixture()
	order := f.addOrder(uuid.New(), entity.OrderStatusPending)

	_, err := f.service.GetHistory(context.Background(), uuid.New(), order.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
}

func TestChatServiceEditOwnedByOrderCustomer(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusPending)

	// A restaurant-attributed line is still governed by the order's customer.
	_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeRestaurant,
		&dto.SendMessageRequest{Message: "5 more minutes"})
	require.NoError(t, err)
	msgId := f.chats.messages[0].Id
	f.broadcaster.events = nil

	edited, err := f.service.Edit(context.Background(), customer, msgId,
		&dto.EditMessageRequest{Message: "10 more minutes"})
	require.NoError(t, err)
	assert.Equal(t, "10 more minutes", edited.Message)
	assert.Equal(t, "10 more minutes", f.chats.messages[0].Message)

	require.Len(t, f.broadcaster.events, 1)
	event, ok := f.broadcaster.events[0].payload.(dto.ChatEditEvent)
	require.True(t, ok)
	assert.Equal(t, "edit", event.Event)
	assert.Equal(t, msgId, event.MessageId)
	assert.Equal(t, "10 more minutes", event.NewMessage)

	// Anyone else is rejected without regard to who authored the line.
	_, err = f.service.Edit(context.Background(), uuid.New(), msgId,
		&dto.EditMessageRequest{Message: "hijacked"})
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
	assert.Equal(t, "10 more minutes", f.chats.messages[0].Message)
}

func TestChatServiceEditUnknownMessage(t *testing.T) {
	f := newChatFixture()

	_, err := f.service.Edit(context.Background(), uuid.New(), uuid.New(),
		&dto.EditMessageRequest{Message: "nope"})
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChatServiceDelete(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusReady)

	_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "cancel that"})
	require.NoError(t, err)
	msgId := f.chats.messages[0].Id
	f.broadcaster.events = nil

	err = f.service.Delete(context.Background(), uuid.New(), msgId)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))
	require.Len(t, f.chats.messages, 1)

	err = f.service.Delete(context.Background(), customer, msgId)
	require.NoError(t, err)
	assert.Empty(t, f.chats.messages)

	require.Len(t, f.broadcaster.events, 1)
	event, ok := f.broadcaster.events[0].payload.(dto.ChatDeleteEvent)
	require.True(t, ok)
	assert.Equal(t, "delete", event.Event)
	assert.Equal(t, msgId, event.MessageId)

	err = f.service.Delete(context.Background(), customer, msgId)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChatServiceStreamInbound(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusCooking)

	err := f.service.StreamInbound(context.Background(), order.Id, entity.SenderTypeRestaurant, "on its way")
	require.NoError(t, err)

	require.Len(t, f.chats.messages, 1)
	assert.Equal(t, entity.SenderTypeRestaurant, f.chats.messages[0].SenderType)

	require.Len(t, f.broadcaster.events, 1)
	broadcast := f.broadcaster.events[0].payload.(dto.ChatBroadcast)
	assert.Equal(t, "restaurant", broadcast.SenderType)
	assert.Equal(t, "on its way", broadcast.Message)
}

func TestChatServiceAuthorizeStream(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	open := f.addOrder(customer, entity.OrderStatusPending)
	closed := f.addOrder(customer, entity.OrderStatusDelivered)

	order, err := f.service.AuthorizeStream(context.Background(), customer, open.Id)
	require.NoError(t, err)
	assert.Equal(t, open.Id, order.Id)

	_, err = f.service.AuthorizeStream(context.Background(), customer, closed.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))

	_, err = f.service.AuthorizeStream(context.Background(), uuid.New(), open.Id)
	assert.True(t, apperror.IsKind(err, apperror.KindAuthorization))

	_, err = f.service.AuthorizeStream(context.Background(), customer, uuid.New())
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestChatServiceTerminalStatusWipesHistory(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusReady)
	other := f.addOrder(customer, entity.OrderStatusPending)

	for _, text := range []string{"a", "b", "c"} {
		_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
			&dto.SendMessageRequest{Message: text})
		require.NoError(t, err)
	}
	_, err := f.service.Send(context.Background(), customer, other.Id, entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "unrelated"})
	require.NoError(t, err)

	order.Status = entity.OrderStatusDelivered
	require.NoError(t, f.service.OnOrderStatusChanged(context.Background(), order))

	remaining, err := f.chats.FindAll(context.Background(), specification.ByOrderID{OrderID: order.Id})
	require.NoError(t, err)
	assert.Empty(t, remaining)

	kept, err := f.chats.FindAll(context.Background(), specification.ByOrderID{OrderID: other.Id})
	require.NoError(t, err)
	assert.Len(t, kept, 1, "other orders keep their history")
}

func TestChatServiceNonTerminalStatusKeepsHistory(t *testing.T) {
	f := newChatFixture()
	customer := uuid.New()
	order := f.addOrder(customer, entity.OrderStatusPending)

	_, err := f.service.Send(context.Background(), customer, order.Id, entity.SenderTypeUser,
		&dto.SendMessageRequest{Message: "still here"})
	require.NoError(t, err)

	order.Status = entity.OrderStatusCooking
	require.NoError(t, f.service.OnOrderStatusChanged(context.Background(), order))
	assert.Len(t, f.chats.messages, 1)
}
