package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Ishowar84/urban-plate-backend/internal/dto"
	"github.com/Ishowar84/urban-plate-backend/internal/entity"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/memory"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/specification"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IKitchenService consumes cook-order messages and walks each order through
// the kitchen stages on a timer.
type IKitchenService interface {
	Consume(ctx context.Context) error
}

type kitchenService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	stageDelay   time.Duration
	uowFactory   unitofwork.RepositoryFactory
	orderService IOrderService
	tracker      *memory.SimulationTracker
}

func NewKitchenService(
	pubSub *gochannel.GoChannel,
	topicName string,
	stageDelay time.Duration,
	uowFactory unitofwork.RepositoryFactory,
	orderService IOrderService,
	tracker *memory.SimulationTracker,
) IKitchenService {
	return &kitchenService{
		pubSub:       pubSub,
		topicName:    topicName,
		stageDelay:   stageDelay,
		uowFactory:   uowFactory,
		orderService: orderService,
		tracker:      tracker,
	}
}

func (ks *kitchenService) Consume(ctx context.Context) error {
	messages, err := ks.pubSub.Subscribe(ctx, ks.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ks.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ks *kitchenService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.CookOrderMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal cook-order message: %v", err)
		msg.Ack() // invalid payload, retrying cannot help
		return
	}

	if !ks.tracker.Start(payload.OrderId) {
		log.Printf("[WARN] Simulation already in flight for order %s, skipping", payload.OrderId)
		msg.Ack()
		return
	}

	// The simulation sleeps between stages, so run it off the consumer loop.
	go func() {
		defer ks.tracker.Finish(payload.OrderId)
		ks.simulate(ctx, payload)
	}()

	msg.Ack()
}

// simulate advances the order pending -> cooking -> ready, one stage per
// delay tick. Before each transition the order is reloaded and the run
// aborts unless it still sits in the expected prior stage: an order
// cancelled or delivered mid-simulation must never leave its terminal state.
func (ks *kitchenService) simulate(ctx context.Context, payload dto.CookOrderMessage) {
	log.Printf("[INFO] Cooking simulation started for order %s", payload.OrderId)

	stages := []struct {
		from entity.OrderStatus
		to   entity.OrderStatus
	}{
		{entity.OrderStatusPending, entity.OrderStatusCooking},
		{entity.OrderStatusCooking, entity.OrderStatusReady},
	}
	for _, stage := range stages {
		select {
		case <-ctx.Done():
			return
		case <-time.After(ks.stageDelay):
		}

		uow := ks.uowFactory.NewUnitOfWork(ctx)
		order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: payload.OrderId})
		if err != nil {
			log.Printf("[ERROR] Failed to reload order %s: %v", payload.OrderId, err)
			return
		}
		if order == nil {
			log.Printf("[WARN] Order %s vanished mid-simulation, aborting", payload.OrderId)
			return
		}
		if order.Status != stage.from {
			log.Printf("[WARN] Order %s left the kitchen flow (status %s, expected %s), aborting simulation",
				payload.OrderId, order.Status, stage.from)
			return
		}

		if _, err := ks.orderService.UpdateStatus(ctx, payload.OrderId, &dto.UpdateOrderStatusRequest{
			Status: string(stage.to),
		}); err != nil {
			log.Printf("[ERROR] Failed to move order %s to %s: %v", payload.OrderId, stage.to, err)
			return
		}
		log.Printf("[INFO] Order %s is now %s", payload.OrderId, stage.to)
	}
}
