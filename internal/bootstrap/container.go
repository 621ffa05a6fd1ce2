package bootstrap

import (
	"context"
	"log"

	"github.com/Ishowar84/urban-plate-backend/internal/config"
	"github.com/Ishowar84/urban-plate-backend/internal/controller"
	"github.com/Ishowar84/urban-plate-backend/internal/handler"
	"github.com/Ishowar84/urban-plate-backend/internal/pkg/logger"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/memory"
	"github.com/Ishowar84/urban-plate-backend/internal/repository/unitofwork"
	"github.com/Ishowar84/urban-plate-backend/internal/service"
	"github.com/Ishowar84/urban-plate-backend/internal/websocket"
	pktNats "github.com/Ishowar84/urban-plate-backend/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	UserController       controller.IUserController
	RestaurantController controller.IRestaurantController
	OrderController      controller.IOrderController
	ChatController       controller.IChatController

	// Background services (exposed for main.go to run)
	KitchenService service.IKitchenService

	// WebSockets
	ChatStreamHandler *handler.ChatStreamHandler
	Registry          *websocket.Registry
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}

	// Connection registry
	chatLogger := logger.NewIsolatedLogger(cfg.App.ChatLogFilePath)
	registry := websocket.NewRegistry(rdb, chatLogger)
	registry.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Kitchen.Topic, pubSub)

	authService := service.NewAuthService(uowFactory, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)
	restaurantService := service.NewRestaurantService(uowFactory, sysLogger)
	chatService := service.NewChatService(uowFactory, registry, chatLogger)

	var eventPublisher service.EventPublisher
	if natsPub != nil {
		eventPublisher = natsPub
	}
	orderService := service.NewOrderService(uowFactory, publisherService, eventPublisher, chatService, sysLogger)

	simulationTracker := memory.NewSimulationTracker()
	kitchenService := service.NewKitchenService(
		pubSub,
		cfg.Kitchen.Topic,
		cfg.Kitchen.StageDelay,
		uowFactory,
		orderService,
		simulationTracker,
	)

	// Event audit worker
	if natsSub != nil {
		auditService := service.NewEventAuditService(natsSub, sysLogger)
		if err := auditService.Start(); err != nil {
			log.Printf("[WARN] Failed to start event audit worker: %v", err)
		}
	}

	// Websocket handler
	chatStreamHandler := handler.NewChatStreamHandler(chatService, registry, chatLogger)

	// 4. Controllers
	return &Container{
		UserController:       controller.NewUserController(authService, userService),
		RestaurantController: controller.NewRestaurantController(restaurantService),
		OrderController:      controller.NewOrderController(orderService),
		ChatController:       controller.NewChatController(chatService),

		KitchenService: kitchenService,

		ChatStreamHandler: chatStreamHandler,
		Registry:          registry,
	}
}
