package main

import (
	"context"
	"log"

	"github.com/Ishowar84/urban-plate-backend/internal/bootstrap"
	"github.com/Ishowar84/urban-plate-backend/internal/config"
	"github.com/Ishowar84/urban-plate-backend/internal/server"
	"github.com/Ishowar84/urban-plate-backend/internal/tracer"
	"github.com/Ishowar84/urban-plate-backend/pkg/database"
)

func main() {
	// 0. Initialize tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load configuration
	cfg := config.Load()

	// 2. Initialize database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap dependencies
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start background services
	go func() {
		log.Println("Background: Starting Kitchen Service...")
		if err := container.KitchenService.Consume(context.Background()); err != nil {
			log.Printf("Background Kitchen Error: %v", err)
		}
	}()

	// 5. Run server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
