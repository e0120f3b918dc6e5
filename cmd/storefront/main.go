package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/suhas-pr/kaladhaara/internal/auth"
	"github.com/suhas-pr/kaladhaara/internal/cart"
	"github.com/suhas-pr/kaladhaara/internal/catalog"
	"github.com/suhas-pr/kaladhaara/internal/config"
	"github.com/suhas-pr/kaladhaara/internal/db"
	"github.com/suhas-pr/kaladhaara/internal/events"
	"github.com/suhas-pr/kaladhaara/internal/httpapi"
	"github.com/suhas-pr/kaladhaara/internal/order"
)

func main() {
	logger := log.New(os.Stdout, "[storefront] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if err := db.RunMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("open db: %v", err)
	}
	defer database.Close()

	catalogRepo := catalog.NewRepository(database)
	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo)
	orderRepo := order.NewRepository(database)

	// The publisher is optional; without a broker checkout still commits.
	var publisher order.EventPublisher
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatalf("dial rabbit: %v", err)
		}
		defer conn.Close()

		p, err := events.NewPublisher(conn)
		if err != nil {
			logger.Fatalf("create publisher: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		logger.Println("RABBITMQ_URL not set, order events disabled")
	}

	orderSvc := order.NewService(orderRepo, publisher, logger)

	router := httpapi.NewRouter(
		httpapi.NewCatalogHandler(catalogRepo),
		httpapi.NewCartHandler(cartSvc),
		httpapi.NewOrderHandler(cartSvc, orderSvc, orderRepo),
		auth.NewMiddleware(cfg.AuthSecret),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Printf("storefront listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
}
