package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"daddybathbomb/internal/config"
	"daddybathbomb/internal/db"
	"daddybathbomb/internal/events"
	"daddybathbomb/internal/httpserver"
	bannerrepo "daddybathbomb/internal/repository/banner"
	cartsnaprepo "daddybathbomb/internal/repository/cartsnap"
	customerrepo "daddybathbomb/internal/repository/customer"
	orderrepo "daddybathbomb/internal/repository/order"
	productrepo "daddybathbomb/internal/repository/product"
	settingsrepo "daddybathbomb/internal/repository/settings"
	tokenrepo "daddybathbomb/internal/repository/token"
	bannersvc "daddybathbomb/internal/service/banner"
	cartsvc "daddybathbomb/internal/service/cart"
	catalogsvc "daddybathbomb/internal/service/catalog"
	checkoutsvc "daddybathbomb/internal/service/checkout"
	contentsvc "daddybathbomb/internal/service/content"
	customersvc "daddybathbomb/internal/service/customer"
	"daddybathbomb/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	bus := events.NewBus()
	bus.Subscribe(events.TopicOrderCreated, func(_ context.Context, ev events.Event) {
		if oc, ok := ev.Payload.(events.OrderCreated); ok {
			logger.Printf("order created: %s total=%d", oc.Number, oc.TotalSatang)
		}
	})
	if len(cfg.KafkaBrokers) > 0 {
		sink := events.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer sink.Close()
		bus.WithSink(sink, func(err error) {
			logger.Printf("kafka sink: %v", err)
		})
		logger.Printf("publishing events to kafka topic %s", cfg.KafkaTopic)
	}

	uploads, err := storage.NewDisk(cfg.MediaDir, cfg.FileURLHost)
	if err != nil {
		logger.Fatalf("init media storage: %v", err)
	}

	productRepo := productrepo.NewPostgres(dbpool, logger)
	bannerRepo := bannerrepo.NewPostgres(dbpool, logger)
	snapRepo := cartsnaprepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	settingsRepo := settingsrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)

	cartStore := cartsvc.NewStore(snapRepo, logger)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:     catalogsvc.New(productRepo),
		BannerSvc:      bannersvc.New(bannerRepo, bus, logger),
		CartStore:      cartStore,
		CheckoutSvc:    checkoutsvc.New(cartStore, orderRepo, bus, logger),
		ContentSvc:     contentsvc.New(settingsRepo, bus),
		CustomerSvc:    customersvc.New(customerRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		Uploads:        uploads,
		MediaDir:       cfg.MediaDir,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
