package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"conference-ticketing/config"
	"conference-ticketing/internal/cache"
	"conference-ticketing/internal/database"
	"conference-ticketing/internal/handler"
	"conference-ticketing/internal/queue"
	"conference-ticketing/internal/repository"
	"conference-ticketing/internal/service"
	"conference-ticketing/internal/worker"
	"conference-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	defer logger.Sync()

	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.L.Warn("invalid LOG_LEVEL, keep info", zap.String("level", cfg.LogLevel))
	}
	log := logger.WithComponent("main")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatal("Failed to migrate database", zap.Error(err))
	}

	var rdb *redis.Client
	var locker cache.PurchaseLocker
	rdb, err = database.InitRedis(&cfg.Redis)
	switch {
	case err == nil:
		defer rdb.Close()
		locker = cache.NewRedisPurchaseLocker(rdb, cfg.Ticketing.PurchaseLockTTL)
	case cfg.Queue.Driver == "memory":
		// 單機模式：唯一索引仍保證資料一致
		log.Warn("Redis unavailable, purchase lock disabled", zap.Error(err))
		locker = cache.NoopPurchaseLocker{}
	default:
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	var paymentQueue queue.PaymentQueue
	if cfg.Queue.Driver == "memory" {
		paymentQueue = queue.NewPaymentQueue(cfg.Queue.BufferSize)
	} else {
		paymentQueue, err = queue.NewRedisStreamPaymentQueue(ctx, rdb, cfg.Queue.ConsumerID, nil)
		if err != nil {
			log.Fatal("Failed to initialize payment queue", zap.Error(err))
		}
	}

	// repositories
	conferenceRepo := repository.NewConferenceRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)
	purchaseRepo := repository.NewTicketPurchaseRepository(pool)

	// services
	conferenceService := service.NewConferenceService(conferenceRepo)
	ticketService := service.NewTicketService(ticketRepo, purchaseRepo, conferenceRepo, cfg.Ticketing.ReferenceCurrency)
	purchaseService := service.NewPurchaseService(pool, purchaseRepo, ticketRepo, conferenceRepo, userRepo, locker)

	paymentWorker := worker.NewPaymentWorker(purchaseService, paymentQueue)
	if err := paymentWorker.Start(ctx); err != nil {
		log.Fatal("Failed to start payment worker", zap.Error(err))
	}

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger())

	handler.NewConferenceHandler(conferenceService).RegisterRoutes(router)
	handler.NewTicketHandler(ticketService).RegisterRoutes(router)
	handler.NewPurchaseHandler(purchaseService, ticketService).RegisterRoutes(router)
	handler.NewPaymentHandler(paymentQueue).RegisterRoutes(router)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	// 等待 worker 處理完手上的事件
	select {
	case <-paymentWorker.Done():
	case <-shutdownCtx.Done():
		log.Warn("Payment worker did not stop in time")
	}
}
