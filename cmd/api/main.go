package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/neal92/ServiceBooking-sub000/internal/config"
	"github.com/neal92/ServiceBooking-sub000/internal/db"
	"github.com/neal92/ServiceBooking-sub000/internal/middleware"
	"github.com/neal92/ServiceBooking-sub000/internal/routes"
	"github.com/neal92/ServiceBooking-sub000/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	database := db.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}

	images := storage.NewImageStore(cfg)
	if images == nil {
		log.Warn().Msg("no S3 bucket configured, image uploads disabled")
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.AccessLog(log),
		gin.Recovery(),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	mon := routes.RegisterRoutes(r, database, cfg, rdb, images, log)
	if cfg.MonitorEnabled {
		mon.Start()
	}

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	mon.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}
