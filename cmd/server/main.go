package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/config"
	"github.com/Pranshu-Chauhan/VidTube/internal/db"
	"github.com/Pranshu-Chauhan/VidTube/internal/handler"
	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
	"github.com/Pranshu-Chauhan/VidTube/internal/router"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
	"github.com/Pranshu-Chauhan/VidTube/pkg/media"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "vidtube")
	metrics.Init()

	ctx := context.Background()
	client, err := db.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	database := client.Database(cfg.MongoDB)
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	cache := service.NewCacheService(cfg.RedisURL)
	defer cache.Close()

	storage, err := media.NewStorage(ctx, media.StorageConfig{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		UseSSL:    cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("failed to connect to object storage: %v", err)
	}
	probe := media.NewProbe()

	videoRepo := repository.NewVideoRepo(database)
	commentRepo := repository.NewCommentRepo(database)
	likeRepo := repository.NewLikeRepo(database)
	playlistRepo := repository.NewPlaylistRepo(database)
	subscriptionRepo := repository.NewSubscriptionRepo(database)
	tweetRepo := repository.NewTweetRepo(database)
	dashboardRepo := repository.NewDashboardRepo(videoRepo, tweetRepo, commentRepo, subscriptionRepo, likeRepo)

	videoSvc := service.NewVideoService(videoRepo, storage, probe, cache)
	commentSvc := service.NewCommentService(commentRepo)
	likeSvc := service.NewLikeService(likeRepo, cache)
	playlistSvc := service.NewPlaylistService(playlistRepo)
	subscriptionSvc := service.NewSubscriptionService(subscriptionRepo)
	tweetSvc := service.NewTweetService(tweetRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, cache)

	h := &router.Handlers{
		Video:        handler.NewVideoHandler(videoSvc),
		Comment:      handler.NewCommentHandler(commentSvc),
		Like:         handler.NewLikeHandler(likeSvc),
		Playlist:     handler.NewPlaylistHandler(playlistSvc),
		Subscription: handler.NewSubscriptionHandler(subscriptionSvc),
		Tweet:        handler.NewTweetHandler(tweetSvc),
		Dashboard:    handler.NewDashboardHandler(dashboardSvc),
		Health:       handler.NewHealthHandler(client, cache.Client()),
	}

	app := fiber.New(fiber.Config{
		AppName:      "VidTube API",
		ServerHeader: "VidTube",
	})

	router.Setup(app, h, cfg.CORSOrigins)

	log.Printf("VidTube backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
