package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Pranshu-Chauhan/VidTube/internal/handler"
	"github.com/Pranshu-Chauhan/VidTube/internal/metrics"
	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Playlist     *handler.PlaylistHandler
	Subscription *handler.SubscriptionHandler
	Tweet        *handler.TweetHandler
	Dashboard    *handler.DashboardHandler
	Health       *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(metrics.Middleware())

	// Health checks and metrics (before API group, no auth needed)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", metrics.Handler())

	readLimit := middleware.NewReadRateLimiter().Handler()
	writeLimit := middleware.NewWriteRateLimiter().Handler()
	uploadLimit := middleware.NewUploadRateLimiter().Handler()
	toggleLimit := middleware.NewToggleRateLimiter().Handler()

	auth := middleware.RequireAuth()

	api := app.Group("/api/v1")

	// Video routes
	videos := api.Group("/videos")
	videos.Get("/", h.Video.List, readLimit)
	videos.Get("/:videoId", h.Video.Get, readLimit)
	videos.Post("/", h.Video.Publish, auth, uploadLimit)
	videos.Patch("/:videoId", h.Video.Update, auth, writeLimit)
	videos.Delete("/:videoId", h.Video.Delete, auth, writeLimit)
	videos.Patch("/toggle/publish/:videoId", h.Video.TogglePublish, auth, writeLimit)

	// Comment routes
	comments := api.Group("/comments")
	comments.Get("/:videoId", h.Comment.List, readLimit)
	comments.Post("/:videoId", h.Comment.Add, auth, writeLimit)
	comments.Patch("/c/:commentId", h.Comment.Update, auth, writeLimit)
	comments.Delete("/c/:commentId", h.Comment.Delete, auth, writeLimit)

	// Like routes
	likes := api.Group("/likes", auth)
	likes.Post("/toggle/v/:videoId", h.Like.ToggleVideo, toggleLimit)
	likes.Post("/toggle/c/:commentId", h.Like.ToggleComment, toggleLimit)
	likes.Post("/toggle/t/:tweetId", h.Like.ToggleTweet, toggleLimit)
	likes.Get("/videos", h.Like.LikedVideos, readLimit)
	likes.Get("/comments", h.Like.LikedComments, readLimit)
	likes.Get("/tweets", h.Like.LikedTweets, readLimit)

	// Playlist routes
	playlists := api.Group("/playlists")
	playlists.Get("/:playlistId", h.Playlist.Get, readLimit)
	playlists.Get("/user/:userId", h.Playlist.ListForUser, readLimit)
	playlists.Post("/", h.Playlist.Create, auth, writeLimit)
	playlists.Patch("/:playlistId", h.Playlist.Update, auth, writeLimit)
	playlists.Patch("/add/:videoId/:playlistId", h.Playlist.AddVideo, auth, writeLimit)
	playlists.Patch("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo, auth, writeLimit)
	playlists.Delete("/:playlistId", h.Playlist.Delete, auth, writeLimit)

	// Subscription routes
	subs := api.Group("/subscriptions")
	subs.Get("/c/:channelId", h.Subscription.Subscribers, readLimit)
	subs.Get("/u/:subscriberId", h.Subscription.SubscribedChannels, readLimit)
	subs.Post("/c/:channelId", h.Subscription.Toggle, auth, toggleLimit)

	// Tweet routes
	tweets := api.Group("/tweets")
	tweets.Get("/user/:userId", h.Tweet.ListForUser, readLimit)
	tweets.Post("/", h.Tweet.Create, auth, writeLimit)
	tweets.Patch("/:tweetId", h.Tweet.Update, auth, writeLimit)
	tweets.Delete("/:tweetId", h.Tweet.Delete, auth, writeLimit)

	// Dashboard routes
	dashboard := api.Group("/dashboard", auth)
	dashboard.Get("/stats", h.Dashboard.Stats, readLimit)
	dashboard.Get("/videos", h.Dashboard.Videos, readLimit)
}
