package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type LikeHandler struct {
	svc *service.LikeService
}

func NewLikeHandler(svc *service.LikeService) *LikeHandler {
	return &LikeHandler{svc: svc}
}

// ToggleVideo handles POST /api/v1/likes/toggle/v/:videoId
func (h *LikeHandler) ToggleVideo(c fiber.Ctx) error {
	return h.toggle(c, model.LikeVideo, "videoId")
}

// ToggleComment handles POST /api/v1/likes/toggle/c/:commentId
func (h *LikeHandler) ToggleComment(c fiber.Ctx) error {
	return h.toggle(c, model.LikeComment, "commentId")
}

// ToggleTweet handles POST /api/v1/likes/toggle/t/:tweetId
func (h *LikeHandler) ToggleTweet(c fiber.Ctx) error {
	return h.toggle(c, model.LikeTweet, "tweetId")
}

func (h *LikeHandler) toggle(c fiber.Ctx, kind model.LikeKind, param string) error {
	user, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	target, errMsg := middleware.ValidateObjectID(c.Params(param), param)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	result, like, err := h.svc.Toggle(c.Context(), kind, target, user)
	if err != nil {
		return middleware.FromError(c, err)
	}

	if result.Added {
		return middleware.Success(c, fiber.StatusOK, like, "Like added successfully")
	}
	return middleware.Success(c, fiber.StatusOK, result, "Like removed successfully")
}

// LikedVideos handles GET /api/v1/likes/videos
func (h *LikeHandler) LikedVideos(c fiber.Ctx) error {
	return h.liked(c, model.LikeVideo, "Liked videos fetched successfully")
}

// LikedComments handles GET /api/v1/likes/comments
func (h *LikeHandler) LikedComments(c fiber.Ctx) error {
	return h.liked(c, model.LikeComment, "Liked comments fetched successfully")
}

// LikedTweets handles GET /api/v1/likes/tweets
func (h *LikeHandler) LikedTweets(c fiber.Ctx) error {
	return h.liked(c, model.LikeTweet, "Liked tweets fetched successfully")
}

func (h *LikeHandler) liked(c fiber.Ctx, kind model.LikeKind, message string) error {
	user, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	items, err := h.svc.Liked(c.Context(), user, kind, pageFromQuery(c))
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, items, message)
}
