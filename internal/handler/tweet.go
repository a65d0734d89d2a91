package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type TweetHandler struct {
	svc *service.TweetService
}

func NewTweetHandler(svc *service.TweetService) *TweetHandler {
	return &TweetHandler{svc: svc}
}

type tweetRequest struct {
	Content string `json:"content"`
}

// Create handles POST /api/v1/tweets
func (h *TweetHandler) Create(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	var req tweetRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tweet, err := h.svc.Create(c.Context(), owner, content)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, tweet, "Tweet created successfully")
}

// ListForUser handles GET /api/v1/tweets/user/:userId
func (h *TweetHandler) ListForUser(c fiber.Ctx) error {
	owner, errMsg := middleware.ValidateObjectID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	tweets, err := h.svc.ListForUser(c.Context(), owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, tweets, "Tweets fetched successfully")
}

// Update handles PATCH /api/v1/tweets/:tweetId
func (h *TweetHandler) Update(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	var req tweetRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	tweet, err := h.svc.Update(c.Context(), id, owner, content)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, tweet, "Tweet updated successfully")
}

// Delete handles DELETE /api/v1/tweets/:tweetId
func (h *TweetHandler) Delete(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("tweetId"), "tweetId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	tweet, err := h.svc.Delete(c.Context(), id, owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, tweet, "Tweet deleted successfully")
}
