package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type SubscriptionHandler struct {
	svc *service.SubscriptionService
}

func NewSubscriptionHandler(svc *service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc}
}

// Toggle handles POST /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) Toggle(c fiber.Ctx) error {
	subscriber, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	channel, errMsg := middleware.ValidateObjectID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	result, sub, err := h.svc.Toggle(c.Context(), subscriber, channel)
	if err != nil {
		return middleware.FromError(c, err)
	}

	if result.Added {
		return middleware.Success(c, fiber.StatusOK, sub, "Subscribed successfully")
	}
	return middleware.Success(c, fiber.StatusOK, result, "Unsubscribed successfully")
}

// Subscribers handles GET /api/v1/subscriptions/c/:channelId
func (h *SubscriptionHandler) Subscribers(c fiber.Ctx) error {
	channel, errMsg := middleware.ValidateObjectID(c.Params("channelId"), "channelId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	subs, err := h.svc.Subscribers(c.Context(), channel, pageFromQuery(c))
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, subs, "Subscribers fetched successfully")
}

// SubscribedChannels handles GET /api/v1/subscriptions/u/:subscriberId
func (h *SubscriptionHandler) SubscribedChannels(c fiber.Ctx) error {
	subscriber, errMsg := middleware.ValidateObjectID(c.Params("subscriberId"), "subscriberId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	channels, err := h.svc.SubscribedChannels(c.Context(), subscriber, pageFromQuery(c))
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, channels, "Subscribed channels fetched successfully")
}
