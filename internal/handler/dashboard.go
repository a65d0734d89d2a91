package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Stats handles GET /api/v1/dashboard/stats
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	stats, err := h.svc.Stats(c.Context(), owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, stats, "Channel stats fetched successfully")
}

// Videos handles GET /api/v1/dashboard/videos
func (h *DashboardHandler) Videos(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	videos, err := h.svc.ChannelVideos(c.Context(), owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, videos, "Channel videos fetched successfully")
}
