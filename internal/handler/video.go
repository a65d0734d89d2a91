package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/v1/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	filter := repository.VideoFilter{
		Query: middleware.SanitizeQuery(c.Query("query")),
	}
	if raw := c.Query("userId"); raw != "" {
		owner, errMsg := middleware.ValidateObjectID(raw, "userId")
		if errMsg != "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
		}
		filter.Owner = &owner
	}

	videos, err := h.svc.List(c.Context(), filter, pageFromQuery(c))
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, videos, "Videos fetched successfully")
}

// Publish handles POST /api/v1/videos
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	var req model.PublishVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateTitle(req.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Title = title

	video, err := h.svc.Publish(c.Context(), owner, req)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, video, "Video published successfully")
}

// Get handles GET /api/v1/videos/:videoId
func (h *VideoHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	video, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "Video fetched successfully")
}

// Update handles PATCH /api/v1/videos/:videoId
func (h *VideoHandler) Update(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	var req model.UpdateVideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	video, err := h.svc.UpdateMetadata(c.Context(), id, owner, req)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "Video updated successfully")
}

// Delete handles DELETE /api/v1/videos/:videoId
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	video, err := h.svc.Delete(c.Context(), id, owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "Video deleted successfully")
}

// TogglePublish handles PATCH /api/v1/videos/toggle/publish/:videoId
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	video, err := h.svc.TogglePublish(c.Context(), id, owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, video, "Publish state toggled successfully")
}
