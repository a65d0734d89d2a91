package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/model"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type PlaylistHandler struct {
	svc *service.PlaylistService
}

func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{svc: svc}
}

// Create handles POST /api/v1/playlists
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	var req model.PlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	name, errMsg := middleware.ValidateTitle(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	playlist, err := h.svc.Create(c.Context(), owner, req)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, playlist, "Playlist created successfully")
}

// Get handles GET /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Get(c fiber.Ctx) error {
	id, errMsg := middleware.ValidateObjectID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	playlist, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "Playlist fetched successfully")
}

// ListForUser handles GET /api/v1/playlists/user/:userId
func (h *PlaylistHandler) ListForUser(c fiber.Ctx) error {
	owner, errMsg := middleware.ValidateObjectID(c.Params("userId"), "userId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	playlists, err := h.svc.ListForUser(c.Context(), owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlists, "Playlists fetched successfully")
}

// Update handles PATCH /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	var req model.PlaylistRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	name, errMsg := middleware.ValidateTitle(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	playlist, err := h.svc.Update(c.Context(), id, owner, req)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "Playlist updated successfully")
}

// AddVideo handles PATCH /api/v1/playlists/add/:videoId/:playlistId
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	return h.mutateVideos(c, "Video added to playlist successfully", h.svc.AddVideo)
}

// RemoveVideo handles PATCH /api/v1/playlists/remove/:videoId/:playlistId
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	return h.mutateVideos(c, "Video removed from playlist successfully", h.svc.RemoveVideo)
}

func (h *PlaylistHandler) mutateVideos(
	c fiber.Ctx,
	message string,
	op func(ctx context.Context, id, owner, videoID primitive.ObjectID) (*model.Playlist, error),
) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}
	videoID, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	playlist, err := op(c.Context(), id, owner, videoID)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, message)
}

// Delete handles DELETE /api/v1/playlists/:playlistId
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("playlistId"), "playlistId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	playlist, err := h.svc.Delete(c.Context(), id, owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, playlist, "Playlist deleted successfully")
}
