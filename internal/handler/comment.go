package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/middleware"
	"github.com/Pranshu-Chauhan/VidTube/internal/service"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

type commentRequest struct {
	Content string `json:"content"`
}

// List handles GET /api/v1/comments/:videoId
func (h *CommentHandler) List(c fiber.Ctx) error {
	videoID, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	comments, err := h.svc.ListForVideo(c.Context(), videoID, pageFromQuery(c))
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, comments, "Comments fetched successfully")
}

// Add handles POST /api/v1/comments/:videoId
func (h *CommentHandler) Add(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	videoID, errMsg := middleware.ValidateObjectID(c.Params("videoId"), "videoId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	var req commentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comment, err := h.svc.Add(c.Context(), videoID, owner, content)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusCreated, comment, "Comment added successfully")
}

// Update handles PATCH /api/v1/comments/c/:commentId
func (h *CommentHandler) Update(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	var req commentRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	content, errMsg := middleware.ValidateContent(req.Content)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}

	comment, err := h.svc.Update(c.Context(), id, owner, content)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, comment, "Comment updated successfully")
}

// Delete handles DELETE /api/v1/comments/c/:commentId
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	owner, ok := middleware.Principal(c)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
	}

	id, errMsg := middleware.ValidateObjectID(c.Params("commentId"), "commentId")
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_ID", errMsg)
	}

	comment, err := h.svc.Delete(c.Context(), id, owner)
	if err != nil {
		return middleware.FromError(c, err)
	}
	return middleware.Success(c, fiber.StatusOK, comment, "Comment deleted successfully")
}
