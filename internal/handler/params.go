package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/Pranshu-Chauhan/VidTube/internal/repository"
)

// pageFromQuery reads the shared pagination/sort query parameters.
// Out-of-range values are left for PageParams.Normalize to coerce.
func pageFromQuery(c fiber.Ctx) repository.PageParams {
	page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit", "10"), 10, 64)

	return repository.PageParams{
		Page:    page,
		Limit:   limit,
		SortBy:  c.Query("sortBy"),
		SortAsc: c.Query("sortType") == "asc",
	}
}
