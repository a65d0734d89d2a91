package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// principalKey is the Locals key the authenticated user ID is stored under.
const principalKey = "principalID"

// RequireAuth extracts the principal set by the upstream auth layer from the
// X-User-ID header and makes it available to handlers. Requests without a
// well-formed principal are rejected before any handler runs.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		raw := c.Get("X-User-ID")
		if raw == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Authentication required")
		}

		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHENTICATED", "Invalid principal identity")
		}

		c.Locals(principalKey, id)
		return c.Next()
	}
}

// Principal returns the authenticated user ID stored by RequireAuth.
func Principal(c fiber.Ctx) (primitive.ObjectID, bool) {
	id, ok := c.Locals(principalKey).(primitive.ObjectID)
	return id, ok
}
