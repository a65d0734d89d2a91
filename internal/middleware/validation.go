package middleware

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length limits enforced at the edge.
const (
	MaxContentLen = 2048 // comment/tweet content
	MaxTitleLen   = 256  // video titles and playlist names
	MaxQueryLen   = 128  // search query
)

// ValidateObjectID checks that a path/body identifier is a well-formed
// ObjectID hex string. Returns the parsed ID and an empty message, or the
// zero ID and a caller-facing message.
func ValidateObjectID(raw, field string) (primitive.ObjectID, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return primitive.NilObjectID, field + " is required"
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, "Invalid " + field
	}
	return id, ""
}

// ValidateContent trims free-text content and enforces length limits.
func ValidateContent(raw string) (string, string) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return "", "Content is required"
	}
	if len(content) > MaxContentLen {
		return "", "Content is too long"
	}
	return content, ""
}

// ValidateTitle trims a title/name field and enforces length limits.
func ValidateTitle(raw string) (string, string) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", "Title is required"
	}
	if len(title) > MaxTitleLen {
		return "", "Title is too long"
	}
	return title, ""
}

// SanitizeQuery trims and truncates a search query. An empty query is valid
// and means no title filter.
func SanitizeQuery(raw string) string {
	q := strings.TrimSpace(raw)
	if len(q) > MaxQueryLen {
		q = q[:MaxQueryLen]
	}
	return q
}
