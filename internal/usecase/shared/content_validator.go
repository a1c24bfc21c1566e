// Package shared contains helpers used across use cases.
package shared

import (
	"strings"

	"teamboard/internal/domain"
)

// ValidateContent trims whitespace from comment content and validates it is
// not empty. Returns the trimmed content if valid, otherwise
// domain.ErrEmptyContent.
func ValidateContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return "", domain.ErrEmptyContent
	}
	return trimmed, nil
}
