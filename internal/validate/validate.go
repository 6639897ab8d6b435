// Package validate is the input validation and sanitization engine.
//
// Every function is pure and synchronous: raw form values in, typed
// constraint-satisfying values (or a structured Error) out. Nothing here
// touches the store; foreign-key existence is the store's job.
package validate

import (
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

var (
	// Conservative email shape: local@domain.tld, dot required in the
	// domain, no embedded whitespace.
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	// Recognized video-hosting domains. Matched case-insensitively against
	// the WHOLE URL string, not just the host component; a query parameter
	// containing "youtube.com" also passes. Legacy behavior, kept for
	// compatibility.
	videoHostPatterns = []string{
		"youtube.com",
		"youtu.be",
		"youtube-nocookie.com",
	}

	maxAmount = decimal.RequireFromString("999999.99")

	// StrictPolicy strips every tag; entity escapes it introduces are
	// decoded back so the stored value is plain text.
	stripPolicy = bluemonday.StrictPolicy()
)

const dateLayout = "2006-01-02"

// RequireNonEmpty trims value and fails when nothing remains. fieldName is
// the user-facing label for the message only; like every primitive here the
// error carries no field key, composites attach one via WithField.
func RequireNonEmpty(value, fieldName string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", newError(KindMissingField, fmt.Sprintf("%s is required", fieldName))
	}
	return trimmed, nil
}

// Email validates an optional email address. Empty input yields "".
func Email(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !emailPattern.MatchString(trimmed) {
		return "", newError(KindInvalidFormat, "Invalid email format")
	}
	return trimmed, nil
}

// URL validates an optional URL. It must parse with both a scheme and a
// host. Empty input yields "".
func URL(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", newError(KindInvalidFormat, "Invalid URL format")
	}
	return trimmed, nil
}

// VideoHostURL validates an optional URL and requires it to reference a
// recognized video-hosting domain.
func VideoHostURL(value string) (string, error) {
	validated, err := URL(value)
	if err != nil || validated == "" {
		return validated, err
	}

	lowered := strings.ToLower(validated)
	for _, pattern := range videoHostPatterns {
		if strings.Contains(lowered, pattern) {
			return validated, nil
		}
	}
	return "", newError(KindInvalidFormat, "Must be a valid YouTube URL")
}

// Amount parses a monetary amount. Empty input yields 0.00. The range check
// runs on the parsed value before rounding; the result is rounded
// half-away-from-zero to 2 decimal places (ordinary decimal rounding, not
// banker's), so 12.345 becomes 12.35.
func Amount(value string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero.Round(2), nil
	}

	parsed, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, newError(KindInvalidFormat, "Invalid amount format")
	}
	if parsed.IsNegative() {
		return decimal.Zero, newError(KindOutOfRange, "Amount cannot be negative")
	}
	if parsed.GreaterThan(maxAmount) {
		return decimal.Zero, newError(KindOutOfRange, "Amount too large")
	}
	return parsed.Round(2), nil
}

// Date parses an optional date, strictly YYYY-MM-DD. Any other shape,
// including valid dates with different separators, fails. Empty input
// yields nil.
func Date(value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, trimmed)
	if err != nil {
		return nil, newError(KindInvalidFormat, "Invalid date format (YYYY-MM-DD required)")
	}
	return &parsed, nil
}

// SanitizeText strips all markup from value, decodes entities back to plain
// text, and trims whitespace. The length cap applies to the cleaned result;
// maxLength <= 0 means unbounded.
func SanitizeText(value string, maxLength int) (string, error) {
	if value == "" {
		return "", nil
	}

	clean := stripPolicy.Sanitize(strings.TrimSpace(value))
	clean = strings.TrimSpace(html.UnescapeString(clean))

	// Character count, matching the store's length() CHECK constraints.
	if maxLength > 0 && utf8.RuneCountInString(clean) > maxLength {
		return "", newError(KindTooLong, fmt.Sprintf("Text too long (max %d characters)", maxLength))
	}
	return clean, nil
}

// PaymentStatus validates the payment state enum.
func PaymentStatus(value string) (string, error) {
	switch value {
	case "pending", "paid", "cancelled":
		return value, nil
	}
	return "", newError(KindInvalidEnum,
		"Invalid payment status. Must be one of: pending, paid, cancelled")
}
