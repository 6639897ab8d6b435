package video

import "errors"

var (
	// Business rule errors
	ErrVideoNotFound   = errors.New("video not found")
	ErrUnknownYoutuber = errors.New("referenced youtuber does not exist")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrVideoNotFound:
		return "VIDEO_NOT_FOUND"
	case ErrUnknownYoutuber:
		return "UNKNOWN_YOUTUBER"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrVideoNotFound:
		return 404
	case ErrUnknownYoutuber:
		return 400
	default:
		return 500
	}
}
