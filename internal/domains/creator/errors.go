package creator

import "errors"

var (
	// Business rule errors
	ErrCreatorNotFound  = errors.New("youtuber not found")
	ErrCreatorHasVideos = errors.New("cannot delete youtuber with linked videos")

	// Database errors
	ErrDatabaseQuery = errors.New("database query error")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrCreatorNotFound:
		return "YOUTUBER_NOT_FOUND"
	case ErrCreatorHasVideos:
		return "YOUTUBER_HAS_VIDEOS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrCreatorNotFound:
		return 404
	case ErrCreatorHasVideos:
		return 409
	default:
		return 500
	}
}
