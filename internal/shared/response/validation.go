package response

import (
	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/validate"
)

// ValidationFailed renders a validation Error as a 400 with the failure kind
// as the error code and the offending field in the details. This is the one
// place validation errors become user-facing messages.
func ValidationFailed(c *gin.Context, verr *validate.Error) {
	details := gin.H{}
	if verr.Field != "" {
		details["field"] = verr.Field
	}
	ErrorWithDetails(c, 400, string(verr.Kind), verr.Message, details)
}
