package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/domains/export/model"
	"creatorhub-backend/internal/domains/export/service"
	"creatorhub-backend/internal/shared/response"
)

type ExportHandler struct {
	service service.ServiceInterface
}

func NewExportHandler(service service.ServiceInterface) *ExportHandler {
	return &ExportHandler{service: service}
}

// Export - GET /export?type=youtubers|videos|payments|all
func (h *ExportHandler) Export(c *gin.Context) {
	var req model.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if req.Type == "" {
		req.Type = model.TypeAll
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	file, err := h.service.Export(c.Request.Context(), req.Type)
	if err != nil {
		response.InternalServerError(c, "Export failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(200, file.ContentType, file.Data)
}
