package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/domains/video"
	"creatorhub-backend/internal/domains/video/model"
	"creatorhub-backend/internal/domains/video/service"
	"creatorhub-backend/internal/shared/response"
	"creatorhub-backend/internal/validate"
)

type VideoHandler struct {
	service service.ServiceInterface
}

func NewVideoHandler(service service.ServiceInterface) *VideoHandler {
	return &VideoHandler{service: service}
}

// Create - POST /videos
func (h *VideoHandler) Create(c *gin.Context) {
	var form model.VideoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, created)
}

// List - GET /videos?status=&youtuber=
func (h *VideoHandler) List(c *gin.Context) {
	var filter model.VideoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	videos, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, videos)
}

// GetByID - GET /videos/:id
func (h *VideoHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, found)
}

// Update - PUT /videos/:id
func (h *VideoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form model.VideoForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, form)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, updated)
}

// Delete - DELETE /videos/:id
func (h *VideoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

// MarkPaid - POST /videos/:id/mark-paid
func (h *VideoHandler) MarkPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	paid, err := h.service.MarkPaid(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, paid)
}

func (h *VideoHandler) renderError(c *gin.Context, err error) {
	if verr, ok := validate.AsError(err); ok {
		response.ValidationFailed(c, verr)
		return
	}
	response.ErrorResponse(c, video.ToHTTPStatus(err), video.ToErrorCode(err), err.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
