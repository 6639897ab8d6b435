package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/domains/creator"
	"creatorhub-backend/internal/domains/creator/model"
	"creatorhub-backend/internal/domains/creator/service"
	"creatorhub-backend/internal/shared/response"
	"creatorhub-backend/internal/validate"
)

type CreatorHandler struct {
	service service.ServiceInterface
}

func NewCreatorHandler(service service.ServiceInterface) *CreatorHandler {
	return &CreatorHandler{service: service}
}

// Create - POST /creators
func (h *CreatorHandler) Create(c *gin.Context) {
	var form model.CreatorForm
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

// List - GET /creators?search=&niche=
func (h *CreatorHandler) List(c *gin.Context) {
	var filter model.CreatorFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if err := filter.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	list, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// Niches - GET /creators/niches
func (h *CreatorHandler) Niches(c *gin.Context) {
	niches, err := h.service.Niches(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	response.Success(c, http.StatusOK, niches)
}

// GetByID - GET /creators/:id
func (h *CreatorHandler) GetByID(c *gin.Context) {
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

// Update - PUT /creators/:id
func (h *CreatorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form model.CreatorForm
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

// Delete - DELETE /creators/:id
func (h *CreatorHandler) Delete(c *gin.Context) {
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

func (h *CreatorHandler) renderError(c *gin.Context, err error) {
	if verr, ok := validate.AsError(err); ok {
		response.ValidationFailed(c, verr)
		return
	}
	response.ErrorResponse(c, creator.ToHTTPStatus(err), creator.ToErrorCode(err), err.Error())
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
