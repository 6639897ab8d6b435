package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creatorhub-backend/internal/domains/dashboard/service"
	"creatorhub-backend/internal/shared/response"
)

type DashboardHandler struct {
	service service.ServiceInterface
}

func NewDashboardHandler(service service.ServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Overview - GET /dashboard
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, overview)
}

// Charts - GET /dashboard/charts
func (h *DashboardHandler) Charts(c *gin.Context) {
	charts, err := h.service.Charts(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, charts)
}

// PaymentsReport - GET /payments
func (h *DashboardHandler) PaymentsReport(c *gin.Context) {
	report, err := h.service.PaymentsReport(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	response.Success(c, http.StatusOK, report)
}
