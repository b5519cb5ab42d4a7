package reports

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/service/reports"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type Handler struct {
	service *reports.Service
}

func NewHandler(service *reports.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/attendance", h.AggregateAttendance)
	rg.GET("/reports/treatments-by-age", h.CountTreatmentsByAgeGroup)
}

func (h *Handler) AggregateAttendance(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		handler.Error(c, apperror.Input("invalid year %q", c.Query("year")))
		return
	}

	summary, err := h.service.AggregateAttendance(c.Request.Context(), year, c.Query("payment"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) CountTreatmentsByAgeGroup(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		handler.Error(c, apperror.Input("invalid year %q", c.Query("year")))
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		handler.Error(c, apperror.Input("invalid month %q", c.Query("month")))
		return
	}

	grid, err := h.service.CountTreatmentsByAgeGroup(c.Request.Context(), year, month)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(grid))
}
