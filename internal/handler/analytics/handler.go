package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/service/analytics"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/revenue", h.AggregateRevenue)
	rg.GET("/analytics/revenue/daily", h.DailyRevenue)
}

func (h *Handler) AggregateRevenue(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		handler.Error(c, apperror.Input("invalid year %q", c.Query("year")))
		return
	}

	summary, err := h.service.AggregateRevenue(c.Request.Context(), year, model.Category(c.Query("category")))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(summary))
}

func (h *Handler) DailyRevenue(c *gin.Context) {
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

	daily, err := h.service.DailyRevenue(c.Request.Context(), year, month)
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(daily))
}
