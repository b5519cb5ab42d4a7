package schedule

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/service/schedule"
)

type Handler struct {
	service *schedule.Service
}

func NewHandler(service *schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule/:date", h.ResolveAvailability)
	rg.GET("/time-slots", h.Grid)
	rg.GET("/taken-time-slots/:date", h.TakenTimes)
}

// ResolveAvailability returns the day's schedule: booked appointments plus
// the remaining free slots, time-ordered.
func (h *Handler) ResolveAvailability(c *gin.Context) {
	entries, err := h.service.ResolveAvailability(c.Request.Context(), c.Param("date"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(entries))
}

func (h *Handler) Grid(c *gin.Context) {
	slots, err := h.service.Grid(c.Request.Context())
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(slots))
}

func (h *Handler) TakenTimes(c *gin.Context) {
	times, err := h.service.TakenTimes(c.Request.Context(), c.Param("date"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(times))
}
