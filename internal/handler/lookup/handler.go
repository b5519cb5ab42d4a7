package lookup

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/repository"
)

// Handler serves the small distinct-value lists the booking form offers.
type Handler struct {
	repo repository.LookupRepository
}

func NewHandler(repo repository.LookupRepository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/doctors", h.list(h.repo.Doctors))
	rg.GET("/treatments", h.list(h.repo.Treatments))
	rg.GET("/payments", h.list(h.repo.Payments))
}

func (h *Handler) list(fetch func(context.Context) ([]string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := fetch(c.Request.Context())
		if err != nil {
			handler.Error(c, err)
			return
		}
		if values == nil {
			values = []string{}
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(values))
	}
}
