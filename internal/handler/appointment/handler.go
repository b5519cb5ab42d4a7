package appointment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/service/appointment"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/appointments", h.ListAppointments)
	rg.POST("/appointments", h.CreateAppointment)
	rg.PUT("/appointments", h.UpdateAppointment)
	rg.DELETE("/appointments/:id", h.DeleteAppointment)
}

// ListAppointments serves both lookup shapes the booking screens use: the
// visit history of one patient file, or a free-text token search.
func (h *Handler) ListAppointments(c *gin.Context) {
	var (
		appointments []model.Appointment
		err          error
	)

	if file := c.Query("patientFile"); file != "" {
		appointments, err = h.service.ListForPatient(c.Request.Context(), file)
	} else {
		appointments, err = h.service.Search(c.Request.Context(), c.Query("searchString"))
	}
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(appointments))
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperror.Input("invalid request body: %v", err))
		return
	}

	apt := appointmentFromRequest(&req)
	id, err := h.service.CreateAppointment(c.Request.Context(), apt)
	if err != nil {
		handler.Error(c, err)
		return
	}
	apt.ID = id

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(apt))
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var req model.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperror.Input("invalid request body: %v", err))
		return
	}

	apt := appointmentFromRequest(&req.CreateAppointmentRequest)
	apt.ID = req.ID
	if err := h.service.UpdateAppointment(c.Request.Context(), apt); err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(apt))
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handler.Error(c, apperror.Input("invalid appointment id %q", c.Param("id")))
		return
	}

	if err := h.service.DeleteAppointment(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func appointmentFromRequest(req *model.CreateAppointmentRequest) *model.Appointment {
	return &model.Appointment{
		Date:        req.Date,
		Time:        req.Time,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Doctor:      req.Doctor,
		Treatment:   req.Treatment,
		Payment:     req.Payment,
		Cost:        req.Cost,
		PatientFile: req.PatientFile,
		Phone:       req.Phone,
		Comments:    req.Comments,
		NoShow:      req.NoShow,
	}
}
