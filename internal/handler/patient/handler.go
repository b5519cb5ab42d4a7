package patient

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/spqrod/dr-watson-dashboard-server/internal/handler"
	"github.com/spqrod/dr-watson-dashboard-server/internal/model"
	"github.com/spqrod/dr-watson-dashboard-server/internal/service/patient"
	"github.com/spqrod/dr-watson-dashboard-server/pkg/apperror"
)

type Handler struct {
	service *patient.Service
}

func NewHandler(service *patient.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/patients/:searchString", h.SearchPatients)
	rg.POST("/patients", h.CreatePatient)
	rg.PUT("/patients", h.UpdatePatient)
	rg.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) SearchPatients(c *gin.Context) {
	patients, err := h.service.Search(c.Request.Context(), c.Param("searchString"))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperror.Input("invalid request body: %v", err))
		return
	}

	created, err := h.service.CreatePatient(c.Request.Context(), patientFromRequest(&req))
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(created))
}

func (h *Handler) UpdatePatient(c *gin.Context) {
	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.Error(c, apperror.Input("invalid request body: %v", err))
		return
	}

	p := patientFromRequest(&req.CreatePatientRequest)
	p.ID = req.ID
	if err := h.service.UpdatePatient(c.Request.Context(), p); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(p))
}

func (h *Handler) DeletePatient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		handler.Error(c, apperror.Input("invalid patient id %q", c.Param("id")))
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(nil))
}

func patientFromRequest(req *model.CreatePatientRequest) *model.Patient {
	return &model.Patient{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		File:        req.File,
		NRC:         req.NRC,
		InsuranceID: req.InsuranceID,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Sex:         req.Sex,
		Payment:     req.Payment,
		Marketing:   req.Marketing,
	}
}
