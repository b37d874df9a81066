package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/pkg/utils"
)

//go:generate mockery --name AppointmentService --output ../mocks
type AppointmentService interface {
	Create(ctx context.Context, p domain.Principal, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*dto.AppointmentResponse, error)
	List(ctx context.Context, p domain.Principal, filter domain.AppointmentFilter) ([]dto.AppointmentResponse, error)
	Update(ctx context.Context, p domain.Principal, id string, req dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
	ReferenceData(ctx context.Context, p domain.Principal) (*dto.AppointmentReferenceData, error)
}

type AppointmentHandler struct {
	*BaseHandler
	service AppointmentService
}

func NewAppointmentHandler(service AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	appointment, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, appointment)
}

func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	appointment, err := h.service.GetByID(h.RequestCtx(c), principal, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	filter := domain.AppointmentFilter{
		PatientID:   c.Query("patient_id"),
		TherapistID: c.Query("therapist_id"),
	}
	if startDate := c.Query("start_date"); startDate != "" {
		parsed, err := utils.ParseDate(startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.StartDate = parsed
	}
	if endDate := c.Query("end_date"); endDate != "" {
		parsed, err := utils.ParseDate(endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.EndDate = parsed
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	appointments, err := h.service.List(h.RequestCtx(c), principal, filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	appointment, err := h.service.Update(h.RequestCtx(c), principal, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), principal, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetReferenceData returns the selectable foreign-key rows for appointment
// forms, filtered to the caller's tenant.
func (h *AppointmentHandler) GetReferenceData(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	data, err := h.service.ReferenceData(h.RequestCtx(c), principal)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, data)
}
