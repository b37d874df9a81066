package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

//go:generate mockery --name PatientService --output ../mocks
type PatientService interface {
	Create(ctx context.Context, p domain.Principal, req dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*dto.PatientResponse, error)
	List(ctx context.Context, p domain.Principal, filter domain.PatientFilter) ([]dto.PatientResponse, error)
	Update(ctx context.Context, p domain.Principal, id string, req dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

type PatientHandler struct {
	*BaseHandler
	service PatientService
}

func NewPatientHandler(service PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	patient, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatient(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	patient, err := h.service.GetByID(h.RequestCtx(c), principal, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) ListPatients(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	filter := domain.PatientFilter{
		DocumentNumber: c.Query("document_number"),
		Sex:            c.Query("sex"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.PageSize, _ = strconv.Atoi(c.Query("page_size"))

	patients, err := h.service.List(h.RequestCtx(c), principal, filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	patient, err := h.service.Update(h.RequestCtx(c), principal, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
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
