package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

//go:generate mockery --name TherapistService --output ../mocks
type TherapistService interface {
	Create(ctx context.Context, p domain.Principal, req dto.CreateTherapistRequest) (*dto.TherapistResponse, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*dto.TherapistResponse, error)
	List(ctx context.Context, p domain.Principal) ([]dto.TherapistResponse, error)
	Update(ctx context.Context, p domain.Principal, id string, req dto.CreateTherapistRequest) (*dto.TherapistResponse, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

type TherapistHandler struct {
	*BaseHandler
	service TherapistService
}

func NewTherapistHandler(service TherapistService) *TherapistHandler {
	return &TherapistHandler{service: service}
}

func (h *TherapistHandler) CreateTherapist(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateTherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	therapist, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, therapist)
}

func (h *TherapistHandler) GetTherapist(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	therapist, err := h.service.GetByID(h.RequestCtx(c), principal, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, therapist)
}

func (h *TherapistHandler) ListTherapists(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	therapists, err := h.service.List(h.RequestCtx(c), principal)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, therapists)
}

func (h *TherapistHandler) UpdateTherapist(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateTherapistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	therapist, err := h.service.Update(h.RequestCtx(c), principal, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, therapist)
}

func (h *TherapistHandler) DeleteTherapist(c *gin.Context) {
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
