package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

//go:generate mockery --name DocumentTypeService --output ../mocks
type DocumentTypeService interface {
	Create(ctx context.Context, p domain.Principal, req dto.CreateDocumentTypeRequest) (*dto.LookupResponse, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*dto.LookupResponse, error)
	List(ctx context.Context, p domain.Principal) ([]dto.LookupResponse, error)
	Update(ctx context.Context, p domain.Principal, id string, req dto.CreateDocumentTypeRequest) (*dto.LookupResponse, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

//go:generate mockery --name PaymentTypeService --output ../mocks
type PaymentTypeService interface {
	Create(ctx context.Context, p domain.Principal, req dto.CreatePaymentTypeRequest) (*dto.LookupResponse, error)
	GetByID(ctx context.Context, p domain.Principal, id string) (*dto.LookupResponse, error)
	List(ctx context.Context, p domain.Principal) ([]dto.LookupResponse, error)
	Update(ctx context.Context, p domain.Principal, id string, req dto.CreatePaymentTypeRequest) (*dto.LookupResponse, error)
	Delete(ctx context.Context, p domain.Principal, id string) error
}

// DocumentTypeHandler serves the document type lookup table.
type DocumentTypeHandler struct {
	*BaseHandler
	service DocumentTypeService
}

func NewDocumentTypeHandler(service DocumentTypeService) *DocumentTypeHandler {
	return &DocumentTypeHandler{service: service}
}

func (h *DocumentTypeHandler) CreateDocumentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	documentType, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, documentType)
}

func (h *DocumentTypeHandler) GetDocumentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	documentType, err := h.service.GetByID(h.RequestCtx(c), principal, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, documentType)
}

func (h *DocumentTypeHandler) ListDocumentTypes(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	documentTypes, err := h.service.List(h.RequestCtx(c), principal)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, documentTypes)
}

func (h *DocumentTypeHandler) UpdateDocumentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreateDocumentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	documentType, err := h.service.Update(h.RequestCtx(c), principal, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, documentType)
}

func (h *DocumentTypeHandler) DeleteDocumentType(c *gin.Context) {
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

// PaymentTypeHandler serves the payment type lookup table.
type PaymentTypeHandler struct {
	*BaseHandler
	service PaymentTypeService
}

func NewPaymentTypeHandler(service PaymentTypeService) *PaymentTypeHandler {
	return &PaymentTypeHandler{service: service}
}

func (h *PaymentTypeHandler) CreatePaymentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	paymentType, err := h.service.Create(h.RequestCtx(c), principal, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, paymentType)
}

func (h *PaymentTypeHandler) GetPaymentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	paymentType, err := h.service.GetByID(h.RequestCtx(c), principal, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentType)
}

func (h *PaymentTypeHandler) ListPaymentTypes(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	paymentTypes, err := h.service.List(h.RequestCtx(c), principal)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentTypes)
}

func (h *PaymentTypeHandler) UpdatePaymentType(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	paymentType, err := h.service.Update(h.RequestCtx(c), principal, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, paymentType)
}

func (h *PaymentTypeHandler) DeletePaymentType(c *gin.Context) {
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
