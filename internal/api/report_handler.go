package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/pkg/utils"
)

//go:generate mockery --name ReportService --output ../mocks
type ReportService interface {
	AppointmentsPerTherapist(ctx context.Context, p domain.Principal, date time.Time) (*dto.TherapistAppointmentsReport, error)
	PatientsByTherapist(ctx context.Context, p domain.Principal, date time.Time) ([]dto.PatientsByTherapistGroup, error)
	DailyCash(ctx context.Context, p domain.Principal, date time.Time) ([]dto.DailyCashRow, error)
	AppointmentsBetweenDates(ctx context.Context, p domain.Principal, startDate, endDate time.Time) ([]dto.AppointmentBetweenDatesRow, error)
}

type ReportHandler struct {
	*BaseHandler
	service ReportService
}

func NewReportHandler(service ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// dateParam parses a required YYYY-MM-DD query parameter, aborting with 400
// when it is missing or malformed.
func (h *ReportHandler) dateParam(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: name + " query parameter is required"})
		return time.Time{}, false
	}
	date, err := utils.ParseDate(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return time.Time{}, false
	}
	return date, true
}

func (h *ReportHandler) AppointmentsPerTherapist(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	date, ok := h.dateParam(c, "date")
	if !ok {
		return
	}

	report, err := h.service.AppointmentsPerTherapist(h.RequestCtx(c), principal, date)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *ReportHandler) PatientsByTherapist(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	date, ok := h.dateParam(c, "date")
	if !ok {
		return
	}

	groups, err := h.service.PatientsByTherapist(h.RequestCtx(c), principal, date)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *ReportHandler) DailyCash(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	date, ok := h.dateParam(c, "date")
	if !ok {
		return
	}

	rows, err := h.service.DailyCash(h.RequestCtx(c), principal, date)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

func (h *ReportHandler) AppointmentsBetweenDates(c *gin.Context) {
	principal, ok := h.Principal(c)
	if !ok {
		return
	}

	startDate, ok := h.dateParam(c, "start_date")
	if !ok {
		return
	}
	endDate, ok := h.dateParam(c, "end_date")
	if !ok {
		return
	}

	rows, err := h.service.AppointmentsBetweenDates(h.RequestCtx(c), principal, startDate, endDate)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
