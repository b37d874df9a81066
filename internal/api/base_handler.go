package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/api/dto"
	"github.com/clinovate/clinic-scheduling-api/internal/domain"
	"github.com/clinovate/clinic-scheduling-api/internal/scope"
	"github.com/clinovate/clinic-scheduling-api/internal/service"
	"github.com/clinovate/clinic-scheduling-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// Principal rebuilds the authenticated principal from the claims stored by
// the auth middleware. A missing principal aborts the request with 401.
func (h *BaseHandler) Principal(c *gin.Context) (domain.Principal, bool) {
	principal, err := utils.PrincipalFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Authentication required"})
		return domain.Principal{}, false
	}
	return principal, true
}

// RespondError maps service and policy errors onto HTTP statuses.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, scope.ErrAccessDenied):
		c.JSON(http.StatusForbidden, dto.Error{Error: err.Error()})
	case errors.Is(err, scope.ErrTenantRequired), errors.Is(err, service.ErrInvalidParameters):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "record not found"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
