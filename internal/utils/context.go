package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

type ContextKey string

const (
	ClaimsKey ContextKey = "claims"
)

var (
	ErrNoClaimsInContext  = errors.New("no claims found in context")
	ErrInvalidClaimsType  = errors.New("invalid claims type")
	ErrNoUserIDInClaims   = errors.New("no user_id found in claims")
	ErrInvalidClaimValues = errors.New("claim values have unexpected types")
)

// PrincipalFromContext rebuilds the authenticated principal from the JWT
// claims the auth middleware stored in the context. Handlers call this once
// and pass the principal explicitly from there on; nothing below the
// transport layer reads ambient identity.
func PrincipalFromContext(c context.Context) (domain.Principal, error) {
	claims, ok := c.Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, ErrNoClaimsInContext
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return domain.Principal{}, ErrNoUserIDInClaims
	}

	principal := domain.Principal{UserID: userID}

	if superuser, exists := claims["superuser"]; exists {
		value, ok := superuser.(bool)
		if !ok {
			return domain.Principal{}, ErrInvalidClaimValues
		}
		principal.Superuser = value
	}

	if tenantID, exists := claims["tenant_id"]; exists && tenantID != nil {
		value, ok := tenantID.(string)
		if !ok {
			return domain.Principal{}, ErrInvalidClaimValues
		}
		if value != "" {
			principal.TenantID = &value
		}
	}

	return principal, nil
}
