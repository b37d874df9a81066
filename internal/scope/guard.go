// Package scope enforces tenant-based row visibility and write stamping.
// Every read of a tenant-scoped collection and every create or update of a
// tenant-scoped entity must pass through the Guard; nothing else in the
// codebase decides tenant visibility.
package scope

import (
	"errors"

	"github.com/clinovate/clinic-scheduling-api/internal/domain"
)

var (
	// ErrAccessDenied signals a restricted principal without a tenant, or an
	// operation that structurally cannot be scoped for the caller.
	ErrAccessDenied = errors.New("access denied: principal has no tenant")

	// ErrTenantRequired signals a superuser write that did not supply an
	// explicit tenant for a tenant-scoped entity.
	ErrTenantRequired = errors.New("tenant is required for tenant-scoped entities")
)

// TenantFieldName is the entity field restricted principals may never set
// directly. ApplyOnSave overwrites it regardless of what the caller sent.
const TenantFieldName = "tenant_id"

// Scope is the visibility window a principal gets over tenant-scoped rows.
// Repositories translate it into a tenant predicate on their queries.
type Scope struct {
	// All grants unrestricted cross-tenant visibility.
	All bool
	// TenantID is the single visible tenant when All is false.
	TenantID string
}

type Guard struct{}

func NewGuard() *Guard {
	return &Guard{}
}

// ReadScope derives the visibility window for a principal. Superusers see
// everything; restricted principals see exactly their own tenant; a
// restricted principal without a tenant is denied outright.
func (g *Guard) ReadScope(p domain.Principal) (Scope, error) {
	if p.Superuser {
		return Scope{All: true}, nil
	}
	if !p.HasTenant() {
		return Scope{}, ErrAccessDenied
	}
	return Scope{TenantID: *p.TenantID}, nil
}

// HiddenFields returns the entity fields the principal may not set directly.
// Restricted principals never get to choose the owning tenant of a row.
func (g *Guard) HiddenFields(p domain.Principal) []string {
	if p.Superuser {
		return nil
	}
	return []string{TenantFieldName}
}

// ApplyOnSave stamps the authoritative tenant onto an entity before it is
// persisted. This is the single choke point for tenant assignment: it runs
// on every create and every update, and for restricted principals it
// overwrites whatever tenant value the caller attempted to set. Superusers
// keep the tenant they supplied, but must supply one.
func (g *Guard) ApplyOnSave(p domain.Principal, entity domain.TenantScoped) error {
	if p.Superuser {
		ref := entity.TenantRef()
		if ref == nil || *ref == "" {
			return ErrTenantRequired
		}
		return nil
	}
	if !p.HasTenant() {
		return ErrAccessDenied
	}
	tenantID := *p.TenantID
	entity.SetTenantRef(&tenantID)
	return nil
}

// ScopeForRead filters an already-loaded collection down to the rows the
// principal may see. Rows of other tenants are silently absent from the
// result; absence, not an error, is the "not visible" signal.
func ScopeForRead[T domain.TenantReader](p domain.Principal, rows []T) ([]T, error) {
	if p.Superuser {
		return rows, nil
	}
	if !p.HasTenant() {
		return nil, ErrAccessDenied
	}
	visible := make([]T, 0, len(rows))
	for _, row := range rows {
		ref := row.TenantRef()
		if ref != nil && *ref == *p.TenantID {
			visible = append(visible, row)
		}
	}
	return visible, nil
}

// ForeignKeyChoices filters the referenceable rows offered to a principal,
// e.g. which patients an appointment form may select. Entity kinds without a
// tenant attribute pass through unfiltered, and rows with a nil tenant are
// shared reference data visible to everyone.
func ForeignKeyChoices[T any](p domain.Principal, rows []T) ([]T, error) {
	if p.Superuser || len(rows) == 0 {
		return rows, nil
	}
	if _, ok := any(rows[0]).(domain.TenantReader); !ok {
		return rows, nil
	}
	if !p.HasTenant() {
		return nil, ErrAccessDenied
	}
	visible := make([]T, 0, len(rows))
	for _, row := range rows {
		ref := any(row).(domain.TenantReader).TenantRef()
		if ref == nil || *ref == *p.TenantID {
			visible = append(visible, row)
		}
	}
	return visible, nil
}
