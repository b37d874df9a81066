package postgres

import (
	"gorm.io/gorm"

	"github.com/clinovate/clinic-scheduling-api/internal/scope"
)

// applyScope translates a visibility scope into a tenant predicate.
func applyScope(db *gorm.DB, sc scope.Scope) *gorm.DB {
	if sc.All {
		return db
	}
	return db.Where("tenant_id = ?", sc.TenantID)
}

// applySharedScope is applyScope for lookup tables where a NULL tenant marks
// a legacy shared row visible to every tenant.
func applySharedScope(db *gorm.DB, sc scope.Scope) *gorm.DB {
	if sc.All {
		return db
	}
	return db.Where("tenant_id = ? OR tenant_id IS NULL", sc.TenantID)
}

// applyPrefixedScope is applyScope with an explicit table alias, for joined
// queries where tenant_id would otherwise be ambiguous.
func applyPrefixedScope(db *gorm.DB, sc scope.Scope, alias string) *gorm.DB {
	if sc.All {
		return db
	}
	return db.Where(alias+".tenant_id = ?", sc.TenantID)
}
