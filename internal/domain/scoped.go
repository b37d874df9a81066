package domain

import "strings"

// TenantReader is implemented by every entity kind that carries a tenant
// reference. A nil reference means the row predates tenant partitioning and
// is treated as shared.
type TenantReader interface {
	TenantRef() *string
}

// TenantScoped extends TenantReader with the write side used by the scope
// guard when stamping the owning tenant onto a row.
type TenantScoped interface {
	TenantReader
	SetTenantRef(id *string)
}

// JoinNameParts builds a display name from name parts, dropping empty ones.
func JoinNameParts(parts ...string) string {
	nonEmpty := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			nonEmpty = append(nonEmpty, strings.TrimSpace(part))
		}
	}
	return strings.Join(nonEmpty, " ")
}
