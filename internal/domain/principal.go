package domain

// Principal is the authenticated actor behind a request. A superuser is
// exempt from tenant filtering; its TenantID, if any, is informational only.
type Principal struct {
	UserID    string  `json:"user_id"`
	TenantID  *string `json:"tenant_id,omitempty"`
	Superuser bool    `json:"superuser"`
}

// HasTenant reports whether the principal carries a usable tenant reference.
func (p Principal) HasTenant() bool {
	return p.TenantID != nil && *p.TenantID != ""
}
