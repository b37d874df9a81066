package domain

// DocumentType is a tenant-scoped lookup table for identity document kinds.
// Rows with a nil tenant are legacy shared entries visible to every tenant.
type DocumentType struct {
	ID       string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID *string `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Name     string  `gorm:"type:text;not null" json:"name"`
	Tenant   *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (DocumentType) TableName() string {
	return "document_types"
}

func (d DocumentType) TenantRef() *string {
	return d.TenantID
}

func (d *DocumentType) SetTenantRef(id *string) {
	d.TenantID = id
}

// PaymentType is a tenant-scoped lookup table for payment methods.
type PaymentType struct {
	ID       string  `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID *string `gorm:"type:uuid" json:"tenant_id,omitempty"`
	Name     string  `gorm:"type:text;not null" json:"name"`
	Tenant   *Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

func (PaymentType) TableName() string {
	return "payment_types"
}

func (p PaymentType) TenantRef() *string {
	return p.TenantID
}

func (p *PaymentType) SetTenantRef(id *string) {
	p.TenantID = id
}
