package domain

import (
	"time"
)

type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
	SexOther  Sex = "O"
)

type Patient struct {
	ID               string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID         *string       `gorm:"type:uuid" json:"tenant_id,omitempty"`
	DocumentTypeID   string        `gorm:"type:uuid;not null" json:"document_type_id"`
	DocumentNumber   string        `gorm:"type:text;not null;unique" json:"document_number"`
	FirstName        string        `gorm:"type:text;not null" json:"first_name"`
	PaternalLastName string        `gorm:"type:text;not null" json:"paternal_last_name"`
	MaternalLastName string        `gorm:"type:text" json:"maternal_last_name"`
	Sex              Sex           `gorm:"type:text;not null" json:"sex"`
	PrimaryPhone     string        `gorm:"type:text" json:"primary_phone"`
	CreatedAt        time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	Tenant           *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	DocumentType     *DocumentType `gorm:"foreignKey:DocumentTypeID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

func (p Patient) TenantRef() *string {
	return p.TenantID
}

func (p *Patient) SetTenantRef(id *string) {
	p.TenantID = id
}

// FullName joins the patient's non-empty name parts, last names first.
func (p Patient) FullName() string {
	return JoinNameParts(p.PaternalLastName, p.MaternalLastName, p.FirstName)
}

type PatientFilter struct {
	DocumentNumber string `json:"document_number"`
	Sex            string `json:"sex"`
	Page           int    `json:"page"`
	PageSize       int    `json:"page_size"`
	Limit          int    `json:"limit"`
	Offset         int    `json:"offset"`
}
