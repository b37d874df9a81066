package domain

type Therapist struct {
	ID               string        `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID         *string       `gorm:"type:uuid" json:"tenant_id,omitempty"`
	DocumentTypeID   string        `gorm:"type:uuid;not null" json:"document_type_id"`
	DocumentNumber   string        `gorm:"type:text;not null;unique" json:"document_number"`
	FirstName        string        `gorm:"type:text;not null" json:"first_name"`
	PaternalLastName string        `gorm:"type:text;not null" json:"paternal_last_name"`
	MaternalLastName string        `gorm:"type:text" json:"maternal_last_name"`
	Gender           Sex           `gorm:"type:text;not null" json:"gender"`
	Phone            string        `gorm:"type:text" json:"phone"`
	Email            string        `gorm:"type:text" json:"email"`
	Tenant           *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	DocumentType     *DocumentType `gorm:"foreignKey:DocumentTypeID" json:"-"`
}

func (Therapist) TableName() string {
	return "therapists"
}

func (t Therapist) TenantRef() *string {
	return t.TenantID
}

func (t *Therapist) SetTenantRef(id *string) {
	t.TenantID = id
}

// FullName joins the therapist's non-empty name parts, last names first.
func (t Therapist) FullName() string {
	return JoinNameParts(t.PaternalLastName, t.MaternalLastName, t.FirstName)
}

// TherapistAppointmentCount is one row of the appointments-per-therapist
// report: a therapist and how many appointments it has on the report date.
type TherapistAppointmentCount struct {
	TherapistID       string `json:"therapist_id"`
	FirstName         string `json:"first_name"`
	PaternalLastName  string `json:"paternal_last_name"`
	MaternalLastName  string `json:"maternal_last_name"`
	AppointmentsCount int64  `json:"appointments_count"`
}
