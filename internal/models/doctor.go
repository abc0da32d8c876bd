package models

// Doctor defines the structure for doctor records.
type Doctor struct {
	ID            int64  `json:"id" gorm:"primaryKey"`
	Name          string `json:"name"`
	LastName      string `json:"lastName"`
	Specialty     string `json:"specialty"` // free text, informally a Specialty.Name
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber" gorm:"uniqueIndex"`
}

func (d *Doctor) PrimaryKey() int64 { return d.ID }
func (d *Doctor) AssignID(id int64) { d.ID = id }

// DoctorInput is the body accepted when creating a doctor.
type DoctorInput struct {
	Name          string `json:"name" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	Specialty     string `json:"specialty" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Email         string `json:"email" validate:"required"`
	LicenseNumber string `json:"licenseNumber" validate:"required"`
}

// DoctorPatch carries the fields present in an update body. Nil means omitted.
type DoctorPatch struct {
	Name          *string `json:"name" validate:"omitnil,min=1"`
	LastName      *string `json:"lastName" validate:"omitnil,min=1"`
	Specialty     *string `json:"specialty" validate:"omitnil,min=1"`
	Phone         *string `json:"phone" validate:"omitnil,min=1"`
	Email         *string `json:"email" validate:"omitnil,min=1"`
	LicenseNumber *string `json:"licenseNumber" validate:"omitnil,min=1"`
}

// Apply copies the present fields of p onto d.
func (p DoctorPatch) Apply(d *Doctor) {
	setString(&d.Name, p.Name)
	setString(&d.LastName, p.LastName)
	setString(&d.Specialty, p.Specialty)
	setString(&d.Phone, p.Phone)
	setString(&d.Email, p.Email)
	setString(&d.LicenseNumber, p.LicenseNumber)
}
