package models

// Patient defines the structure for patient records.
type Patient struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Gender   string `json:"gender"`
	Illness  string `json:"illness"`
}

func (p *Patient) PrimaryKey() int64 { return p.ID }
func (p *Patient) AssignID(id int64) { p.ID = id }

type PatientInput struct {
	Name     string `json:"name" validate:"required"`
	LastName string `json:"lastName" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Illness  string `json:"illness" validate:"required"`
}

type PatientPatch struct {
	Name     *string `json:"name" validate:"omitnil,min=1"`
	LastName *string `json:"lastName" validate:"omitnil,min=1"`
	Email    *string `json:"email" validate:"omitnil,min=1"`
	Gender   *string `json:"gender" validate:"omitnil,min=1"`
	Illness  *string `json:"illness" validate:"omitnil,min=1"`
}

func (p PatientPatch) Apply(pt *Patient) {
	setString(&pt.Name, p.Name)
	setString(&pt.LastName, p.LastName)
	setString(&pt.Email, p.Email)
	setString(&pt.Gender, p.Gender)
	setString(&pt.Illness, p.Illness)
}
