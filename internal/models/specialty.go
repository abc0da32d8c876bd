package models

// Specialty defines the structure for medical specialties. Names are unique
// regardless of case.
type Specialty struct {
	ID   int64  `json:"id" gorm:"primaryKey"`
	Name string `json:"name"`
}

func (s *Specialty) PrimaryKey() int64 { return s.ID }
func (s *Specialty) AssignID(id int64) { s.ID = id }

// SpecialtyInput is used for both create and update; the name is always required.
type SpecialtyInput struct {
	Name string `json:"name" validate:"required"`
}
