package models

// Medicine defines the structure for medicine stock records.
type Medicine struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Laboratory  string  `json:"laboratory"`
}

func (m *Medicine) PrimaryKey() int64 { return m.ID }
func (m *Medicine) AssignID(id int64) { m.ID = id }

// MedicineInput uses pointers for the numeric fields so that an explicit 0
// is distinguishable from a missing value.
type MedicineInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Quantity    *int     `json:"quantity" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	Laboratory  string   `json:"laboratory" validate:"required"`
}

type MedicinePatch struct {
	Name        *string  `json:"name" validate:"omitnil,min=1"`
	Description *string  `json:"description" validate:"omitnil,min=1"`
	Price       *float64 `json:"price" validate:"omitnil,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitnil,gte=0"`
	Category    *string  `json:"category" validate:"omitnil,min=1"`
	Laboratory  *string  `json:"laboratory" validate:"omitnil,min=1"`
}

func (p MedicinePatch) Apply(m *Medicine) {
	setString(&m.Name, p.Name)
	setString(&m.Description, p.Description)
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Quantity != nil {
		m.Quantity = *p.Quantity
	}
	setString(&m.Category, p.Category)
	setString(&m.Laboratory, p.Laboratory)
}
