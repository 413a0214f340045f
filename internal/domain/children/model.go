package children

import "time"

// Sex del bebé.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

func (s Sex) Valid() bool {
	switch s {
	case SexMale, SexFemale, SexUnknown:
		return true
	}
	return false
}

// Child es el perfil del bebé. Todos los eventos registrados pertenecen a un Child.
type Child struct {
	ID          string
	OwnerUserID string

	Name string
	Sex  Sex

	BirthDate *time.Time

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
