package pets

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// New crea la mascota con sus valores iniciales.
func New(name string) (Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Pet{}, ErrInvalidInput
	}

	return Pet{
		ID:        uuid.NewString(),
		Name:      name,
		Happiness: InitialHappiness,
		Stomach:   InitialStomach,
		Obedient:  true,
	}, nil
}

// Feed devuelve la mascota después de una comida.
func Feed(p Pet) Pet {
	p.Happiness += MealHappiness
	p.Stomach += MealStomach
	return p
}

func (p Pet) Status() Status {
	return Status{
		Happiness:      p.Happiness,
		StomachPercent: p.Stomach * 100,
	}
}
