package pets

// Valores iniciales y efecto de una comida.
const (
	InitialHappiness = 50
	InitialStomach   = float32(0.5)

	MealHappiness = 10
	MealStomach   = float32(0.05)
)

// Pet es la mascota de la sesión. Se pasa por valor entre estados: quien la
// recibe devuelve la versión actualizada, nunca se comparte.
type Pet struct {
	ID   string
	Name string

	// Sin tope superior.
	Happiness int
	// Fracción de llenado, 0.5 = 50%. Tampoco se recorta.
	Stomach float32

	// Se fija al crear y hoy nada lo consulta.
	Obedient bool
}

// Status es lo que se muestra con el comando "status".
type Status struct {
	Happiness      int
	StomachPercent float32
}
