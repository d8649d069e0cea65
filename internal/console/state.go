package console

// State es cada pantalla de la conversación. Todas vuelven al menú salvo
// StateTools (la conversión regresa al laboratorio) y StateTerminated.
type State int

const (
	StateMenu State = iota
	StateFeeding
	StateGuessing
	StateTools
	StateTemperature
	StateStatus
	StateUnrecognized
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateFeeding:
		return "feeding"
	case StateGuessing:
		return "guessing"
	case StateTools:
		return "tools"
	case StateTemperature:
		return "temperature"
	case StateStatus:
		return "status"
	case StateUnrecognized:
		return "unrecognized"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// menuCommands: coincidencia exacta, sensible a mayúsculas, sobre la línea recortada.
var menuCommands = map[string]State{
	"feed":   StateFeeding,
	"game":   StateGuessing,
	"play":   StateGuessing,
	"tools":  StateTools,
	"status": StateStatus,
	"quit":   StateTerminated,
	"q":      StateTerminated,
}
