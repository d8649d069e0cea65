// Package guessing implementa el juego de adivinar un número entre 1 y 100.
package guessing

import (
	"strconv"
	"strings"

	"billy-pet/internal/platform/random"
)

const (
	MinSecret = 1
	MaxSecret = 100

	// El 13 tiene su propio mensaje.
	SpookySecret = 13
)

const (
	InOneMessage  = "Mee-WOWOWOWOW! YOU GOT IT IN ONE GUESS!!! Are you psychic? We're really in sync."
	SpookyMessage = "SpooOoOoOoky! The secret number was 13. Don't worry buddy, it's not bad luck. Good guess!"
)

// Congratulations son los mensajes de victoria genéricos.
var Congratulations = []string{
	"Meow, yes! You got it!",
	"Yep! Mrrrrow you got it!",
	"Not bad, meow, That was it!",
	"Ding ding ding! Winner winner chicken dinner! Also... I'd like a chicken dinner",
	"That's it! Mee-WOW, we've got a winner over here!",
}

type Outcome int

const (
	TooSmall Outcome = iota
	TooBig
	Correct
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "too_small"
	case TooBig:
		return "too_big"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Game es una partida. No se reutiliza: cada partida sortea su propio secreto.
type Game struct {
	rng     random.Source
	secret  int
	guesses int
}

func New(rng random.Source) *Game {
	return &Game{
		rng:    rng,
		secret: random.Between(rng, MinSecret, MaxSecret),
	}
}

// ParseGuess acepta solo enteros no negativos (32 bits). El resto se ignora
// sin mensaje y no cuenta como intento.
func ParseGuess(line string) (int, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(line), 10, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// Guess registra un intento y lo compara con el secreto.
func (g *Game) Guess(n int) Outcome {
	g.guesses++
	switch {
	case n < g.secret:
		return TooSmall
	case n > g.secret:
		return TooBig
	default:
		return Correct
	}
}

func (g *Game) Guesses() int { return g.guesses }
func (g *Game) Secret() int  { return g.secret }

// WinMessage elige el mensaje final: primero "a la primera", luego el 13,
// y si no uno al azar de Congratulations.
func (g *Game) WinMessage() string {
	if g.guesses == 1 {
		return InOneMessage
	}
	if g.secret == SpookySecret {
		return SpookyMessage
	}
	return Congratulations[g.rng.IntN(len(Congratulations))]
}
