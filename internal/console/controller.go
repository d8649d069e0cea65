// Package console conduce la conversación con la mascota por stdin/stdout.
//
// El bucle es explícito: cada estado atiende una interacción y devuelve el
// siguiente estado junto con la mascota actualizada, hasta StateTerminated.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"billy-pet/internal/domain/pets"
	"billy-pet/internal/platform/logger"
	"billy-pet/internal/platform/random"
)

type Options struct {
	In  io.Reader // nil = os.Stdin
	Out io.Writer // nil = os.Stdout

	// Rand sortea secretos y mensajes. nil = random.New(0).
	Rand   random.Source
	Logger logger.Logger
}

type Controller struct {
	in  *lineReader
	out io.Writer
	rng random.Source

	base logger.Logger
	// log lleva los campos de la sesión en curso.
	log logger.Logger

	// Última línea que ningún menú reconoció.
	unrecognized string
	writeErr     error
}

func New(opts Options) *Controller {
	in := opts.In
	if in == nil {
		in = os.Stdin
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	rng := opts.Rand
	if rng == nil {
		rng = random.New(0)
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Controller{
		in:   newLineReader(in),
		out:  out,
		rng:  rng,
		base: log,
		log:  log,
	}
}

type handler func(c *Controller, pet pets.Pet) (State, pets.Pet, error)

var handlers = map[State]handler{
	StateMenu:         (*Controller).menu,
	StateFeeding:      (*Controller).feed,
	StateGuessing:     (*Controller).guessingGame,
	StateTools:        (*Controller).tools,
	StateTemperature:  (*Controller).temperature,
	StateStatus:       (*Controller).status,
	StateUnrecognized: (*Controller).undefinedChoice,
	StateTerminated:   (*Controller).quit,
}

// Run saluda y atiende comandos hasta "quit"/"q". Devuelve la mascota tal
// como quedó al final de la sesión.
func (c *Controller) Run(ctx context.Context, pet pets.Pet) (pets.Pet, error) {
	log := c.base.With(map[string]any{
		"session_id": uuid.NewString(),
		"pet_id":     pet.ID,
	})
	c.log = log
	log.Info("session started", map[string]any{"pet": pet.Name})

	c.say(greetingLines...)

	state := StateMenu
	for {
		if err := ctx.Err(); err != nil {
			return pet, err
		}

		h, ok := handlers[state]
		if !ok {
			return pet, fmt.Errorf("no handler for state %s", state)
		}

		next, updated, err := h(c, pet)
		if err == nil && c.writeErr != nil {
			err = fmt.Errorf("write output: %w", c.writeErr)
		}
		if err != nil {
			lvl := log.Error
			if errors.Is(err, ErrInputClosed) {
				lvl = log.Warn
			}
			lvl("session aborted", map[string]any{"state": state.String(), "err": err.Error()})
			return updated, err
		}

		if state == StateTerminated {
			log.Info("session ended", map[string]any{
				"happiness": updated.Happiness,
				"stomach":   updated.Stomach,
			})
			return updated, nil
		}

		log.Debug("state transition", map[string]any{"from": state.String(), "to": next.String()})
		state, pet = next, updated
	}
}

func (c *Controller) say(lines ...string) {
	if c.writeErr != nil {
		return
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(c.out, l); err != nil {
			c.writeErr = err
			return
		}
	}
}

func (c *Controller) sayf(format string, args ...any) {
	c.say(fmt.Sprintf(format, args...))
}
