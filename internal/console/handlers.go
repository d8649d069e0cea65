package console

import (
	"strconv"

	"billy-pet/internal/domain/guessing"
	"billy-pet/internal/domain/pets"
	"billy-pet/internal/domain/tools"
)

func (c *Controller) menu(pet pets.Pet) (State, pets.Pet, error) {
	c.say(artLines...)
	c.say(menuLines...)

	line, err := c.in.ReadLine()
	if err != nil {
		return StateMenu, pet, err
	}

	next, ok := menuCommands[line]
	if !ok {
		c.unrecognized = line
		return StateUnrecognized, pet, nil
	}
	return next, pet, nil
}

func (c *Controller) feed(pet pets.Pet) (State, pets.Pet, error) {
	c.sayf(fedLineFormat, pet.Name)
	c.say(fedReaction, "")

	return StateMenu, pets.Feed(pet), nil
}

func (c *Controller) status(pet pets.Pet) (State, pets.Pet, error) {
	st := pet.Status()
	c.sayf(happinessFormat, st.Happiness)
	c.sayf(stomachFormat, strconv.FormatFloat(float64(st.StomachPercent), 'f', -1, 32))

	return StateMenu, pet, nil
}

// guessingGame tiene su propio bucle de lectura hasta acertar.
func (c *Controller) guessingGame(pet pets.Pet) (State, pets.Pet, error) {
	c.say(gameIntro)

	game := guessing.New(c.rng)
	for {
		c.say(guessPrompt)

		line, err := c.in.ReadLine()
		if err != nil {
			return StateGuessing, pet, err
		}

		n, ok := guessing.ParseGuess(line)
		if !ok {
			continue
		}

		c.sayf(guessedFormat, n)
		outcome := game.Guess(n)
		c.log.Debug("guess", map[string]any{"guess": n, "outcome": outcome.String()})

		if outcome == guessing.TooSmall {
			c.say(tooSmallLine)
			continue
		}
		if outcome == guessing.TooBig {
			c.say(tooBigLine)
			continue
		}

		c.say(game.WinMessage())
		c.log.Info("game won", map[string]any{"guesses": game.Guesses(), "secret": game.Secret()})
		break
	}

	for i := 0; i < gameOutroCount; i++ {
		c.say(gameOutroLine)
	}
	c.say("")

	return StateMenu, pet, nil
}

func (c *Controller) tools(pet pets.Pet) (State, pets.Pet, error) {
	c.say(labIntro, labConvert)

	line, err := c.in.ReadLine()
	if err != nil {
		return StateTools, pet, err
	}

	if line != "1" {
		c.unrecognized = line
		return StateUnrecognized, pet, nil
	}
	return StateTemperature, pet, nil
}

// temperature convierte y vuelve al laboratorio, no al menú principal.
// Una opción desconocida sí acaba en el menú principal.
func (c *Controller) temperature(pet pets.Pet) (State, pets.Pet, error) {
	c.say(unitQuestion, unitChoiceF, unitChoiceC)

	line, err := c.in.ReadLine()
	if err != nil {
		return StateTemperature, pet, err
	}

	var from tools.Unit
	switch line {
	case "1":
		from = tools.Fahrenheit
	case "2":
		from = tools.Celsius
	default:
		c.unrecognized = line
		return StateUnrecognized, pet, nil
	}

	c.sayf(tempPrompt, from)
	line, err = c.in.ReadLine()
	if err != nil {
		return StateTemperature, pet, err
	}

	value := tools.ParseTemperature(line)
	result := tools.Convert(from, value)
	c.sayf(convertFormat,
		tools.FormatTemperature(value), from,
		tools.FormatTemperature(result), from.Other(),
	)

	return StateTools, pet, nil
}

func (c *Controller) quit(pet pets.Pet) (State, pets.Pet, error) {
	c.say(farewell)
	return StateTerminated, pet, nil
}

func (c *Controller) undefinedChoice(pet pets.Pet) (State, pets.Pet, error) {
	c.sayf(unrecognizedFormat, c.unrecognized)
	c.say(unrecognizedReply, "")
	c.unrecognized = ""

	return StateMenu, pet, nil
}
