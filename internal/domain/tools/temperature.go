package tools

import (
	"strconv"
	"strings"
)

// Factor aproximado de 5/9. Se mantiene así para que la salida coincida con
// la versión de siempre (32°F -> 0, 98.6°F -> 37.00296).
const fahrenheitToCelsiusFactor = float32(0.5556)

type Unit int

const (
	Fahrenheit Unit = iota + 1
	Celsius
)

func (u Unit) String() string {
	switch u {
	case Fahrenheit:
		return "Fahrenheit"
	case Celsius:
		return "Celsius"
	default:
		return "unknown"
	}
}

// Other es la unidad de destino de una conversión.
func (u Unit) Other() Unit {
	if u == Fahrenheit {
		return Celsius
	}
	return Fahrenheit
}

func FahrenheitToCelsius(f float32) float32 {
	return (f - 32) * fahrenheitToCelsiusFactor
}

func CelsiusToFahrenheit(c float32) float32 {
	return c*1.8 + 32
}

// Convert pasa value desde la unidad from a la otra.
func Convert(from Unit, value float32) float32 {
	if from == Fahrenheit {
		return FahrenheitToCelsius(value)
	}
	return CelsiusToFahrenheit(value)
}

// ParseTemperature nunca falla: lo que no es un número vale 0.
func ParseTemperature(line string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(line), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// FormatTemperature imprime la forma más corta que identifica al float32.
func FormatTemperature(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}
