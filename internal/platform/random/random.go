package random

import (
	"math/rand/v2"
	"time"
)

// Source entrega enteros uniformes en [0, n). *rand.Rand ya lo cumple.
type Source interface {
	IntN(n int) int
}

// New crea una fuente PCG. Con seed 0 se siembra con el reloj.
func New(seed int64) Source {
	s := uint64(seed)
	if seed == 0 {
		s = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// Between devuelve un entero uniforme en [lo, hi], ambos inclusive.
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}
