package vecmath

import (
	"io"
	"log"
	"math"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[log.Logger]

func init() {
	logger.Store(log.New(os.Stderr, "vecmath: ", log.LstdFlags))
}

// SetLogger replaces the logger used for diagnostics. A nil logger silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	logger.Store(l)
}

// Fmod returns a modulo b for a >= b > 0 by repeated subtraction.
//
// a < b is treated as misuse: a diagnostic is logged and a is returned
// unchanged. The same happens for b <= 0 and infinite a, where the
// subtraction would never terminate. Quotients above maxSubtractions
// use math.Mod, as a - b rounds back to a once a is large enough.
func Fmod(a, b float64) float64 {
	if a < b {
		logger.Load().Printf("Fmod(%g, %g): attempting to find modulus within negative range, ignoring", a, b)
		return a
	}
	if b <= 0 || math.IsInf(a, 0) {
		logger.Load().Printf("Fmod(%g, %g): subtraction would not terminate, ignoring", a, b)
		return a
	}
	if a/b > maxSubtractions {
		return math.Mod(a, b)
	}
	for b <= a {
		a -= b
	}
	return a
}

const maxSubtractions = 1 << 20
