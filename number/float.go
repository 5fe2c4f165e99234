package number

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Float is an IEEE 754 double. It is not exact, but it is what the original
// exp/ln style functions were written against.
type Float float64

// ParseFloat reads a float literal.
func ParseFloat(s string) (Float, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &Error{Op: "parse", X: s, Err: ErrSyntax}
	}
	return Float(f), nil
}

func (Float) Zero() Float { return 0 }
func (Float) One() Float  { return 1 }

func (f Float) Add(o Float) Float { return f + o }
func (f Float) Sub(o Float) Float { return f - o }
func (f Float) Mul(o Float) Float { return f * o }
func (f Float) Neg() Float        { return -f }

func (f Float) Equal(o Float) bool { return f == o || (f.isNaN() && o.isNaN()) }
func (f Float) IsZero() bool       { return f == 0 }
func (f Float) IsOne() bool        { return f == 1 }
func (f Float) String() string     { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

func (f Float) isNaN() bool { return math.IsNaN(float64(f)) }

// Hash folds -0 into 0 and every NaN into a single value so that it agrees
// with Equal.
func (f Float) Hash() uint64 {
	bits := math.Float64bits(float64(f))
	switch {
	case f == 0:
		bits = 0
	case f.isNaN():
		bits = 0x7ff8000000000001
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	return xxhash.Sum64(buf[:])
}

// Pow returns f^e and fails on NaN or infinite results.
func (f Float) Pow(e Float) (Float, error) {
	p := math.Pow(float64(f), float64(e))
	if math.IsNaN(p) || math.IsInf(p, 0) {
		if f == 0 && e < 0 {
			return 0, powError(f, e, ErrDivisionByZero)
		}
		return 0, powError(f, e, ErrNotFinite)
	}
	return Float(p), nil
}
