// Package number provides the coefficient types used by the symcanon kernel.
//
// The kernel never looks inside a coefficient. It only needs the ring
// operations, exponentiation, equality and a hash, which is what the
// Coefficient constraint describes. Int, Rat and Float are the bundled
// implementations.
package number

import (
	"errors"
	"fmt"
	"math/big"
)

// Coefficient is the numeric capability the kernel is generic over. Zero and
// One must work on the zero value of T. Values are immutable: no method may
// modify its receiver or its argument.
type Coefficient[T any] interface {
	Zero() T
	One() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	// Pow raises the receiver to the given power. It fails when the result
	// is not representable in T.
	Pow(T) (T, error)
	Equal(T) bool
	IsZero() bool
	IsOne() bool
	// Hash must agree with Equal.
	Hash() uint64
	String() string
}

// MaxExponent bounds the magnitude of exponents accepted by the exact types
// when the base is neither 0 nor ±1.
const MaxExponent = 1 << 16

var (
	// ErrDivisionByZero is returned when an operation would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNonIntegerExponent is returned when an exact type is raised to a
	// fractional power.
	ErrNonIntegerExponent = errors.New("exponent is not an integer")

	// ErrInexact is returned when the exact result does not exist in the
	// type, such as 2^-1 over the integers.
	ErrInexact = errors.New("result is not representable")

	// ErrExponentRange is returned for exponents larger than MaxExponent.
	ErrExponentRange = errors.New("exponent out of range")

	// ErrNotFinite is returned when a float operation produces NaN or Inf.
	ErrNotFinite = errors.New("result is not finite")

	// ErrSyntax is returned when a literal can't be parsed.
	ErrSyntax = errors.New("invalid syntax")
)

// Error records a failed coefficient operation.
type Error struct {
	Op  string // operation, eg: "pow"
	X   string // receiver
	Y   string // argument, may be empty
	Err error  // one of the sentinel errors above
}

// Error returns the printable form of the error.
func (obj *Error) Error() string {
	if obj.Y == "" {
		return fmt.Sprintf("number: %s(%s): %v", obj.Op, obj.X, obj.Err)
	}
	return fmt.Sprintf("number: %s(%s, %s): %v", obj.Op, obj.X, obj.Y, obj.Err)
}

// Unwrap returns the sentinel error.
func (obj *Error) Unwrap() error { return obj.Err }

func powError(x, y fmt.Stringer, err error) error {
	return &Error{Op: "pow", X: x.String(), Y: y.String(), Err: err}
}

var maxExponent = big.NewInt(MaxExponent)

// zeroPow returns 0^n for n >= 0.
func zeroPow(n *big.Int) *big.Int {
	if n.Sign() == 0 {
		return big.NewInt(1)
	}
	return new(big.Int)
}

func zeroPowError(x, y fmt.Stringer, n *big.Int) error {
	if n.Sign() < 0 {
		return powError(x, y, ErrDivisionByZero)
	}
	return nil
}

// minusOnePow returns (-1)^n, which only depends on the parity of n.
func minusOnePow(n *big.Int) *big.Int {
	if new(big.Int).Abs(n).Bit(0) == 0 {
		return big.NewInt(1)
	}
	return big.NewInt(-1)
}
