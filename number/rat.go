package number

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

var (
	ratZero     = new(big.Rat)
	ratMinusOne = big.NewRat(-1, 1)
)

// Rat is an exact rational number. The zero value is 0.
type Rat struct{ v *big.Rat }

// NewRat returns p/q. It panics when q is zero.
func NewRat(p, q int64) Rat {
	if q == 0 {
		panic("number: denominator is zero")
	}
	return Rat{v: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// RatFromInt returns n/1.
func RatFromInt(n int64) Rat { return Rat{v: new(big.Rat).SetInt64(n)} }

// RatFromBig copies r into a new Rat.
func RatFromBig(r *big.Rat) Rat { return Rat{v: new(big.Rat).Set(r)} }

// ParseRat reads a literal such as "3", "-2/5" or "0.25".
func ParseRat(s string) (Rat, error) {
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, &Error{Op: "parse", X: s, Err: ErrSyntax}
	}
	return Rat{v: v}, nil
}

func (r Rat) val() *big.Rat {
	if r.v == nil {
		return ratZero
	}
	return r.v
}

// Big returns a copy of the underlying rational.
func (r Rat) Big() *big.Rat { return new(big.Rat).Set(r.val()) }

func (Rat) Zero() Rat { return Rat{v: new(big.Rat)} }
func (Rat) One() Rat  { return RatFromInt(1) }

func (r Rat) Add(o Rat) Rat { return Rat{v: new(big.Rat).Add(r.val(), o.val())} }
func (r Rat) Sub(o Rat) Rat { return Rat{v: new(big.Rat).Sub(r.val(), o.val())} }
func (r Rat) Mul(o Rat) Rat { return Rat{v: new(big.Rat).Mul(r.val(), o.val())} }
func (r Rat) Neg() Rat      { return Rat{v: new(big.Rat).Neg(r.val())} }

// Quo returns r/o.
func (r Rat) Quo(o Rat) (Rat, error) {
	if o.IsZero() {
		return Rat{}, &Error{Op: "quo", X: r.String(), Y: o.String(), Err: ErrDivisionByZero}
	}
	return Rat{v: new(big.Rat).Quo(r.val(), o.val())}, nil
}

func (r Rat) Equal(o Rat) bool { return r.val().Cmp(o.val()) == 0 }
func (r Rat) IsZero() bool     { return r.val().Sign() == 0 }
func (r Rat) IsOne() bool      { return r.val().Cmp(big.NewRat(1, 1)) == 0 }
func (r Rat) IsInteger() bool  { return r.val().IsInt() }
func (r Rat) Sign() int        { return r.val().Sign() }

func (r Rat) String() string {
	if r.val().IsInt() {
		return r.val().Num().String()
	}
	return r.val().RatString()
}

// Hash covers sign, numerator and denominator. big.Rat is always kept in
// lowest terms so equal values hash the same.
func (r Rat) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(r.val().Sign() + 1)})
	_, _ = d.Write(r.val().Num().Bytes())
	_, _ = d.Write([]byte{'/'})
	_, _ = d.Write(r.val().Denom().Bytes())
	return d.Sum64()
}

// Pow returns r^e for an integer e. Bases 0, 1 and -1 accept exponents of
// any size.
func (r Rat) Pow(e Rat) (Rat, error) {
	if r.IsOne() {
		return r.One(), nil
	}
	if !e.val().IsInt() {
		return Rat{}, powError(r, e, ErrNonIntegerExponent)
	}
	exp := e.val().Num()
	switch {
	case r.IsZero():
		if err := zeroPowError(r, e, exp); err != nil {
			return Rat{}, err
		}
		return Rat{v: new(big.Rat).SetInt(zeroPow(exp))}, nil
	case r.val().Cmp(ratMinusOne) == 0:
		return Rat{v: new(big.Rat).SetInt(minusOnePow(exp))}, nil
	}
	k := new(big.Int).Abs(exp)
	if k.Cmp(maxExponent) > 0 {
		return Rat{}, powError(r, e, ErrExponentRange)
	}
	num := new(big.Int).Exp(r.val().Num(), k, nil)
	den := new(big.Int).Exp(r.val().Denom(), k, nil)
	if exp.Sign() < 0 {
		num, den = den, num
	}
	return Rat{v: new(big.Rat).SetFrac(num, den)}, nil
}
