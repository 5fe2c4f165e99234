package number

import (
	"math/big"

	"github.com/cespare/xxhash/v2"
)

var bigZero = new(big.Int)

// Int is an arbitrary-size integer. The zero value is 0.
type Int struct{ v *big.Int }

// NewInt returns n as an Int.
func NewInt(n int64) Int { return Int{v: big.NewInt(n)} }

// IntFromBig copies b into a new Int.
func IntFromBig(b *big.Int) Int { return Int{v: new(big.Int).Set(b)} }

// ParseInt reads a base 10 integer literal.
func ParseInt(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, &Error{Op: "parse", X: s, Err: ErrSyntax}
	}
	return Int{v: v}, nil
}

func (i Int) val() *big.Int {
	if i.v == nil {
		return bigZero
	}
	return i.v
}

// Big returns a copy of the underlying integer.
func (i Int) Big() *big.Int { return new(big.Int).Set(i.val()) }

func (Int) Zero() Int { return Int{v: new(big.Int)} }
func (Int) One() Int  { return NewInt(1) }

func (i Int) Add(o Int) Int { return Int{v: new(big.Int).Add(i.val(), o.val())} }
func (i Int) Sub(o Int) Int { return Int{v: new(big.Int).Sub(i.val(), o.val())} }
func (i Int) Mul(o Int) Int { return Int{v: new(big.Int).Mul(i.val(), o.val())} }
func (i Int) Neg() Int      { return Int{v: new(big.Int).Neg(i.val())} }

func (i Int) Equal(o Int) bool { return i.val().Cmp(o.val()) == 0 }
func (i Int) IsZero() bool     { return i.val().Sign() == 0 }
func (i Int) IsOne() bool      { return i.val().IsInt64() && i.val().Int64() == 1 }
func (i Int) Sign() int        { return i.val().Sign() }
func (i Int) String() string   { return i.val().String() }

// Hash covers the sign and magnitude.
func (i Int) Hash() uint64 {
	d := xxhash.New()
	_, _ = d.Write([]byte{byte(i.val().Sign() + 1)})
	_, _ = d.Write(i.val().Bytes())
	return d.Sum64()
}

// Pow returns i^e. Negative exponents only succeed for the units 1 and -1.
// Bases 0, 1 and -1 accept exponents of any size.
func (i Int) Pow(e Int) (Int, error) {
	base, exp := i.val(), e.val()
	switch {
	case base.Sign() == 0:
		if err := zeroPowError(i, e, exp); err != nil {
			return Int{}, err
		}
		return Int{v: zeroPow(exp)}, nil
	case base.IsInt64() && base.Int64() == 1:
		return i.One(), nil
	case base.IsInt64() && base.Int64() == -1:
		return Int{v: minusOnePow(exp)}, nil
	case exp.Sign() < 0:
		return Int{}, powError(i, e, ErrInexact)
	case exp.Cmp(maxExponent) > 0:
		return Int{}, powError(i, e, ErrExponentRange)
	}
	return Int{v: new(big.Int).Exp(base, exp, nil)}, nil
}
