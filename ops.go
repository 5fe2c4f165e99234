package symcanon

import (
	"github.com/njchilds90/symcanon/internal/errwrap"
	"github.com/njchilds90/symcanon/number"
)

// The combinators in this file only normalize the top of the tree they
// build. Run Canonicalize on the result to get the fully reduced form.

// ============================================================
// Add
// ============================================================

// Add returns a + b.
func Add[T number.Coefficient[T]](a, b Expr[T]) Expr[T] {
	a.mustValid()
	b.mustValid()
	ka, kb := a.n.kind, b.n.kind
	switch {
	case ka == KindNumber && kb == KindNumber:
		return Num(a.n.value.Add(b.n.value))

	case ka == KindNumber && kb == KindAdd:
		return newSum(a.n.value.Add(b.n.value), b.n.terms)

	case ka == KindAdd && kb == KindNumber:
		return newSum(a.n.value.Add(b.n.value), a.n.terms)

	case ka == KindAdd && kb == KindAdd:
		terms := a.n.terms.clone()
		for _, t := range b.n.terms.terms {
			terms.add(t.Expr, t.Value)
		}
		terms.dropZeros()
		return newSum(a.n.value.Add(b.n.value), terms)

	case ka == KindAdd:
		return absorbTerm(a, b)

	case kb == KindAdd:
		return absorbTerm(b, a)

	case ka == KindNumber:
		return newSum(a.n.value, single(b, oneOf[T]()))

	case kb == KindNumber:
		return newSum(b.n.value, single(a, oneOf[T]()))
	}

	terms := newTermMap[T](2)
	terms.add(a, oneOf[T]())
	terms.add(b, oneOf[T]()) // a == b gives {a: 2}
	return newSum(zeroOf[T](), terms)
}

// absorbTerm adds the bare term x to the Add node s.
func absorbTerm[T number.Coefficient[T]](s, x Expr[T]) Expr[T] {
	terms := s.n.terms.clone()
	terms.increment(x, oneOf[T]())
	return newSum(s.n.value, terms)
}

// Neg returns -a.
func Neg[T number.Coefficient[T]](a Expr[T]) Expr[T] {
	a.mustValid()
	switch a.n.kind {
	case KindNumber:
		return Num(a.n.value.Neg())
	case KindAdd:
		return newSum(a.n.value.Neg(), a.n.terms.mapValues(func(c T) T { return c.Neg() }))
	case KindMul:
		// only the scalar flips, the exponents stay
		return newProduct(a.n.value.Neg(), a.n.terms)
	}
	return newSum(zeroOf[T](), single(a, oneOf[T]().Neg()))
}

// Sub returns a - b, built as a + (-b).
func Sub[T number.Coefficient[T]](a, b Expr[T]) Expr[T] {
	return Add(a, Neg(b))
}

// Sum adds all of xs from left to right. The empty sum is 0.
func Sum[T number.Coefficient[T]](xs ...Expr[T]) Expr[T] {
	if len(xs) == 0 {
		return Num(zeroOf[T]())
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = Add(acc, x)
	}
	return acc
}

// ============================================================
// Mul
// ============================================================

// Mul returns a · b. It mirrors Add: coefficients multiply and the exponents
// of matching keys add up.
func Mul[T number.Coefficient[T]](a, b Expr[T]) Expr[T] {
	a.mustValid()
	b.mustValid()
	ka, kb := a.n.kind, b.n.kind
	switch {
	case ka == KindNumber && kb == KindNumber:
		return Num(a.n.value.Mul(b.n.value))

	case ka == KindNumber && kb == KindMul:
		return newProduct(a.n.value.Mul(b.n.value), b.n.terms)

	case ka == KindMul && kb == KindNumber:
		return newProduct(a.n.value.Mul(b.n.value), a.n.terms)

	case ka == KindMul && kb == KindMul:
		terms := a.n.terms.clone()
		for _, t := range b.n.terms.terms {
			terms.add(t.Expr, t.Value)
		}
		terms.dropZeros()
		return newProduct(a.n.value.Mul(b.n.value), terms)

	case ka == KindMul:
		return absorbFactor(a, b)

	case kb == KindMul:
		return absorbFactor(b, a)

	case ka == KindNumber:
		return newProduct(a.n.value, single(b, oneOf[T]()))

	case kb == KindNumber:
		return newProduct(b.n.value, single(a, oneOf[T]()))
	}

	terms := newTermMap[T](2)
	terms.add(a, oneOf[T]())
	terms.add(b, oneOf[T]()) // a == b gives {a: 2}
	return newProduct(oneOf[T](), terms)
}

// absorbFactor multiplies the Mul node p by the bare factor x.
func absorbFactor[T number.Coefficient[T]](p, x Expr[T]) Expr[T] {
	terms := p.n.terms.clone()
	terms.increment(x, oneOf[T]())
	return newProduct(p.n.value, terms)
}

// Product multiplies all of xs from left to right. The empty product is 1.
func Product[T number.Coefficient[T]](xs ...Expr[T]) Expr[T] {
	if len(xs) == 0 {
		return Num(oneOf[T]())
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = Mul(acc, x)
	}
	return acc
}

// ============================================================
// Pow, Inv, Div
// ============================================================

// Pow returns a^k. A Number base is folded right away and a Mul has its
// scalar raised and its exponents scaled. When the scalar of a Mul has no k-th
// power in T, as with (2·x)^-1 over the integers, the Mul is kept whole as the
// base. Errors only come from folding a Number, for example 0^-1.
func Pow[T number.Coefficient[T]](a Expr[T], k T) (Expr[T], error) {
	a.mustValid()
	switch a.n.kind {
	case KindNumber:
		v, err := a.n.value.Pow(k)
		if err != nil {
			return Expr[T]{}, errwrap.Wrapf(err, "can't raise %s to %s", a, k)
		}
		return Num(v), nil

	case KindMul:
		coeff := a.n.value
		if !coeff.IsOne() {
			v, err := coeff.Pow(k)
			if err != nil {
				return newProduct(oneOf[T](), single(a, k)), nil
			}
			coeff = v
		}
		terms := a.n.terms.mapValues(func(e T) T { return e.Mul(k) })
		terms.dropZeros()
		return newProduct(coeff, terms), nil
	}
	return newProduct(oneOf[T](), single(a, k)), nil
}

// Inv returns 1/a.
func Inv[T number.Coefficient[T]](a Expr[T]) (Expr[T], error) {
	return Pow(a, oneOf[T]().Neg())
}

// Div returns a / b, built as a · b^-1.
func Div[T number.Coefficient[T]](a, b Expr[T]) (Expr[T], error) {
	a.mustValid()
	inv, err := Inv(b)
	if err != nil {
		return Expr[T]{}, errwrap.Wrapf(err, "can't divide by %s", b)
	}
	return Mul(a, inv), nil
}

// ============================================================
// Method forms
// ============================================================

// Add returns e + other.
func (e Expr[T]) Add(other Expr[T]) Expr[T] { return Add(e, other) }

// Sub returns e - other.
func (e Expr[T]) Sub(other Expr[T]) Expr[T] { return Sub(e, other) }

// Neg returns -e.
func (e Expr[T]) Neg() Expr[T] { return Neg(e) }

// Mul returns e · other.
func (e Expr[T]) Mul(other Expr[T]) Expr[T] { return Mul(e, other) }

// Div returns e / other.
func (e Expr[T]) Div(other Expr[T]) (Expr[T], error) { return Div(e, other) }

// Pow returns e^k.
func (e Expr[T]) Pow(k T) (Expr[T], error) { return Pow(e, k) }
