// Package symcanon is a symbolic expression kernel with a canonical form.
//
// Design goals:
//   - Generic over the coefficient type (see package number)
//   - Immutable, shared expression nodes with structural equality and hashing
//   - n-ary Add and Mul nodes keyed by sub-expression, not binary trees
//   - A confluent canonicalizer: the same expression always reduces to the
//     same tree, whatever order it was built in
//
// Expressions are built from leaves (Num, Sym, Call) with the combinators
// Add, Neg, Sub, Mul, Pow and Div. The combinators only tidy the top of the
// tree they return; Canonicalize reduces the whole tree:
//
//	x, y := symcanon.Sym[number.Rat]("x"), symcanon.Sym[number.Rat]("y")
//	e := symcanon.Num(number.RatFromInt(3)).Add(x).Add(y)
//	c, err := e.Canonicalize() // (3 + x + y)
//
// Nodes are never modified after construction, so handles may be shared
// freely, including between goroutines. Functions must be registered before
// any goroutine reads the registry.
package symcanon
