package symcanon

import (
	"encoding/binary"
	"fmt"
	"unique"

	"github.com/cespare/xxhash/v2"
	"github.com/njchilds90/symcanon/number"
)

// ============================================================
// Kind
// ============================================================

// Kind identifies the variant of an expression node.
type Kind uint8

const (
	KindInvalid Kind = iota // the zero Expr
	KindNumber
	KindSymbol
	KindAdd
	KindMul
	KindFunc
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindAdd:
		return "add"
	case KindMul:
		return "mul"
	case KindFunc:
		return "func"
	}
	return "invalid"
}

// ============================================================
// Expr
// ============================================================

// Expr is a handle to an immutable expression node. Copying an Expr is cheap
// and shares the node. Two handles are equal when their trees are
// structurally equal, whatever path built them.
type Expr[T number.Coefficient[T]] struct {
	n *node[T]
}

// node is one expression. Which fields are set depends on kind:
//
//	Number: value
//	Symbol: name
//	Add:    value + Σ terms[k]·k
//	Mul:    value · Π k^terms[k]
//	Func:   fn(arg)
type node[T number.Coefficient[T]] struct {
	kind  Kind
	value T
	name  unique.Handle[string]
	terms *termMap[T]
	fn    *Function
	arg   Expr[T]
	hash  uint64
}

func build[T number.Coefficient[T]](n *node[T]) Expr[T] {
	n.hash = n.computeHash()
	return Expr[T]{n: n}
}

func (n *node[T]) computeHash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	_, _ = d.Write([]byte{byte(n.kind)}) // variant first
	switch n.kind {
	case KindNumber:
		put(n.value.Hash())
	case KindSymbol:
		_, _ = d.WriteString(n.name.Value())
	case KindAdd, KindMul:
		put(n.value.Hash())
		put(n.terms.hash())
	case KindFunc:
		_, _ = d.WriteString(n.fn.Name())
		put(n.arg.Hash())
	}
	return d.Sum64()
}

func zeroOf[T number.Coefficient[T]]() T {
	var t T
	return t.Zero()
}

func oneOf[T number.Coefficient[T]]() T {
	var t T
	return t.One()
}

// Num returns a Number node holding v.
func Num[T number.Coefficient[T]](v T) Expr[T] {
	return build(&node[T]{kind: KindNumber, value: v})
}

// Sym returns a Symbol node. Symbols live in one global namespace: two symbols
// with the same name are the same symbol.
func Sym[T number.Coefficient[T]](name string) Expr[T] {
	if name == "" {
		panic("symcanon: symbol name is empty")
	}
	return build(&node[T]{kind: KindSymbol, name: unique.Make(name)})
}

// Syms returns one symbol per name.
func Syms[T number.Coefficient[T]](names ...string) []Expr[T] {
	out := make([]Expr[T], len(names))
	for i, name := range names {
		out[i] = Sym[T](name)
	}
	return out
}

// NewAdd builds the node coeff + Σ value·expr exactly as given, without any
// normalization. Repeated keys are merged by adding their values.
func NewAdd[T number.Coefficient[T]](coeff T, terms ...Term[T]) Expr[T] {
	return newSum(coeff, collect(terms))
}

// NewMul builds the node coeff · Π expr^value exactly as given, without any
// normalization. Repeated keys are merged by adding their exponents.
func NewMul[T number.Coefficient[T]](coeff T, terms ...Term[T]) Expr[T] {
	return newProduct(coeff, collect(terms))
}

// Call applies a registered function to arg.
func Call[T number.Coefficient[T]](f *Function, arg Expr[T]) Expr[T] {
	if f == nil {
		panic("symcanon: nil function")
	}
	arg.mustValid()
	return build(&node[T]{kind: KindFunc, fn: f, arg: arg})
}

// ExpOf returns exp(arg).
func ExpOf[T number.Coefficient[T]](arg Expr[T]) Expr[T] { return Call(Exp, arg) }

// LnOf returns ln(arg).
func LnOf[T number.Coefficient[T]](arg Expr[T]) Expr[T] { return Call(Ln, arg) }

func collect[T number.Coefficient[T]](terms []Term[T]) *termMap[T] {
	m := newTermMap[T](len(terms))
	for _, t := range terms {
		t.Expr.mustValid()
		m.add(t.Expr, t.Value)
	}
	return m
}

func newSum[T number.Coefficient[T]](coeff T, terms *termMap[T]) Expr[T] {
	return build(&node[T]{kind: KindAdd, value: coeff, terms: terms})
}

func newProduct[T number.Coefficient[T]](coeff T, terms *termMap[T]) Expr[T] {
	return build(&node[T]{kind: KindMul, value: coeff, terms: terms})
}

func single[T number.Coefficient[T]](key Expr[T], v T) *termMap[T] {
	m := newTermMap[T](1)
	m.add(key, v)
	return m
}

func (e Expr[T]) mustValid() {
	if e.n == nil {
		panic("symcanon: " + ErrInvalidExpr.Error())
	}
}

// ============================================================
// Accessors
// ============================================================

// IsValid reports whether e refers to a node. The zero Expr is not valid.
func (e Expr[T]) IsValid() bool { return e.n != nil }

// Kind returns the variant of the node.
func (e Expr[T]) Kind() Kind {
	if e.n == nil {
		return KindInvalid
	}
	return e.n.kind
}

// Number returns the value of a Number node.
func (e Expr[T]) Number() (T, bool) {
	if e.Kind() != KindNumber {
		var zero T
		return zero, false
	}
	return e.n.value, true
}

// Name returns the name of a Symbol node.
func (e Expr[T]) Name() (string, bool) {
	if e.Kind() != KindSymbol {
		return "", false
	}
	return e.n.name.Value(), true
}

// Coeff returns the constant of an Add or the scalar factor of a Mul.
func (e Expr[T]) Coeff() (T, bool) {
	if k := e.Kind(); k != KindAdd && k != KindMul {
		var zero T
		return zero, false
	}
	return e.n.value, true
}

// Terms returns a copy of the dictionary of an Add or Mul, ordered by the
// rendered text of each key.
func (e Expr[T]) Terms() []Term[T] {
	if k := e.Kind(); k != KindAdd && k != KindMul {
		return nil
	}
	terms, _ := e.n.terms.sorted()
	return terms
}

// Len returns the number of dictionary entries of an Add or Mul.
func (e Expr[T]) Len() int {
	if k := e.Kind(); k != KindAdd && k != KindMul {
		return 0
	}
	return e.n.terms.len()
}

// Lookup returns the coefficient or exponent stored for key.
func (e Expr[T]) Lookup(key Expr[T]) (T, bool) {
	if k := e.Kind(); (k != KindAdd && k != KindMul) || !key.IsValid() {
		var zero T
		return zero, false
	}
	return e.n.terms.get(key)
}

// Func returns the descriptor of a Func node.
func (e Expr[T]) Func() *Function {
	if e.Kind() != KindFunc {
		return nil
	}
	return e.n.fn
}

// Arg returns the argument of a Func node.
func (e Expr[T]) Arg() Expr[T] {
	if e.Kind() != KindFunc {
		return Expr[T]{}
	}
	return e.n.arg
}

// Same reports whether both handles share one node.
func (e Expr[T]) Same(other Expr[T]) bool { return e.n == other.n }

// ============================================================
// Equality and hashing
// ============================================================

// Hash returns a hash that agrees with Equal. The zero Expr hashes to 0.
func (e Expr[T]) Hash() uint64 {
	if e.n == nil {
		return 0
	}
	return e.n.hash
}

// Equal compares two trees structurally. Variants are compared first, so a
// Number never equals a Symbol even when both print the same.
func (e Expr[T]) Equal(other Expr[T]) bool {
	a, b := e.n, other.n
	if a == b {
		return true
	}
	if a == nil || b == nil || a.kind != b.kind || a.hash != b.hash {
		return false
	}
	switch a.kind {
	case KindNumber:
		return a.value.Equal(b.value)
	case KindSymbol:
		return a.name == b.name
	case KindAdd, KindMul:
		return a.value.Equal(b.value) && a.terms.equal(b.terms)
	case KindFunc:
		return a.fn.Equal(b.fn) && a.arg.Equal(b.arg)
	}
	panic(fmt.Sprintf("symcanon: unknown kind %d", a.kind))
}
