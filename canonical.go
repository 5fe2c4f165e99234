package symcanon

import (
	"log/slog"

	"github.com/njchilds90/symcanon/internal/errwrap"
	"github.com/njchilds90/symcanon/number"
)

// Rule names a rewrite performed by the canonicalizer. It is used as the label
// of the rewrites metric and in trace logs.
type Rule string

const (
	// RuleFlatten merges a child Add into its parent Add, or a child Mul
	// into its parent Mul.
	RuleFlatten Rule = "flatten"
	// RuleEmpty turns an Add or Mul without entries into its coefficient.
	RuleEmpty Rule = "empty"
	// RuleNumber folds a Number child into the parent coefficient.
	RuleNumber Rule = "number"
	// RuleZeroProduct turns a Mul with a zero coefficient into 0.
	RuleZeroProduct Rule = "zero-product"
	// RuleIdentity turns 0 + 1·x and 1 · x^1 into x.
	RuleIdentity Rule = "identity"
	// RuleMerge combines two children that became equal.
	RuleMerge Rule = "merge"
	// RuleDropZero removes entries whose value is zero.
	RuleDropZero Rule = "drop-zero"
	// RuleScalar moves the scalar factor of a product into an Add entry, so
	// that 2·x and x + x end up the same.
	RuleScalar Rule = "scalar"
)

var discardLogger = slog.New(slog.DiscardHandler)

// Canonicalizer rewrites expressions into canonical form:
//
//  1. No Add directly inside an Add, no Mul directly inside a Mul.
//  2. No Add or Mul with an empty dictionary.
//  3. No Number keys in a dictionary.
//  4. No Mul with a zero coefficient.
//  5. No 0 + 1·x and no 1 · x^1.
//
// On top of that keys are unique, values are never zero, and a product with a
// scalar other than 1 is stored as a single Add entry c·p. Function arguments
// are canonicalized too. The result is a fixed point: canonicalizing it again
// returns the very same handle.
type Canonicalizer[T number.Coefficient[T]] struct {
	cfg     Config
	logger  *slog.Logger
	metrics *Metrics
}

// NewCanonicalizer returns a canonicalizer. The logger and the metrics may be
// nil.
func NewCanonicalizer[T number.Coefficient[T]](cfg Config, logger *slog.Logger, metrics *Metrics) (*Canonicalizer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = discardLogger
	}
	return &Canonicalizer[T]{
		cfg:     cfg,
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Canonicalize rewrites e with the default settings.
func Canonicalize[T number.Coefficient[T]](e Expr[T]) (Expr[T], error) {
	c := &Canonicalizer[T]{cfg: DefaultConfig(), logger: discardLogger}
	return c.Canonicalize(e)
}

// MustCanonicalize is like Canonicalize but panics on error.
func MustCanonicalize[T number.Coefficient[T]](e Expr[T]) Expr[T] {
	out, err := Canonicalize(e)
	if err != nil {
		panic("symcanon: " + err.Error())
	}
	return out
}

// CanonicalizeAll canonicalizes every expression with the default settings.
func CanonicalizeAll[T number.Coefficient[T]](xs ...Expr[T]) ([]Expr[T], error) {
	c := &Canonicalizer[T]{cfg: DefaultConfig(), logger: discardLogger}
	return c.CanonicalizeAll(xs...)
}

// Canonicalize rewrites e with the default settings.
func (e Expr[T]) Canonicalize() (Expr[T], error) { return Canonicalize(e) }

// Canonicalize returns the canonical form of e. When e is already canonical the
// same handle is returned.
func (obj *Canonicalizer[T]) Canonicalize(e Expr[T]) (Expr[T], error) {
	if !e.IsValid() {
		return Expr[T]{}, ErrInvalidExpr
	}
	obj.metrics.observeCall()
	out, err := obj.canonicalize(e, 1)
	if err != nil {
		obj.metrics.observeError()
		return Expr[T]{}, errwrap.Wrapf(err, "can't canonicalize %s", e)
	}
	return out, nil
}

// CanonicalizeAll canonicalizes each expression in turn. A failure doesn't stop
// the others: the failed slot keeps its input and every error is returned
// together.
func (obj *Canonicalizer[T]) CanonicalizeAll(xs ...Expr[T]) ([]Expr[T], error) {
	out := make([]Expr[T], len(xs))
	var reterr error
	for i, x := range xs {
		y, err := obj.Canonicalize(x)
		if err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "expression #%d", i))
			out[i] = x
			continue
		}
		out[i] = y
	}
	return out, reterr
}

func (obj *Canonicalizer[T]) fired(rule Rule, e Expr[T]) {
	obj.metrics.observeRule(rule)
	if !obj.cfg.Trace {
		return
	}
	obj.logger.Debug("rewrite",
		slog.String("rule", string(rule)),
		slog.String("kind", e.Kind().String()),
		slog.String("node", e.String()),
	)
}

func (obj *Canonicalizer[T]) canonicalize(e Expr[T], depth int) (Expr[T], error) {
	if obj.cfg.MaxDepth > 0 && depth > obj.cfg.MaxDepth {
		return Expr[T]{}, errwrap.Wrapf(ErrDepthExceeded, "limit is %d", obj.cfg.MaxDepth)
	}
	switch e.n.kind {
	case KindNumber, KindSymbol:
		return e, nil

	case KindFunc:
		arg, err := obj.canonicalize(e.n.arg, depth+1)
		if err != nil {
			return Expr[T]{}, err
		}
		if arg.Same(e.n.arg) {
			return e, nil
		}
		return Call(e.n.fn, arg), nil

	case KindAdd:
		return obj.canonicalAdd(e, depth)

	case KindMul:
		return obj.canonicalMul(e, depth)
	}
	return Expr[T]{}, ErrInvalidExpr
}

// ============================================================
// Add
// ============================================================

func (obj *Canonicalizer[T]) canonicalAdd(e Expr[T], depth int) (Expr[T], error) {
	coeff := e.n.value
	terms := newTermMap[T](e.n.terms.len())
	changed := false
	for _, t := range e.n.terms.terms {
		k, err := obj.canonicalize(t.Expr, depth+1)
		if err != nil {
			return Expr[T]{}, err
		}
		if !k.Same(t.Expr) {
			changed = true
		}
		switch k.n.kind {
		case KindNumber:
			coeff = coeff.Add(k.n.value.Mul(t.Value))
			changed = true
			obj.fired(RuleNumber, e)

		case KindAdd:
			coeff = coeff.Add(k.n.value.Mul(t.Value))
			for _, s := range k.n.terms.terms {
				terms.add(s.Expr, s.Value.Mul(t.Value))
			}
			changed = true
			obj.fired(RuleFlatten, e)

		default:
			if _, merged := terms.add(k, t.Value); merged {
				changed = true
				obj.fired(RuleMerge, e)
			}
		}
	}
	return obj.finishAdd(e, coeff, terms, changed), nil
}

// finishAdd applies the rules that look at the whole node once the children
// are done. The children in terms must already be canonical.
func (obj *Canonicalizer[T]) finishAdd(e Expr[T], coeff T, terms *termMap[T], changed bool) Expr[T] {
	if terms.dropZeros() > 0 {
		changed = true
		obj.fired(RuleDropZero, e)
	}
	if terms.len() == 0 {
		obj.fired(RuleEmpty, e)
		return Num(coeff)
	}
	if coeff.IsZero() && terms.len() == 1 && terms.terms[0].Value.IsOne() {
		obj.fired(RuleIdentity, e)
		return terms.terms[0].Expr
	}
	if !changed {
		return e
	}
	return newSum(coeff, terms)
}

// ============================================================
// Mul
// ============================================================

// product collects the factors of a Mul being canonicalized.
type product[T number.Coefficient[T]] struct {
	parent  Expr[T]
	coeff   T
	terms   *termMap[T]
	changed bool
}

func (obj *Canonicalizer[T]) canonicalMul(e Expr[T], depth int) (Expr[T], error) {
	if e.n.value.IsZero() {
		obj.fired(RuleZeroProduct, e)
		return Num(zeroOf[T]()), nil
	}
	p := &product[T]{
		parent: e,
		coeff:  e.n.value,
		terms:  newTermMap[T](e.n.terms.len()),
	}
	for _, t := range e.n.terms.terms {
		k, err := obj.canonicalize(t.Expr, depth+1)
		if err != nil {
			return Expr[T]{}, err
		}
		if !k.Same(t.Expr) {
			p.changed = true
		}
		if err := obj.absorb(p, k, t.Value); err != nil {
			return Expr[T]{}, err
		}
	}
	return obj.finishMul(p), nil
}

// absorb multiplies the product by k^exp, where k is canonical.
func (obj *Canonicalizer[T]) absorb(p *product[T], k Expr[T], exp T) error {
	switch k.n.kind {
	case KindNumber:
		v, err := k.n.value.Pow(exp)
		if err != nil {
			return errwrap.Wrapf(err, "can't fold %s^%s", k, exp)
		}
		p.coeff = p.coeff.Mul(v)
		p.changed = true
		obj.fired(RuleNumber, p.parent)
		return nil

	case KindMul:
		if c := k.n.value; !c.IsOne() {
			v, err := c.Pow(exp)
			if err != nil {
				return errwrap.Wrapf(err, "can't fold %s^%s", k, exp)
			}
			p.coeff = p.coeff.Mul(v)
		}
		for _, s := range k.n.terms.terms {
			p.terms.add(s.Expr, s.Value.Mul(exp))
		}
		p.changed = true
		obj.fired(RuleFlatten, p.parent)
		return nil

	case KindAdd:
		// (c·x)^e is c^e · x^e whenever c^e exists in T.
		if s, ok := scaledTerm(k); ok {
			v, err := s.Value.Pow(exp)
			if err == nil {
				p.coeff = p.coeff.Mul(v)
				p.changed = true
				obj.fired(RuleScalar, p.parent)
				return obj.absorb(p, s.Expr, exp)
			}
			if obj.cfg.Trace {
				obj.logger.Debug("scalar kept inside factor",
					slog.String("node", k.String()),
					slog.String("exp", exp.String()),
					slog.String("err", err.Error()),
				)
			}
		}
	}
	if _, merged := p.terms.add(k, exp); merged {
		p.changed = true
		obj.fired(RuleMerge, p.parent)
	}
	return nil
}

func (obj *Canonicalizer[T]) finishMul(p *product[T]) Expr[T] {
	e := p.parent
	if p.terms.dropZeros() > 0 {
		p.changed = true
		obj.fired(RuleDropZero, e)
	}
	if p.coeff.IsZero() {
		obj.fired(RuleZeroProduct, e)
		return Num(zeroOf[T]())
	}
	if p.terms.len() == 0 {
		obj.fired(RuleEmpty, e)
		return Num(p.coeff)
	}
	unit := p.terms.len() == 1 && p.terms.terms[0].Value.IsOne()
	if p.coeff.IsOne() {
		if unit {
			obj.fired(RuleIdentity, e)
			return p.terms.terms[0].Expr
		}
		if !p.changed {
			return e
		}
		return newProduct(p.coeff, p.terms)
	}

	obj.fired(RuleScalar, e)
	inner := newProduct(oneOf[T](), p.terms)
	if unit {
		inner = p.terms.terms[0].Expr
	}
	if inner.n.kind != KindAdd {
		return newSum(zeroOf[T](), single(inner, p.coeff))
	}
	// c·(a + Σ v·k) distributes into a flat Add.
	obj.fired(RuleFlatten, e)
	terms := inner.n.terms.mapValues(func(v T) T { return v.Mul(p.coeff) })
	return obj.finishAdd(e, inner.n.value.Mul(p.coeff), terms, true)
}

// scaledTerm matches an Add of the form 0 + c·x.
func scaledTerm[T number.Coefficient[T]](e Expr[T]) (Term[T], bool) {
	if e.n.kind != KindAdd || !e.n.value.IsZero() || e.n.terms.len() != 1 {
		return Term[T]{}, false
	}
	return e.n.terms.terms[0], true
}
