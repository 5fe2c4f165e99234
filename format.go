package symcanon

import "strings"

// String returns a structural rendering meant for debugging and tests, such as
// (3 + x + 2 * y) or (x^2 * y). Dictionary entries are ordered by the text of
// their keys, so the output is stable.
func (e Expr[T]) String() string {
	if e.n == nil {
		return "<invalid>"
	}
	switch e.n.kind {
	case KindNumber:
		return e.n.value.String()
	case KindSymbol:
		return e.n.name.Value()
	case KindFunc:
		return e.n.fn.Name() + "(" + e.n.arg.String() + ")"
	}

	add := e.n.kind == KindAdd
	terms, keys := e.n.terms.sorted()
	parts := make([]string, 0, len(terms)+1)
	if c := e.n.value; len(terms) == 0 || (add && !c.IsZero()) || (!add && !c.IsOne()) {
		parts = append(parts, c.String())
	}
	for i, t := range terms {
		switch {
		case t.Value.IsOne():
			parts = append(parts, keys[i])
		case add:
			parts = append(parts, t.Value.String()+" * "+keys[i])
		default:
			parts = append(parts, keys[i]+"^"+t.Value.String())
		}
	}
	sep := " * "
	if add {
		sep = " + "
	}
	return "(" + strings.Join(parts, sep) + ")"
}
