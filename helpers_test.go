package symcanon_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/njchilds90/symcanon"
	"github.com/njchilds90/symcanon/number"
	"github.com/stretchr/testify/require"
)

// Most tests run over exact rationals.
type (
	R    = number.Rat
	Expr = symcanon.Expr[R]
	Term = symcanon.Term[R]
)

var dumper = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	MaxDepth:                8,
}

func rat(n int64) R { return number.RatFromInt(n) }

func num(n int64) Expr { return symcanon.Num(rat(n)) }

func sym(name string) Expr { return symcanon.Sym[R](name) }

func term(e Expr, v int64) Term { return Term{Expr: e, Value: rat(v)} }

func canon(t *testing.T, e Expr) Expr {
	t.Helper()
	out, err := symcanon.Canonicalize(e)
	require.NoError(t, err, "canonicalize %s", e)
	return out
}

// requireExpr fails unless got is structurally equal to want.
func requireExpr[T number.Coefficient[T]](t *testing.T, want, got symcanon.Expr[T]) {
	t.Helper()
	if want.Equal(got) {
		return
	}
	t.Logf("want: %s", want)
	t.Logf(" got: %s", got)
	t.Logf("got terms:\n%s", dumper.Sdump(got.Terms()))
	t.FailNow()
}
