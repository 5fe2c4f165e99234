package symcanon_test

import (
	"testing"

	"github.com/njchilds90/symcanon"
	"github.com/njchilds90/symcanon/number"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Add
// ============================================================

func TestAdd_Rules(t *testing.T) {
	x, y, z := sym("x"), sym("y"), sym("z")
	xy := symcanon.NewMul(rat(1), term(x, 1), term(y, 1))

	tests := []struct {
		name string
		a, b Expr
		want Expr
	}{
		{
			name: "number plus number",
			a:    num(1), b: num(2),
			want: num(3),
		},
		{
			name: "number plus add",
			a:    num(1), b: symcanon.NewAdd(rat(2), term(x, 1)),
			want: symcanon.NewAdd(rat(3), term(x, 1)),
		},
		{
			name: "add plus number",
			a:    symcanon.NewAdd(rat(2), term(x, 1)), b: num(-2),
			want: symcanon.NewAdd(rat(0), term(x, 1)),
		},
		{
			name: "add plus add",
			a:    symcanon.NewAdd(rat(1), term(x, 1), term(y, 2)),
			b:    symcanon.NewAdd(rat(2), term(x, -1), term(z, 1)),
			want: symcanon.NewAdd(rat(3), term(y, 2), term(z, 1)),
		},
		{
			name: "add plus existing term",
			a:    symcanon.NewAdd(rat(1), term(x, 1)), b: x,
			want: symcanon.NewAdd(rat(1), term(x, 2)),
		},
		{
			name: "existing term plus add",
			a:    x, b: symcanon.NewAdd(rat(1), term(x, 1), term(y, 1)),
			want: symcanon.NewAdd(rat(1), term(x, 2), term(y, 1)),
		},
		{
			name: "add plus new term",
			a:    symcanon.NewAdd(rat(0), term(y, 1)), b: xy,
			want: symcanon.NewAdd(rat(0), term(y, 1), term(xy, 1)),
		},
		{
			name: "add plus cancelling term",
			a:    symcanon.NewAdd(rat(4), term(x, -1), term(y, 1)), b: x,
			want: symcanon.NewAdd(rat(4), term(y, 1)),
		},
		{
			name: "number plus symbol",
			a:    num(3), b: x,
			want: symcanon.NewAdd(rat(3), term(x, 1)),
		},
		{
			name: "symbol plus number",
			a:    x, b: num(3),
			want: symcanon.NewAdd(rat(3), term(x, 1)),
		},
		{
			name: "symbol plus itself",
			a:    x, b: sym("x"),
			want: symcanon.NewAdd(rat(0), term(x, 2)),
		},
		{
			name: "symbol plus symbol",
			a:    x, b: y,
			want: symcanon.NewAdd(rat(0), term(x, 1), term(y, 1)),
		},
		{
			name: "func plus itself",
			a:    symcanon.ExpOf(x), b: symcanon.ExpOf(x),
			want: symcanon.NewAdd(rat(0), term(symcanon.ExpOf(x), 2)),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireExpr(t, tc.want, symcanon.Add(tc.a, tc.b))
		})
	}
}

func TestAdd_IncrementsAbsorbedTerm(t *testing.T) {
	// absorbing x into an Add must bump the entry keyed by x, not insert the
	// Add under its own key
	x := sym("x")
	s := symcanon.NewAdd(rat(0), term(x, 1))
	got := symcanon.Add(s, x)
	require.Equal(t, 1, got.Len())
	v, ok := got.Lookup(x)
	require.True(t, ok)
	assert.Equal(t, "2", v.String())
	_, ok = got.Lookup(s)
	assert.False(t, ok)
}

func TestAdd_LocalOnly(t *testing.T) {
	// grandchildren are left alone
	x, y := sym("x"), sym("y")
	inner := symcanon.NewAdd(rat(1), term(x, 1))
	got := symcanon.Add(symcanon.NewMul(rat(1), term(inner, 1)), y)
	assert.Equal(t, symcanon.KindAdd, got.Kind())
	assert.Equal(t, 2, got.Len())
}

func TestAdd_DoesNotTouchOperands(t *testing.T) {
	x, y := sym("x"), sym("y")
	a := symcanon.NewAdd(rat(1), term(x, 1))
	b := symcanon.NewAdd(rat(2), term(x, -1), term(y, 1))
	before := a.String() + " " + b.String()
	_ = a.Add(b)
	_ = a.Add(x)
	assert.Equal(t, before, a.String()+" "+b.String())
}

func TestAdd_InvalidPanics(t *testing.T) {
	assert.Panics(t, func() { symcanon.Add(Expr{}, sym("x")) })
	assert.Panics(t, func() { symcanon.Add(sym("x"), Expr{}) })
}

func TestSum(t *testing.T) {
	x, y := sym("x"), sym("y")
	requireExpr(t, num(0), symcanon.Sum[R]())
	requireExpr(t, x, symcanon.Sum(x))
	requireExpr(t,
		symcanon.NewAdd(rat(3), term(x, 2), term(y, 1)),
		symcanon.Sum(x, num(1), y, x, num(2)),
	)
}

// ============================================================
// Neg and Sub
// ============================================================

func TestNeg(t *testing.T) {
	x, y := sym("x"), sym("y")
	tests := []struct {
		name string
		in   Expr
		want Expr
	}{
		{"number", num(1), num(-1)},
		{"add", symcanon.NewAdd(rat(1), term(x, 2), term(y, -1)), symcanon.NewAdd(rat(-1), term(x, -2), term(y, 1))},
		{"mul keeps exponents", symcanon.NewMul(rat(2), term(x, 3)), symcanon.NewMul(rat(-2), term(x, 3))},
		{"symbol", x, symcanon.NewAdd(rat(0), term(x, -1))},
		{"func", symcanon.LnOf(x), symcanon.NewAdd(rat(0), term(symcanon.LnOf(x), -1))},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireExpr(t, tc.want, tc.in.Neg())
		})
	}
}

func TestNeg_Twice(t *testing.T) {
	e := symcanon.NewAdd(rat(5), term(sym("x"), 2))
	requireExpr(t, e, e.Neg().Neg())
}

func TestSub(t *testing.T) {
	x, y := sym("x"), sym("y")
	requireExpr(t, num(2), num(3).Sub(num(1)))
	requireExpr(t, symcanon.NewAdd(rat(0)), x.Sub(x))
	requireExpr(t, symcanon.NewAdd(rat(0), term(x, 1), term(y, -1)), x.Sub(y))
	requireExpr(t, symcanon.NewAdd(rat(-4), term(x, 1)), x.Sub(num(4)))
}

// ============================================================
// Mul
// ============================================================

func TestMul_Rules(t *testing.T) {
	x, y := sym("x"), sym("y")
	tests := []struct {
		name string
		a, b Expr
		want Expr
	}{
		{
			name: "number times number",
			a:    num(2), b: num(3),
			want: num(6),
		},
		{
			name: "number times mul",
			a:    num(2), b: symcanon.NewMul(rat(3), term(x, 1)),
			want: symcanon.NewMul(rat(6), term(x, 1)),
		},
		{
			name: "mul times mul",
			a:    symcanon.NewMul(rat(1), term(x, 1), term(y, 2)),
			b:    symcanon.NewMul(rat(2), term(x, -1)),
			want: symcanon.NewMul(rat(2), term(y, 2)),
		},
		{
			name: "mul times existing factor",
			a:    symcanon.NewMul(rat(2), term(x, 1)), b: x,
			want: symcanon.NewMul(rat(2), term(x, 2)),
		},
		{
			name: "factor times cancelling mul",
			a:    x, b: symcanon.NewMul(rat(5), term(x, -1), term(y, 1)),
			want: symcanon.NewMul(rat(5), term(y, 1)),
		},
		{
			name: "number times symbol",
			a:    num(3), b: x,
			want: symcanon.NewMul(rat(3), term(x, 1)),
		},
		{
			name: "symbol times itself",
			a:    x, b: x,
			want: symcanon.NewMul(rat(1), term(x, 2)),
		},
		{
			name: "symbol times symbol",
			a:    x, b: y,
			want: symcanon.NewMul(rat(1), term(x, 1), term(y, 1)),
		},
		{
			name: "add times symbol",
			a:    x.Add(y), b: x,
			want: symcanon.NewMul(rat(1), term(x.Add(y), 1), term(x, 1)),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireExpr(t, tc.want, symcanon.Mul(tc.a, tc.b))
		})
	}
}

func TestProduct(t *testing.T) {
	x, y := sym("x"), sym("y")
	requireExpr(t, num(1), symcanon.Product[R]())
	requireExpr(t,
		symcanon.NewMul(rat(6), term(x, 2), term(y, 1)),
		symcanon.Product(num(2), x, y, x, num(3)),
	)
}

// ============================================================
// Pow, Inv, Div
// ============================================================

func TestPow(t *testing.T) {
	x, y := sym("x"), sym("y")
	half := number.NewRat(1, 2)

	got, err := num(2).Pow(rat(3))
	require.NoError(t, err)
	requireExpr(t, num(8), got)

	got, err = num(2).Pow(rat(-2))
	require.NoError(t, err)
	requireExpr(t, symcanon.Num(number.NewRat(1, 4)), got)

	got, err = symcanon.NewMul(rat(2), term(x, 1), term(y, 2)).Pow(rat(2))
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(4), term(x, 2), term(y, 4)), got)

	got, err = x.Pow(rat(3))
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1), term(x, 3)), got)

	got, err = x.Pow(half)
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1), Term{Expr: x, Value: half}), got)

	got, err = symcanon.NewMul(rat(3), term(x, 2)).Pow(rat(0))
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1)), got)
	requireExpr(t, num(1), canon(t, got))
}

func TestPow_Errors(t *testing.T) {
	_, err := num(0).Pow(rat(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, number.ErrDivisionByZero)

	_, err = num(4).Pow(number.NewRat(1, 2))
	assert.ErrorIs(t, err, number.ErrNonIntegerExponent)
}

func TestPow_ScalarWithoutRoot(t *testing.T) {
	// 2^(1/2) is not rational, so the product stays whole under the power
	x := sym("x")
	half := number.NewRat(1, 2)
	twoX := symcanon.NewMul(rat(2), term(x, 1))
	got, err := twoX.Pow(half)
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1), Term{Expr: twoX, Value: half}), got)
}

func TestPow_Int(t *testing.T) {
	x := symcanon.Sym[number.Int]("x")
	twoX := symcanon.NewMul(number.NewInt(2), symcanon.Term[number.Int]{Expr: x, Value: number.NewInt(1)})

	got, err := symcanon.Inv(twoX)
	require.NoError(t, err)
	want := symcanon.NewMul(number.NewInt(1), symcanon.Term[number.Int]{Expr: twoX, Value: number.NewInt(-1)})
	requireExpr(t, want, got)

	// the canonicalizer keeps the same shape
	c, err := symcanon.Canonicalize(got)
	require.NoError(t, err)
	c2, err := symcanon.Canonicalize(c)
	require.NoError(t, err)
	assert.True(t, c2.Same(c))
	assert.Equal(t, symcanon.KindMul, c.Kind())

	got, err = twoX.Pow(number.NewInt(3))
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(number.NewInt(8), symcanon.Term[number.Int]{Expr: x, Value: number.NewInt(3)}), got)
}

func TestInv(t *testing.T) {
	x := sym("x")

	got, err := symcanon.Inv(num(4))
	require.NoError(t, err)
	requireExpr(t, symcanon.Num(number.NewRat(1, 4)), got)

	got, err = symcanon.Inv(x)
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1), term(x, -1)), got)

	_, err = symcanon.Inv(num(0))
	assert.ErrorIs(t, err, number.ErrDivisionByZero)
}

func TestInv_Int(t *testing.T) {
	one := symcanon.Num(number.NewInt(1))
	got, err := symcanon.Inv(one)
	require.NoError(t, err)
	requireExpr(t, one, got)

	_, err = symcanon.Inv(symcanon.Num(number.NewInt(2)))
	assert.ErrorIs(t, err, number.ErrInexact)
}

func TestDiv(t *testing.T) {
	x, y := sym("x"), sym("y")

	got, err := num(6).Div(num(3))
	require.NoError(t, err)
	requireExpr(t, num(2), got)

	got, err = x.Div(y)
	require.NoError(t, err)
	requireExpr(t, symcanon.NewMul(rat(1), term(x, 1), term(y, -1)), got)

	got, err = x.Div(x)
	require.NoError(t, err)
	requireExpr(t, num(1), canon(t, got))

	_, err = x.Div(num(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, number.ErrDivisionByZero)
	assert.Contains(t, err.Error(), "can't divide by 0")
}
