package symcanon

import (
	"encoding/binary"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/njchilds90/symcanon/number"
)

// Term is one dictionary entry of an Add or Mul node. Value is the linear
// coefficient of Expr inside an Add and its exponent inside a Mul.
type Term[T number.Coefficient[T]] struct {
	Expr  Expr[T]
	Value T
}

// termMap maps expressions to coefficients using structural equality. Entries
// keep their insertion order, so iteration is deterministic for a given input.
// A termMap that has been handed to a node is never modified again.
type termMap[T number.Coefficient[T]] struct {
	terms []Term[T]
	index map[uint64][]int // hash -> positions in terms
}

func newTermMap[T number.Coefficient[T]](size int) *termMap[T] {
	return &termMap[T]{
		terms: make([]Term[T], 0, size),
		index: make(map[uint64][]int, size),
	}
}

func (obj *termMap[T]) len() int { return len(obj.terms) }

func (obj *termMap[T]) find(key Expr[T]) int {
	for _, i := range obj.index[key.Hash()] {
		if obj.terms[i].Expr.Equal(key) {
			return i
		}
	}
	return -1
}

func (obj *termMap[T]) get(key Expr[T]) (T, bool) {
	if i := obj.find(key); i >= 0 {
		return obj.terms[i].Value, true
	}
	var zero T
	return zero, false
}

// add accumulates v onto the entry for key. It returns the position of the
// entry and whether the key was already present.
func (obj *termMap[T]) add(key Expr[T], v T) (int, bool) {
	if i := obj.find(key); i >= 0 {
		obj.terms[i].Value = obj.terms[i].Value.Add(v)
		return i, true
	}
	h := key.Hash()
	i := len(obj.terms)
	obj.index[h] = append(obj.index[h], i)
	obj.terms = append(obj.terms, Term[T]{Expr: key, Value: v})
	return i, false
}

// increment adds v to key and removes the entry if it cancels out.
func (obj *termMap[T]) increment(key Expr[T], v T) {
	if i, _ := obj.add(key, v); obj.terms[i].Value.IsZero() {
		obj.removeAt(i)
	}
}

func (obj *termMap[T]) removeAt(i int) {
	obj.terms = append(obj.terms[:i], obj.terms[i+1:]...)
	obj.reindex()
}

// dropZeros removes every zero valued entry and returns how many went away.
func (obj *termMap[T]) dropZeros() int {
	kept := obj.terms[:0]
	for _, t := range obj.terms {
		if !t.Value.IsZero() {
			kept = append(kept, t)
		}
	}
	removed := len(obj.terms) - len(kept)
	if removed > 0 {
		clear(obj.terms[len(kept):])
		obj.terms = kept
		obj.reindex()
	}
	return removed
}

func (obj *termMap[T]) reindex() {
	clear(obj.index)
	for i, t := range obj.terms {
		h := t.Expr.Hash()
		obj.index[h] = append(obj.index[h], i)
	}
}

func (obj *termMap[T]) clone() *termMap[T] {
	m := newTermMap[T](len(obj.terms) + 1)
	for _, t := range obj.terms {
		m.add(t.Expr, t.Value)
	}
	return m
}

// mapValues returns a copy with every value passed through fn.
func (obj *termMap[T]) mapValues(fn func(T) T) *termMap[T] {
	m := newTermMap[T](len(obj.terms))
	for _, t := range obj.terms {
		m.add(t.Expr, fn(t.Value))
	}
	return m
}

// equal compares as maps: same size, and every key of one has an equal value
// in the other.
func (obj *termMap[T]) equal(other *termMap[T]) bool {
	if obj.len() != other.len() {
		return false
	}
	for _, t := range obj.terms {
		v, ok := other.get(t.Expr)
		if !ok || !v.Equal(t.Value) {
			return false
		}
	}
	return true
}

// hash sums a mix of every entry, so insertion order doesn't matter.
func (obj *termMap[T]) hash() uint64 {
	var sum uint64
	for _, t := range obj.terms {
		sum += mix(t.Expr.Hash(), t.Value.Hash())
	}
	return sum
}

// sorted returns the entries ordered by the rendered text of their keys, along
// with that text.
func (obj *termMap[T]) sorted() ([]Term[T], []string) {
	type keyed struct {
		t   Term[T]
		key string
	}
	ks := make([]keyed, len(obj.terms))
	for i, t := range obj.terms {
		ks[i] = keyed{t: t, key: t.Expr.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].key < ks[j].key })
	terms := make([]Term[T], len(ks))
	keys := make([]string, len(ks))
	for i := range ks {
		terms[i], keys[i] = ks[i].t, ks[i].key
	}
	return terms, keys
}

func mix(a, b uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], a)
	binary.LittleEndian.PutUint64(buf[8:], b)
	return xxhash.Sum64(buf[:])
}
