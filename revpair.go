package tightpair

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// RevPair is a two-slot value that stores its second slot ahead of its first.
// It is the tight layout for the SecondEmpty strategy: a zero-size second
// slot placed first costs nothing, while as a trailing field it would be
// padded. Index order is the same as for Pair.
type RevPair[A, B any] struct {
	second B
	first  A
}

// MakeRev returns a reversed-layout pair holding a and b.
func MakeRev[A, B any](a A, b B) RevPair[A, B] {
	return RevPair[A, B]{
		first:  a,
		second: b,
	}
}

// PiecewiseRev builds each slot from its own constructor. newA runs before
// newB regardless of the physical layout.
func PiecewiseRev[A, B any](newA func() A, newB func() B) RevPair[A, B] {
	a := newA()
	b := newB()

	return MakeRev(a, b)
}

// First returns a copy of the first slot.
func (p RevPair[A, B]) First() A {
	return p.first
}

// Second returns a copy of the second slot.
func (p RevPair[A, B]) Second() B {
	return p.second
}

// Unpack returns the slots in index order.
func (p RevPair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// FirstRef returns a pointer to the first slot.
func (p *RevPair[A, B]) FirstRef() *A {
	return &p.first
}

// SecondRef returns a pointer to the second slot.
func (p *RevPair[A, B]) SecondRef() *B {
	return &p.second
}

// Get0 returns a pointer to the slot at index 0.
func (p *RevPair[A, B]) Get0() *A {
	return &p.first
}

// Get1 returns a pointer to the slot at index 1.
func (p *RevPair[A, B]) Get1() *B {
	return &p.second
}

// Len returns the number of slots, which is always Size.
func (p RevPair[A, B]) Len() int {
	return Size
}

// Values returns the slots in index order as interface values.
func (p RevPair[A, B]) Values() []any {
	return []any{p.first, p.second}
}

// String formats the pair as (first, second).
func (p RevPair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// SetFirst assigns a to the first slot.
func (p *RevPair[A, B]) SetFirst(a A) {
	p.first = a
}

// SetSecond assigns b to the second slot.
func (p *RevPair[A, B]) SetSecond(b B) {
	p.second = b
}

// Set assigns both slots, first slot first.
func (p *RevPair[A, B]) Set(a A, b B) {
	p.first = a
	p.second = b
}

// Assign copies the values of any tuple with matching slot types into the
// pair.
func (p *RevPair[A, B]) Assign(src Tuple[A, B]) {
	p.first, p.second = src.Unpack()
}

// Emplace initializes the slots in place, first slot first.
func (p *RevPair[A, B]) Emplace(initA func(*A), initB func(*B)) {
	emplaceSlots(&p.first, &p.second, initA, initB)
}

// Swap exchanges the slots of p and other.
func (p *RevPair[A, B]) Swap(other *RevPair[A, B]) {
	swapSlots(&p.first, &other.first, &p.second, &other.second)
}

// Pair returns the same logical pair in the Pair layout.
func (p RevPair[A, B]) Pair() Pair[A, B] {
	return Make(p.first, p.second)
}

// CompareFunc orders p and q lexicographically using the given per-slot
// comparison functions.
func (p RevPair[A, B]) CompareFunc(q RevPair[A, B], cmpA func(A, A) int,
	cmpB func(B, B) int) int {

	return compareSlots(&p.first, &q.first, &p.second, &q.second, cmpA, cmpB)
}

// EqualFunc reports whether both slots of p and q are equal according to the
// given per-slot equality functions.
func (p RevPair[A, B]) EqualFunc(q RevPair[A, B], eqA func(A, A) bool,
	eqB func(B, B) bool) bool {

	return equalSlots(&p.first, &q.first, &p.second, &q.second, eqA, eqB)
}

// EqualRev is Equal for the reversed layout.
func EqualRev[A, B comparable](x, y RevPair[A, B]) bool {
	return x.EqualFunc(y, equal[A], equal[B])
}

// CompareRev is Compare for the reversed layout. The first slot still
// decides first.
func CompareRev[A, B constraints.Ordered](x, y RevPair[A, B]) int {
	return x.CompareFunc(y, ordered[A], ordered[B])
}

// LessRev reports whether x orders before y.
func LessRev[A, B constraints.Ordered](x, y RevPair[A, B]) bool {
	return CompareRev(x, y) < 0
}
