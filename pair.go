package tightpair

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Size is the number of slots in a pair.
const Size = 2

// Pair is a two-slot value that stores its first slot ahead of its second.
// It is the tight layout for the Default, FirstEmpty and BothEmpty
// strategies. When only the second slot type is empty, RevPair avoids the
// padding Go adds behind a trailing zero-size field.
//
// The zero value holds the zero values of both slots. Pairs are copied by
// assignment like any other Go value.
type Pair[A, B any] struct {
	first  A
	second B
}

// Make returns a pair holding a and b, deducing the slot types from the
// arguments. It always builds a Pair, whatever StrategyOf reports. When only
// the second slot type is empty the Pair is padded past the first slot, e.g.
// Make(uint64(1), struct{}{}) takes 16 bytes; use MakeRev for the 8 byte
// layout.
func Make[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		first:  a,
		second: b,
	}
}

// Piecewise builds each slot from its own constructor. newA runs before newB.
func Piecewise[A, B any](newA func() A, newB func() B) Pair[A, B] {
	a := newA()
	b := newB()

	return Make(a, b)
}

// Convert builds a pair from any tuple whose values can be converted to A and
// B. The first value is converted before the second.
func Convert[A, B, C, D any](src Tuple[C, D], fa func(C) A,
	fb func(D) B) Pair[A, B] {

	c, d := src.Unpack()
	a := fa(c)
	b := fb(d)

	return Make(a, b)
}

// First returns a copy of the first slot.
func (p Pair[A, B]) First() A {
	return p.first
}

// Second returns a copy of the second slot.
func (p Pair[A, B]) Second() B {
	return p.second
}

// Unpack ejects the pair's slots into the multiple return values that are
// customary in go idiom.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.first, p.second
}

// FirstRef returns a pointer to the first slot.
func (p *Pair[A, B]) FirstRef() *A {
	return &p.first
}

// SecondRef returns a pointer to the second slot.
func (p *Pair[A, B]) SecondRef() *B {
	return &p.second
}

// Get0 returns a pointer to the slot at index 0.
func (p *Pair[A, B]) Get0() *A {
	return &p.first
}

// Get1 returns a pointer to the slot at index 1.
func (p *Pair[A, B]) Get1() *B {
	return &p.second
}

// Len returns the number of slots, which is always Size.
func (p Pair[A, B]) Len() int {
	return Size
}

// Values returns the slots in index order as interface values.
func (p Pair[A, B]) Values() []any {
	return []any{p.first, p.second}
}

// String formats the pair as (first, second).
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.first, p.second)
}

// SetFirst assigns a to the first slot.
func (p *Pair[A, B]) SetFirst(a A) {
	p.first = a
}

// SetSecond assigns b to the second slot.
func (p *Pair[A, B]) SetSecond(b B) {
	p.second = b
}

// Set assigns both slots, first slot first.
func (p *Pair[A, B]) Set(a A, b B) {
	p.first = a
	p.second = b
}

// Assign copies the values of any tuple with matching slot types into the
// pair. Assigning a pair to itself is a no-op.
func (p *Pair[A, B]) Assign(src Tuple[A, B]) {
	p.first, p.second = src.Unpack()
}

// Emplace initializes the slots in place, first slot first. It is meant for
// slot types that must not be copied once in use, such as those holding a
// sync.Mutex. A nil initializer leaves its slot as is.
func (p *Pair[A, B]) Emplace(initA func(*A), initB func(*B)) {
	emplaceSlots(&p.first, &p.second, initA, initB)
}

// Swap exchanges the slots of p and other.
func (p *Pair[A, B]) Swap(other *Pair[A, B]) {
	swapSlots(&p.first, &other.first, &p.second, &other.second)
}

// Rev returns the same logical pair in the RevPair layout.
func (p Pair[A, B]) Rev() RevPair[A, B] {
	return MakeRev(p.first, p.second)
}

// CompareFunc orders p and q lexicographically using the given per-slot
// comparison functions, which must return a negative number, zero or a
// positive number like cmp.Compare.
func (p Pair[A, B]) CompareFunc(q Pair[A, B], cmpA func(A, A) int,
	cmpB func(B, B) int) int {

	return compareSlots(&p.first, &q.first, &p.second, &q.second, cmpA, cmpB)
}

// EqualFunc reports whether both slots of p and q are equal according to the
// given per-slot equality functions.
func (p Pair[A, B]) EqualFunc(q Pair[A, B], eqA func(A, A) bool,
	eqB func(B, B) bool) bool {

	return equalSlots(&p.first, &q.first, &p.second, &q.second, eqA, eqB)
}

// Equal reports whether x and y hold equal slots. Both slots are compared with
// == rather than derived from an ordering.
func Equal[A, B comparable](x, y Pair[A, B]) bool {
	return x.EqualFunc(y, equal[A], equal[B])
}

// Compare orders x and y lexicographically: first slots decide, second slots
// break ties. The result is -1, 0 or +1.
func Compare[A, B constraints.Ordered](x, y Pair[A, B]) int {
	return x.CompareFunc(y, ordered[A], ordered[B])
}

// Less reports whether x orders before y.
func Less[A, B constraints.Ordered](x, y Pair[A, B]) bool {
	return Compare(x, y) < 0
}

// ElementTypes returns the slot types of a pair with slots A and B in index
// order. Indexing the result with a constant out of range does not compile.
func ElementTypes[A, B any]() [Size]reflect.Type {
	return [Size]reflect.Type{typeOf[A](), typeOf[B]()}
}
