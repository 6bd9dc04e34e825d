package tightpair

import "golang.org/x/exp/constraints"

// Slots is the reference surface shared by every pair layout. The returned
// pointers alias the pair's own storage.
type Slots[A, B any] interface {
	// FirstRef returns a pointer to the first slot.
	FirstRef() *A

	// SecondRef returns a pointer to the second slot.
	SecondRef() *B
}

// Tuple is the tuple protocol: a fixed-size sequence of two values that can
// be read by position. Both layouts implement it, as can any user type, which
// makes it the source type of the converting operations.
type Tuple[A, B any] interface {
	// First returns a copy of the value at index 0.
	First() A

	// Second returns a copy of the value at index 1.
	Second() B

	// Unpack returns both values in index order so they can be
	// destructured with a multiple assignment.
	Unpack() (A, B)
}

// compareSlots orders two pairs lexicographically: the first slots decide
// unless they compare equal, in which case the second slots decide.
func compareSlots[A, B any](xa, ya *A, xb, yb *B, cmpA func(A, A) int,
	cmpB func(B, B) int) int {

	if c := cmpA(*xa, *ya); c != 0 {
		return c
	}

	return cmpB(*xb, *yb)
}

// equalSlots compares both slots for equality directly.
func equalSlots[A, B any](xa, ya *A, xb, yb *B, eqA func(A, A) bool,
	eqB func(B, B) bool) bool {

	return eqA(*xa, *ya) && eqB(*xb, *yb)
}

// swapSlots exchanges first with first and second with second.
func swapSlots[A, B any](xa, ya *A, xb, yb *B) {
	*xa, *ya = *ya, *xa
	*xb, *yb = *yb, *xb
}

// emplaceSlots runs the initializers against the slots in place, first slot
// first. A nil initializer leaves its slot untouched.
func emplaceSlots[A, B any](a *A, b *B, initA func(*A), initB func(*B)) {
	if initA != nil {
		initA(a)
	}
	if initB != nil {
		initB(b)
	}
}

func equal[T comparable](a, b T) bool {
	return a == b
}

// ordered compares with < only, so values that are unordered with respect to
// each other (NaN) compare as equal and let the next slot decide.
func ordered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1

	case b < a:
		return 1

	default:
		return 0
	}
}

// Get returns a pointer to the slot of type T. The boolean is false when
// neither slot has type T, and also when both do since the request is then
// ambiguous.
//
//	p := tightpair.Make("fee", 42)
//	n, ok := tightpair.Get[int](&p)
func Get[T, A, B any](s Slots[A, B]) (*T, bool) {
	first, firstOk := any(s.FirstRef()).(*T)
	second, secondOk := any(s.SecondRef()).(*T)

	switch {
	case firstOk && secondOk:
		log.Debugf("Ambiguous slot lookup by type %v", typeOf[T]())
		return nil, false

	case firstOk:
		return first, true

	case secondOk:
		return second, true

	default:
		return nil, false
	}
}

// Swap exchanges the contents of two pairs slot by slot. The pairs may use
// different layouts.
func Swap[A, B any](x, y Slots[A, B]) {
	swapSlots(x.FirstRef(), y.FirstRef(), x.SecondRef(), y.SecondRef())
}

// AssignConvert assigns the values of src to dst after converting them with
// fa and fb. The first slot is converted and assigned before the second.
func AssignConvert[A, B, C, D any](dst Slots[A, B], src Tuple[C, D],
	fa func(C) A, fb func(D) B) {

	c, d := src.Unpack()
	*dst.FirstRef() = fa(c)
	*dst.SecondRef() = fb(d)
}
