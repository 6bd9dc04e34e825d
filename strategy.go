package tightpair

import "reflect"

// Strategy names the way the two slots of a pair are laid out in memory. It
// is a pure function of the two slot types and never changes for a given
// instantiation.
type Strategy uint8

const (
	// Default stores both slots as ordinary fields in declaration order.
	Default Strategy = iota

	// FirstEmpty is used when only the first slot type is an eligible
	// zero-size type. The first slot is stored ahead of the second and
	// occupies no memory.
	FirstEmpty

	// SecondEmpty is used when only the second slot type is an eligible
	// zero-size type. The second slot must be stored ahead of the first,
	// otherwise it would become a padded trailing field.
	SecondEmpty

	// BothEmpty is used when both slot types are eligible zero-size types.
	// The pair itself is then zero-size. Identical slot types are covered
	// as well since every slot is a distinct named field.
	BothEmpty
)

// String returns a human readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case Default:
		return "Default"

	case FirstEmpty:
		return "FirstEmpty"

	case SecondEmpty:
		return "SecondEmpty"

	case BothEmpty:
		return "BothEmpty"

	default:
		return "Unknown"
	}
}

// Reversed reports whether the strategy stores the second slot ahead of the
// first one, i.e. whether RevPair rather than Pair is its tight layout.
func (s Strategy) Reversed() bool {
	return s == SecondEmpty
}

// NoCompress can be embedded in a zero-size type to keep it out of the empty
// slot optimization. Such a type is treated like any type with state and is
// stored in declaration order.
//
//	type sentinel struct {
//		tightpair.NoCompress
//	}
type NoCompress struct{}

func (NoCompress) noCompress() {}

// incompressible is satisfied by every type embedding NoCompress.
type incompressible interface {
	noCompress()
}

var incompressibleType = reflect.TypeOf((*incompressible)(nil)).Elem()

// typeOf returns the reflect.Type of T, including when T is an interface
// type.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// IsEmpty reports whether values of t carry no state, which in Go means they
// occupy zero bytes.
func IsEmpty(t reflect.Type) bool {
	return t != nil && t.Size() == 0
}

// IsEligible reports whether t may be stored without contributing to the
// footprint of a pair: it must be empty and must not embed NoCompress.
// Whether it is compressed in a given pair also depends on the other slot,
// see Evaluate.
func IsEligible(t reflect.Type) bool {
	return IsEmpty(t) && !t.Implements(incompressibleType)
}

// fitsBeside reports whether an empty slot of type empty can share its
// address with a slot of type other without raising the alignment, and so the
// size, of the pair.
func fitsBeside(empty, other reflect.Type) bool {
	return other != nil && empty.Align() <= other.Align()
}

// Evaluate selects the storage strategy for a pair whose slots have the
// given types. Every combination is valid; Default is the fallback.
//
// An eligible empty slot next to a stateful one is only compressed when its
// alignment does not exceed the stateful slot's: a [0]int64 next to a uint8
// would still round the pair up to 8 bytes, so such a pair uses Default.
func Evaluate(first, second reflect.Type) Strategy {
	firstEligible := IsEligible(first)
	secondEligible := IsEligible(second)

	var strategy Strategy
	switch {
	case firstEligible && secondEligible:
		strategy = BothEmpty

	case firstEligible && fitsBeside(first, second):
		strategy = FirstEmpty

	case secondEligible && fitsBeside(second, first):
		strategy = SecondEmpty

	default:
		strategy = Default
	}

	log.Tracef("Slot types (%v, %v) use %v storage", first, second,
		strategy)

	return strategy
}

// StrategyOf selects the storage strategy for a pair with slot types A and B.
func StrategyOf[A, B any]() Strategy {
	return Evaluate(typeOf[A](), typeOf[B]())
}
