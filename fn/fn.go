// Package fn holds combinators over tightpair.Pair. Every pair they return is
// a Pair, so pairs whose only empty slot is the second one are not in their
// tightest layout; see tightpair.Make.
package fn

import "github.com/lightningnetwork/tightpair"

// Unit is a type alias for the empty struct. As a pair slot it is stored in
// zero bytes.
type Unit = struct{}

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)). It
// is mostly useful to chain the pair lifters defined below.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden is the left and right identity of Comp.
func Iden[A any](a A) A {
	return a
}

// Fanout takes two functions that share the same argument type, runs them
// both and bundles the results in a pair.
func Fanout[A, B, C any](f func(A) B,
	g func(A) C) func(A) tightpair.Pair[B, C] {

	return func(a A) tightpair.Pair[B, C] {
		return tightpair.Make(f(a), g(a))
	}
}

// MapFirst lifts the argument function into one that applies to the first
// slot of a pair and leaves the second untouched.
func MapFirst[A, B, C any](
	f func(A) B) func(tightpair.Pair[A, C]) tightpair.Pair[B, C] {

	return func(p tightpair.Pair[A, C]) tightpair.Pair[B, C] {
		return tightpair.Make(f(p.First()), p.Second())
	}
}

// MapSecond lifts the argument function into one that applies to the second
// slot of a pair.
func MapSecond[A, B, C any](
	f func(A) B) func(tightpair.Pair[C, A]) tightpair.Pair[C, B] {

	return func(p tightpair.Pair[C, A]) tightpair.Pair[C, B] {
		return tightpair.Make(p.First(), f(p.Second()))
	}
}

// Bimap applies f to the first slot and g to the second slot.
func Bimap[A, B, C, D any](f func(A) B,
	g func(C) D) func(tightpair.Pair[A, C]) tightpair.Pair[B, D] {

	return Comp(MapFirst[A, B, C](f), MapSecond[C, D, B](g))
}

// Uncurried adapts a two argument function, as typically written in go, to
// one that consumes a pair.
func Uncurried[A, B, C any](f func(A, B) C) func(tightpair.Pair[A, B]) C {
	return func(p tightpair.Pair[A, B]) C {
		return f(p.Unpack())
	}
}

// Curry turns a function consuming a pair into one that accepts the first
// slot and returns a function accepting the second.
func Curry[A, B, C any](
	f func(tightpair.Pair[A, B]) C) func(A) func(B) C {

	return func(a A) func(B) C {
		return func(b B) C {
			return f(tightpair.Make(a, b))
		}
	}
}

// Uncurry inverts Curry, turning a curried function back into one that
// consumes a pair.
func Uncurry[A, B, C any](
	f func(A) func(B) C) func(tightpair.Pair[A, B]) C {

	return func(p tightpair.Pair[A, B]) C {
		return f(p.First())(p.Second())
	}
}

// Const returns a function that ignores its argument and always returns a.
func Const[A, B any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Zip pairs up the elements of as and bs by index. The result is as long as
// the shorter input.
func Zip[A, B any](as []A, bs []B) []tightpair.Pair[A, B] {
	n := len(as)
	if len(bs) < n {
		n = len(bs)
	}

	zipped := make([]tightpair.Pair[A, B], n)
	for i := 0; i < n; i++ {
		zipped[i] = tightpair.Make(as[i], bs[i])
	}

	return zipped
}

// Unzip is the inverse of Zip.
func Unzip[A, B any](ps []tightpair.Pair[A, B]) ([]A, []B) {
	as := make([]A, len(ps))
	bs := make([]B, len(ps))
	for i, p := range ps {
		as[i], bs[i] = p.Unpack()
	}

	return as, bs
}
