// Package tightpair implements a compressed pair: a two-slot value that
// behaves like an ordinary pair but does not pay for slots whose type carries
// no state.
//
// Go stores zero-size fields for free unless they are the last field of a
// non-empty struct, in which case the toolchain pads them. The package
// therefore evaluates each slot type pair once (see StrategyOf) and offers two
// physical layouts: Pair, which stores the first slot ahead of the second, and
// RevPair, which stores the second slot ahead of the first. Both expose the
// same logical order: index 0 is always the first slot and index 1 always the
// second.
//
//	type less struct{}
//
//	p := tightpair.Make(less{}, uint64(42))     // 8 bytes
//	r := tightpair.MakeRev(uint64(42), less{})  // 8 bytes, Pair would take 16
//
// None of the operations in this package allocate, block or fail at runtime.
package tightpair
