package pairbench

import (
	"unsafe"

	"github.com/lightningnetwork/tightpair"
)

// less is a stateless comparator, the typical occupant of an empty slot.
type less struct{}

// greater is another stateless comparator, distinct from less.
type greater struct{}

// sealedLess is a stateless comparator that opts out of the optimization.
type sealedLess struct {
	tightpair.NoCompress
}

// Footprint reports how a representative slot type pair is laid out.
type Footprint struct {
	// First and Second are the slot type names.
	First  string
	Second string

	// Layout is the tight layout selected for the slot types.
	Layout tightpair.Layout

	// PairSize is the size of the slot types stored as a Pair, i.e.
	// without any reordering.
	PairSize uintptr

	// SlotBytes is the sum of the slot sizes.
	SlotBytes uintptr
}

// Overhead returns the bytes the tight layout spends on padding.
func (f Footprint) Overhead() uintptr {
	return f.Layout.Size - f.SlotBytes
}

func footprint[A, B any]() Footprint {
	types := tightpair.ElementTypes[A, B]()

	var p tightpair.Pair[A, B]

	return Footprint{
		First:     types[0].String(),
		Second:    types[1].String(),
		Layout:    tightpair.LayoutOf[A, B](),
		PairSize:  unsafe.Sizeof(p),
		SlotBytes: types[0].Size() + types[1].Size(),
	}
}

// Footprints returns the footprint of a representative set of slot type
// pairs, one or more per storage strategy.
func Footprints() []Footprint {
	return []Footprint{
		footprint[uint8, uint64](),
		footprint[uint32, uint32](),
		footprint[string, []byte](),
		footprint[less, uint64](),
		footprint[less, [3]uint16](),
		footprint[uint64, less](),
		footprint[[]byte, greater](),
		footprint[less, greater](),
		footprint[less, less](),
		footprint[uint64, sealedLess](),
		footprint[[0]uint32, uint64](),
		footprint[[0]uint64, uint8](),
	}
}
