package tightpair

import (
	"reflect"
	"unsafe"
)

// Layout describes where the slots of a pair end up in memory.
type Layout struct {
	// Strategy is the storage strategy the slot types select.
	Strategy Strategy

	// Reversed is true when the second slot is stored ahead of the first,
	// i.e. when RevPair is the tight layout.
	Reversed bool

	// Size is the size of the pair in bytes.
	Size uintptr

	// Align is the alignment of the pair in bytes.
	Align uintptr

	// FirstOffset is the byte offset of the first slot.
	FirstOffset uintptr

	// SecondOffset is the byte offset of the second slot.
	SecondOffset uintptr
}

// TypeName returns the name of the layout type the strategy selects.
func (l Layout) TypeName() string {
	if l.Reversed {
		return "RevPair"
	}

	return "Pair"
}

// Overhead returns how many bytes the pair spends beyond the sizes of its
// slots, which is the padding inserted for alignment.
func (l Layout) Overhead(first, second reflect.Type) uintptr {
	return l.Size - first.Size() - second.Size()
}

// Plan builds the layout selected for slots of the given types and reports
// its measurements. The struct is assembled with reflect.StructOf, which
// applies the same field layout rules as the compiler.
func Plan(first, second reflect.Type) Layout {
	strategy := Evaluate(first, second)

	fields := []reflect.StructField{
		{Name: "First", Type: first},
		{Name: "Second", Type: second},
	}
	if strategy.Reversed() {
		fields[0], fields[1] = fields[1], fields[0]
	}

	structType := reflect.StructOf(fields)
	firstField, _ := structType.FieldByName("First")
	secondField, _ := structType.FieldByName("Second")

	return Layout{
		Strategy:     strategy,
		Reversed:     strategy.Reversed(),
		Size:         structType.Size(),
		Align:        uintptr(structType.Align()),
		FirstOffset:  firstField.Offset,
		SecondOffset: secondField.Offset,
	}
}

// LayoutOf measures the tight layout for slot types A and B: Pair or RevPair
// depending on StrategyOf.
func LayoutOf[A, B any]() Layout {
	strategy := StrategyOf[A, B]()
	layout := Layout{
		Strategy: strategy,
		Reversed: strategy.Reversed(),
	}

	if layout.Reversed {
		var p RevPair[A, B]
		layout.Size = unsafe.Sizeof(p)
		layout.Align = unsafe.Alignof(p)
		layout.FirstOffset = unsafe.Offsetof(p.first)
		layout.SecondOffset = unsafe.Offsetof(p.second)

		return layout
	}

	var p Pair[A, B]
	layout.Size = unsafe.Sizeof(p)
	layout.Align = unsafe.Alignof(p)
	layout.FirstOffset = unsafe.Offsetof(p.first)
	layout.SecondOffset = unsafe.Offsetof(p.second)

	return layout
}
