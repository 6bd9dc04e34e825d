package pairbench

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/lightningnetwork/tightpair"
)

// ErrUnknownDistribution is returned for a distribution name that is not
// known.
var ErrUnknownDistribution = errors.New("unknown distribution")

// Distribution names a way of generating the input of a sort.
type Distribution string

const (
	// Shuffled is a random permutation with many ties on the first slot.
	Shuffled Distribution = "shuffled"

	// AllEqual holds the same pair everywhere.
	AllEqual Distribution = "all-equal"

	// Ascending is already sorted.
	Ascending Distribution = "ascending"

	// Descending is sorted in reverse.
	Descending Distribution = "descending"

	// PipeOrgan ascends over the first half and descends over the second.
	PipeOrgan Distribution = "pipe-organ"

	// FewUnique draws both slots from a handful of values.
	FewUnique Distribution = "few-unique"
)

// Distributions returns every known distribution.
func Distributions() []Distribution {
	return []Distribution{
		Shuffled, AllEqual, Ascending, Descending, PipeOrgan, FewUnique,
	}
}

// ParseDistribution returns the distribution with the given name.
func ParseDistribution(name string) (Distribution, error) {
	for _, d := range Distributions() {
		if string(d) == name {
			return d, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownDistribution, name)
}

// ParseDistributions parses every name, or returns all distributions when no
// name is given.
func ParseDistributions(names []string) ([]Distribution, error) {
	if len(names) == 0 {
		return Distributions(), nil
	}

	dists := make([]Distribution, 0, len(names))
	for _, name := range names {
		d, err := ParseDistribution(name)
		if err != nil {
			return nil, err
		}
		dists = append(dists, d)
	}

	return dists, nil
}

// ascendingPair returns the i-th pair of a sorted sequence in which runs of
// 16 pairs share the same first slot.
func ascendingPair(i int) tightpair.Pair[uint32, uint32] {
	return tightpair.Make(uint32(i/16), uint32(i%16))
}

// Generate returns n pairs following the distribution. Randomness is drawn
// from r only.
func (d Distribution) Generate(r *rand.Rand,
	n int) []tightpair.Pair[uint32, uint32] {

	pairs := make([]tightpair.Pair[uint32, uint32], n)

	switch d {
	case Shuffled:
		for i := range pairs {
			pairs[i] = ascendingPair(i)
		}
		r.Shuffle(n, func(i, j int) {
			pairs[i], pairs[j] = pairs[j], pairs[i]
		})

	case AllEqual:
		for i := range pairs {
			pairs[i] = tightpair.Make[uint32, uint32](7, 7)
		}

	case Ascending:
		for i := range pairs {
			pairs[i] = ascendingPair(i)
		}

	case Descending:
		for i := range pairs {
			pairs[i] = ascendingPair(n - 1 - i)
		}

	case PipeOrgan:
		half := n / 2
		for i := range pairs {
			if i < half {
				pairs[i] = ascendingPair(i)
			} else {
				pairs[i] = ascendingPair(n - 1 - i)
			}
		}

	case FewUnique:
		for i := range pairs {
			pairs[i] = tightpair.Make(
				uint32(r.Intn(4)), uint32(r.Intn(4)),
			)
		}
	}

	return pairs
}
