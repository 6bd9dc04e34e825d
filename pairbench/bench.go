package pairbench

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/lightningnetwork/tightpair"
	"github.com/lightningnetwork/tightpair/benchcfg"
	"golang.org/x/sync/errgroup"
)

// ErrUnsorted is returned when a contender leaves its input unsorted.
var ErrUnsorted = errors.New("output is not sorted")

// plainPair is the ordinary two field struct the pair layouts are measured
// against.
type plainPair struct {
	first  uint32
	second uint32
}

func comparePlain(x, y plainPair) int {
	switch {
	case x.first < y.first:
		return -1

	case x.first > y.first:
		return 1

	case x.second < y.second:
		return -1

	case x.second > y.second:
		return 1

	default:
		return 0
	}
}

// Contender is one way of sorting a slice of pairs.
type Contender struct {
	// Name identifies the contender in reports.
	Name string

	// sort sorts a private copy of the input and returns how long the
	// sort itself took.
	sort func(input []tightpair.Pair[uint32, uint32]) (time.Duration,
		error)
}

// Contenders returns the sorting strategies compared by Run.
func Contenders() []Contender {
	return []Contender{
		{
			Name: "plain",
			sort: func(input []tightpair.Pair[uint32,
				uint32]) (time.Duration, error) {

				data := make([]plainPair, len(input))
				for i, p := range input {
					data[i] = plainPair{p.First(), p.Second()}
				}

				start := time.Now()
				slices.SortFunc(data, comparePlain)
				elapsed := time.Since(start)

				if !slices.IsSortedFunc(data, comparePlain) {
					return 0, ErrUnsorted
				}

				return elapsed, nil
			},
		},
		{
			Name: "lexicographic",
			sort: sortPairs(tightpair.Compare[uint32, uint32]),
		},
		{
			Name: "packed",
			sort: sortPairs(tightpair.PackedCompare[uint32]),
		},
	}
}

// sortPairs returns a contender sort function using cmp.
func sortPairs(cmp func(x, y tightpair.Pair[uint32, uint32]) int) func(
	[]tightpair.Pair[uint32, uint32]) (time.Duration, error) {

	return func(input []tightpair.Pair[uint32, uint32]) (time.Duration,
		error) {

		data := slices.Clone(input)

		start := time.Now()
		slices.SortFunc(data, cmp)
		elapsed := time.Since(start)

		// Verify against the reference order rather than the
		// contender's own comparison.
		if !slices.IsSortedFunc(data, tightpair.Compare[uint32, uint32]) {
			return 0, ErrUnsorted
		}

		return elapsed, nil
	}
}

// Result is the outcome of sorting one distribution with one contender.
type Result struct {
	// Distribution is the input distribution.
	Distribution Distribution

	// Contender is the name of the contender.
	Contender string

	// Median is the median duration of the runs.
	Median time.Duration

	// Runs is the number of runs the median was taken over.
	Runs int
}

// median returns the median of the durations, sorting them in place.
func median(durations []time.Duration) time.Duration {
	slices.Sort(durations)

	mid := len(durations) / 2
	if len(durations)%2 == 1 {
		return durations[mid]
	}

	return (durations[mid-1] + durations[mid]) / 2
}

// generateInputs generates the input of every distribution concurrently.
// Distribution i draws from its own source seeded with seed+i, so the inputs
// only depend on the seed and the order of dists.
func generateInputs(ctx context.Context, dists []Distribution, seed int64,
	n int) ([][]tightpair.Pair[uint32, uint32], error) {

	inputs := make([][]tightpair.Pair[uint32, uint32], len(dists))

	g, ctx := errgroup.WithContext(ctx)
	for i, dist := range dists {
		i, dist := i, dist

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r := rand.New(rand.NewSource(seed + int64(i)))
			inputs[i] = dist.Generate(r, n)

			log.Debugf("Generated %d pairs with distribution %v",
				n, dist)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return inputs, nil
}

// Run sorts every configured distribution with every contender cfg.Runs
// times and reports the median durations. Each distribution is generated
// once so all contenders sort the same input. The sorts run one at a time and
// the context is checked between runs.
func Run(ctx context.Context, cfg *benchcfg.Config) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dists, err := ParseDistributions(cfg.Distributions)
	if err != nil {
		return nil, err
	}

	inputs, err := generateInputs(ctx, dists, cfg.Seed, cfg.Size)
	if err != nil {
		return nil, err
	}

	contenders := Contenders()
	results := make([]Result, 0, len(dists)*len(contenders))

	for i, dist := range dists {
		input := inputs[i]

		for _, contender := range contenders {
			durations := make([]time.Duration, 0, cfg.Runs)
			for run := 0; run < cfg.Runs; run++ {
				if err := ctx.Err(); err != nil {
					return nil, err
				}

				elapsed, err := contender.sort(input)
				if err != nil {
					return nil, fmt.Errorf("%v on %v: %w",
						contender.Name, dist, err)
				}
				durations = append(durations, elapsed)
			}

			result := Result{
				Distribution: dist,
				Contender:    contender.Name,
				Median:       median(durations),
				Runs:         cfg.Runs,
			}
			log.Infof("%-12v %-14v median=%v", dist,
				contender.Name, result.Median)

			results = append(results, result)
		}
	}

	return results, nil
}
