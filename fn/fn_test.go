package fn

import (
	"math/rand"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/lightningnetwork/tightpair"
	"github.com/stretchr/testify/require"
)

func GenPairs(r *rand.Rand) []tightpair.Pair[uint32, string] {
	size := int(r.Uint32() >> 26)
	ps := make([]tightpair.Pair[uint32, string], 0, size)
	for i := 0; i < size; i++ {
		n := r.Uint32()
		ps = append(ps, tightpair.Make(n, strconv.Itoa(int(n))))
	}

	return ps
}

func TestFanoutProjections(t *testing.T) {
	double := func(x uint32) uint64 {
		return uint64(x) * 2
	}
	format := func(x uint32) string {
		return strconv.FormatUint(uint64(x), 16)
	}

	err := quick.Check(func(x uint32) bool {
		p := Fanout(double, format)(x)
		return p.First() == double(x) && p.Second() == format(x)
	}, nil)
	require.NoError(t, err)
}

func TestMapFirstIdentity(t *testing.T) {
	err := quick.Check(func(a uint32, b string) bool {
		p := tightpair.Make(a, b)
		return MapFirst[uint32, uint32, string](Iden[uint32])(p) == p
	}, nil)
	require.NoError(t, err)
}

func TestMapSecondIdentity(t *testing.T) {
	err := quick.Check(func(a uint32, b string) bool {
		p := tightpair.Make(a, b)
		return MapSecond[string, string, uint32](Iden[string])(p) == p
	}, nil)
	require.NoError(t, err)
}

func TestBimapComposition(t *testing.T) {
	inc := func(x uint32) uint32 {
		return x + 1
	}
	length := func(s string) int {
		return len(s)
	}

	err := quick.Check(func(a uint32, b string) bool {
		p := tightpair.Make(a, b)

		both := Bimap(inc, length)(p)
		split := Comp(
			MapFirst[uint32, uint32, string](inc),
			MapSecond[string, int, uint32](length),
		)(p)

		return both == split && both.First() == a+1 &&
			both.Second() == len(b)
	}, nil)
	require.NoError(t, err)
}

func TestUncurried(t *testing.T) {
	concat := Uncurried(func(a uint32, b string) string {
		return strconv.Itoa(int(a)) + b
	})

	require.Equal(t, "42x", concat(tightpair.Make(uint32(42), "x")))
}

func TestZipUnzipIdentity(t *testing.T) {
	err := quick.Check(
		func(ps []tightpair.Pair[uint32, string]) bool {
			as, bs := Unzip(ps)
			if len(as) != len(ps) || len(bs) != len(ps) {
				return false
			}

			return reflect.DeepEqual(Zip(as, bs), ps)
		},
		&quick.Config{
			Values: func(vs []reflect.Value, r *rand.Rand) {
				vs[0] = reflect.ValueOf(GenPairs(r))
			},
		},
	)
	require.NoError(t, err)
}

func TestZipTruncates(t *testing.T) {
	zipped := Zip([]int{1, 2, 3}, []string{"a", "b"})
	require.Equal(t, []tightpair.Pair[int, string]{
		tightpair.Make(1, "a"),
		tightpair.Make(2, "b"),
	}, zipped)

	require.Empty(t, Zip([]int{1}, []string(nil)))
}

func TestCurryUncurryInverse(t *testing.T) {
	weigh := func(p tightpair.Pair[uint32, string]) uint64 {
		return uint64(p.First())*31 + uint64(len(p.Second()))
	}

	err := quick.Check(func(a uint32, b string) bool {
		p := tightpair.Make(a, b)

		roundTrip := Uncurry(Curry(weigh))(p)
		curried := Curry(weigh)(a)(b)

		return roundTrip == weigh(p) && curried == weigh(p)
	}, nil)
	require.NoError(t, err)
}

func TestUncurryCurryInverse(t *testing.T) {
	prefix := func(a uint32) func(string) string {
		return func(b string) string {
			return strconv.Itoa(int(a)) + b
		}
	}

	err := quick.Check(func(a uint32, b string) bool {
		return Curry(Uncurry(prefix))(a)(b) == prefix(a)(b)
	}, nil)
	require.NoError(t, err)
}

func TestConst(t *testing.T) {
	err := quick.Check(func(a uint32, b string) bool {
		return Const[uint32, string](a)(b) == a
	}, nil)
	require.NoError(t, err)
}

func TestUnitSlotIsFree(t *testing.T) {
	p := Fanout(Iden[uint64], Const[Unit, uint64](Unit{}))(7)
	require.Equal(t, uint64(7), p.First())
	require.Equal(t, tightpair.SecondEmpty, tightpair.StrategyOf[uint64, Unit]())
	require.Equal(t, uintptr(8), tightpair.LayoutOf[uint64, Unit]().Size)
}
