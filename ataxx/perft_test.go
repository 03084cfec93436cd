package ataxx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perftSeries hold the libataxx node counts per depth for the standard
// opening positions; series[d-1] is the node count at depth d.
var perftSeries = []struct {
	fen    string
	counts []uint64
}{
	{
		"x5o/7/7/7/7/7/o5x x 0 1",
		[]uint64{16, 256, 6460, 155888, 4752668},
	},
	{
		"x5o/7/2-1-2/7/2-1-2/7/o5x x 0 1",
		[]uint64{14, 196, 4184, 86528, 2266352},
	},
	{
		"x5o/7/2-1-2/3-3/2-1-2/7/o5x x 0 1",
		[]uint64{14, 196, 4100, 83104, 2114588},
	},
	{
		"x5o/7/3-3/2-1-2/3-3/7/o5x x 0 1",
		[]uint64{16, 256, 5948, 133264, 3639856},
	},
}

// perftSpot checks single published depths, including pass-heavy walls,
// blocker prisons and already-finished games.
var perftSpot = []struct {
	fen   string
	depth int
	nodes uint64
}{
	{"7/7/7/7/7/7/7 x 0 1", 4, 0},
	{"7/7/7/7/7/7/7 o 0 1", 4, 0},
	{"x5o/7/7/7/7/7/o5x o 0 1", 5, 4752668},
	{"7/7/7/7/ooooooo/ooooooo/xxxxxxx x 0 1", 5, 452980},
	{"7/7/7/7/ooooooo/ooooooo/xxxxxxx o 0 1", 4, 452980},
	{"7/7/7/7/xxxxxxx/xxxxxxx/ooooooo x 0 1", 4, 452980},
	{"7/7/7/7/xxxxxxx/xxxxxxx/ooooooo o 0 1", 5, 452980},
	{"7/7/7/2x1o2/7/7/7 x 0 1", 5, 4266992},
	{"7/7/7/2x1o2/7/7/7 o 0 1", 5, 4266992},
	{"x5o/7/7/7/7/7/o5x x 100 1", 5, 0},
	{"x5o/7/7/7/7/7/o5x o 100 1", 5, 0},
	{"7/7/7/7/-------/-------/x5o x 0 1", 6, 175},
	{"7/7/7/7/-------/-------/x5o o 0 1", 6, 175},
}

func TestPerftSeries(t *testing.T) {
	for _, tc := range perftSeries {
		pos, err := ParseFEN(tc.fen)
		require.NoError(t, err, tc.fen)
		for d, want := range tc.counts {
			depth := d + 1
			if testing.Short() && depth >= 5 {
				break
			}
			assert.Equal(t, want, Perft(pos, depth), "%s depth %d", tc.fen, depth)
		}
	}
}

func TestPerftSpotChecks(t *testing.T) {
	for _, tc := range perftSpot {
		if testing.Short() && tc.nodes > 1_000_000 {
			continue
		}
		pos, err := ParseFEN(tc.fen)
		require.NoError(t, err, tc.fen)
		assert.Equal(t, tc.nodes, Perft(pos, tc.depth), "%s depth %d", tc.fen, tc.depth)
	}
}

func TestPerftDepthZero(t *testing.T) {
	pos, err := ParseFEN(FENStartPos)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), Perft(pos, 0))
	assert.Equal(t, uint64(1), Perft(pos, -3))
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	for _, depth := range []int{2, 3} {
		pos, err := ParseFEN(FENStartPos)
		require.NoError(t, err)

		divide := PerftDivide(pos, depth)
		require.Len(t, divide, 16)

		var sum uint64
		for m, n := range divide {
			assert.Equal(t, Perft(pos.AfterMove(m), depth-1), n, "move %s", m)
			sum += n
		}
		assert.Equal(t, Perft(pos, depth), sum, "depth %d", depth)
	}
}
