package ataxx

// Perft counts the leaf nodes of the legal move tree rooted at the position,
// at the given depth. It is both the correctness oracle and the profiling
// workload of the move generator. Bulk counting at depth 1 (CountMoves) and
// the unhashed apply keep the walk allocation-free beyond the per-depth move
// buffers.
func Perft(pos Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(pos, depth, &pc)
}

// perftCtx reuses one move buffer per depth across the whole tree walk.
type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 256)
		pc.bufs[depth] = buf
	}
	return buf[:0]
}

func perftRec(pos Position, depth int, pc *perftCtx) uint64 {
	// Bulk counting: the number of legal moves, without materializing them.
	if depth == 1 {
		return uint64(pos.CountMoves())
	}

	var nodes uint64
	moves := pos.GenerateMovesInto(pc.bufFor(depth))
	pc.bufs[depth] = moves // keep any buffer growth for reuse
	for _, m := range moves {
		nodes += perftRec(pos.AfterMoveUnhashed(m), depth-1, pc)
	}
	return nodes
}

// PerftDivide returns the perft contribution of each legal root move at the
// given depth. Useful for debugging move generation.
func PerftDivide(pos Position, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range pos.GenerateMoves() {
		result[m] = Perft(pos.AfterMove(m), depth-1)
	}
	return result
}
