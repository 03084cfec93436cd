package ataxx

// singleMasks[sq] holds the squares at Chebyshev distance exactly 1 from sq
// (single-move targets, and the flip neighborhood of a landing square);
// doubleMasks[sq] holds the ring at distance exactly 2 (jump targets). Both
// tables are filled once at package init and never written again, so they
// are safe for concurrent readers.
var (
	singleMasks [NumSquares]BitBoard
	doubleMasks [NumSquares]BitBoard
)

func init() {
	for sq := Square(0); sq < NumSquares; sq++ {
		for other := Square(0); other < NumSquares; other++ {
			df := abs(sq.File() - other.File())
			dr := abs(sq.Rank() - other.Rank())
			d := df
			if dr > d {
				d = dr
			}
			switch d {
			case 1:
				singleMasks[sq] |= SquareBB(other)
			case 2:
				doubleMasks[sq] |= SquareBB(other)
			}
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SingleMask returns the single-move (adjacency) mask of the square.
func SingleMask(sq Square) BitBoard { return singleMasks[sq] }

// JumpMask returns the jump-move ring mask of the square.
func JumpMask(sq Square) BitBoard { return doubleMasks[sq] }

// singlesReach returns every square reachable by a single move from any
// square in bb: the set grown by one step in all eight directions.
func singlesReach(bb BitBoard) BitBoard {
	bar := bb | bb.East() | bb.West()
	return bar | bar.North() | bar.South()
}

// GenerateMoves returns the legal moves in the position.
func (p Position) GenerateMoves() []Move {
	return p.GenerateMovesInto(make([]Move, 0, 128))
}

// GenerateMovesInto appends the legal moves in the position to dst and
// returns it. Single moves are deduplicated across sources: placing on an
// empty square is one move no matter how many own pieces border it. Jump
// moves are one per (source, target) pair, since the vacated square matters.
// A finished game has no moves; a stuck side's only move is MovePass.
func (p Position) GenerateMovesInto(dst []Move) []Move {
	if p.IsGameOver() {
		return dst
	}

	ours := p.Bitboard(p.sideToMove)
	empty := p.Empty()
	start := len(dst)

	for targets := singlesReach(ours) & empty; targets != 0; {
		dst = append(dst, NewSingleMove(popFirst(&targets)))
	}
	for pieces := ours; pieces != 0; {
		from := popFirst(&pieces)
		for targets := doubleMasks[from] & empty; targets != 0; {
			dst = append(dst, NewMove(from, popFirst(&targets)))
		}
	}

	if len(dst) == start {
		dst = append(dst, MovePass)
	}
	return dst
}

// CountMoves returns len(GenerateMoves()) without materializing the moves.
func (p Position) CountMoves() int {
	if p.IsGameOver() {
		return 0
	}

	ours := p.Bitboard(p.sideToMove)
	empty := p.Empty()

	moves := (singlesReach(ours) & empty).Count()
	for pieces := ours; pieces != 0; {
		moves += (doubleMasks[popFirst(&pieces)] & empty).Count()
	}

	if moves == 0 {
		// Forced pass.
		return 1
	}
	return moves
}

// IsLegal reports whether the move is legal in the current position.
func (p Position) IsLegal(m Move) bool {
	if m == MoveNull || p.IsGameOver() {
		return false
	}

	ours := p.Bitboard(p.sideToMove)
	empty := p.Empty()

	if m == MovePass {
		// Passing is only allowed when nothing else is.
		if singlesReach(ours)&empty != 0 {
			return false
		}
		for pieces := ours; pieces != 0; {
			if doubleMasks[popFirst(&pieces)]&empty != 0 {
				return false
			}
		}
		return true
	}

	target := m.Target()
	if !target.IsValid() || !empty.Contains(target) {
		return false
	}
	if m.IsSingle() {
		return singleMasks[target]&ours != 0
	}
	source := m.Source()
	return source.IsValid() && ours.Contains(source) && doubleMasks[source].Contains(target)
}
