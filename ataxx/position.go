package ataxx

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// Position is the state of an Ataxx game at one point in time: the three
// occupancy bitboards, a checksum, the side to move and the move counters.
// It is a small value type, so taking snapshots of it is cheap; Board layers
// a move history on top of it. The three bitboards are pairwise disjoint and
// always within the 49-square board.
type Position struct {
	black BitBoard
	white BitBoard
	gaps  BitBoard

	checksum   Hash
	sideToMove Color

	// halfMoveClock counts half-moves since the last single move, the only
	// irreversible move kind; reaching 100 adjudicates a draw.
	halfMoveClock int
	// plyCount counts half-moves since the start of the game.
	plyCount int
}

// NewPosition builds a Position from its occupancy bitboards and side to
// move. The bitboards must be pairwise disjoint and within the board.
func NewPosition(black, white, gaps BitBoard, stm Color) Position {
	return Position{
		black:      black,
		white:      white,
		gaps:       gaps,
		checksum:   NewHash(black, white, stm),
		sideToMove: stm,
	}
}

// StartPosition returns the standard starting position: black on a7 and g1,
// white on a1 and g7, black to move.
func StartPosition() Position {
	black := SquareBB(NewSquare(0, 6)) | SquareBB(NewSquare(6, 0))
	white := SquareBB(NewSquare(0, 0)) | SquareBB(NewSquare(6, 6))
	return NewPosition(black, white, BBEmpty, Black)
}

// Bitboard returns the piece bitboard of the given side.
func (p Position) Bitboard(c Color) BitBoard {
	if c == Black {
		return p.black
	}
	return p.white
}

// Gaps returns the blocker bitboard.
func (p Position) Gaps() BitBoard { return p.gaps }

// Occupied returns the union of both color bitboards and the blockers.
func (p Position) Occupied() BitBoard { return p.black | p.white | p.gaps }

// Empty returns the playable empty squares: the complement of Occupied
// within the board.
func (p Position) Empty() BitBoard { return ^p.Occupied() & BBUniverse }

// SideToMove returns the side whose turn it is.
func (p Position) SideToMove() Color { return p.sideToMove }

// Checksum returns the position's semi-unique hash.
func (p Position) Checksum() Hash { return p.checksum }

// HalfMoveClock returns the number of half-moves since the last single move.
func (p Position) HalfMoveClock() int { return p.halfMoveClock }

// PlyCount returns the number of half-moves played since the game started.
func (p Position) PlyCount() int { return p.plyCount }

// FullMoveNumber returns the full move counter, starting at 1 and
// incrementing after each of White's moves.
func (p Position) FullMoveNumber() int { return p.plyCount/2 + 1 }

// At returns the occupancy state of the given square. An off-board square is
// a caller bug; it is logged and reported as empty rather than read out of
// range.
func (p Position) At(sq Square) Piece {
	if !sq.IsValid() {
		log.Error().Int("square", int(sq)).Msg("At called with an off-board square")
		return NoPiece
	}
	switch {
	case p.black.Contains(sq):
		return BlackPiece
	case p.white.Contains(sq):
		return WhitePiece
	case p.gaps.Contains(sq):
		return Blocker
	}
	return NoPiece
}

// Set places the given occupancy state on the square, replacing whatever was
// there, and refreshes the checksum. An off-board square is a caller bug; it
// is logged and the position is left untouched.
func (p *Position) Set(sq Square, piece Piece) {
	if !sq.IsValid() {
		log.Error().Int("square", int(sq)).Msg("Set called with an off-board square")
		return
	}
	bit := SquareBB(sq)
	p.black &^= bit
	p.white &^= bit
	p.gaps &^= bit
	switch piece {
	case BlackPiece:
		p.black |= bit
	case WhitePiece:
		p.white |= bit
	case Blocker:
		p.gaps |= bit
	}
	p.checksum = NewHash(p.black, p.white, p.sideToMove)
}

// IsGameOver reports whether the game has ended: the half-move clock hit 100
// (fifty-move rule), the board is full, or either side has no pieces left.
func (p Position) IsGameOver() bool {
	return p.halfMoveClock >= 100 ||
		p.black|p.white|p.gaps == BBUniverse ||
		p.black.IsEmpty() || p.white.IsEmpty()
}

// Winner reports which side has won; ok is false for a drawn game. The
// result is only meaningful when IsGameOver is true.
func (p Position) Winner() (winner Color, ok bool) {
	if p.halfMoveClock >= 100 {
		// Fifty-move rule draw.
		return Black, false
	}
	if p.black.IsEmpty() {
		return White, true
	}
	if p.white.IsEmpty() {
		return Black, true
	}

	// Board is full; the side with more pieces wins.
	blackN := p.black.Count()
	whiteN := p.white.Count()
	switch {
	case blackN > whiteN:
		return Black, true
	case whiteN > blackN:
		return White, true
	}
	// Equal counts are possible with an odd number of blockers.
	return Black, false
}

// AfterMove returns the position reached by playing the given move. The move
// must be legal; Board.MakeMove performs that validation.
func (p Position) AfterMove(m Move) Position { return p.afterMove(m, true) }

// AfterMoveUnhashed is AfterMove without the checksum update, for hot paths
// like perft that never read the checksum. The resulting checksum is zero
// until RecomputeChecksum is called.
func (p Position) AfterMoveUnhashed(m Move) Position { return p.afterMove(m, false) }

func (p Position) afterMove(m Move, updateHash bool) Position {
	stm := p.sideToMove

	// A pass only changes the side to move and the clocks, so its checksum
	// is the complement of the current one.
	if m == MovePass {
		next := p
		next.sideToMove = stm.Other()
		next.halfMoveClock++
		next.plyCount++
		if updateHash {
			next.checksum = ^p.checksum
		} else {
			next.checksum = 0
		}
		return next
	}

	ours := p.Bitboard(stm)
	theirs := p.Bitboard(stm.Other())

	// Flip step: every opposing piece adjacent to the target changes hands.
	// For a single move source == target, so fromTo is the target bit alone;
	// for a jump it clears the source and sets the target in one XOR.
	captured := singleMasks[m.Target()] & theirs
	fromTo := SquareBB(m.Target()) | SquareBB(m.Source())
	theirs ^= captured
	ours ^= captured ^ fromTo

	next := Position{
		gaps:       p.gaps,
		sideToMove: stm.Other(),
		plyCount:   p.plyCount + 1,
	}
	if m.IsSingle() {
		// A placement is irreversible.
		next.halfMoveClock = 0
	} else {
		next.halfMoveClock = p.halfMoveClock + 1
	}
	if stm == Black {
		next.black, next.white = ours, theirs
	} else {
		next.black, next.white = theirs, ours
	}
	if updateHash {
		next.checksum = NewHash(next.black, next.white, next.sideToMove)
	}
	return next
}

// RecomputeChecksum refreshes the checksum from the bitboards. Callers of
// AfterMoveUnhashed use it to restore checksum validity.
func (p *Position) RecomputeChecksum() {
	p.checksum = NewHash(p.black, p.white, p.sideToMove)
}

// Validate checks the internal invariants: the color and blocker bitboards
// are pairwise disjoint and contain no off-board bits.
func (p Position) Validate() bool {
	if !p.black.IsDisjoint(p.white) || !p.black.IsDisjoint(p.gaps) || !p.white.IsDisjoint(p.gaps) {
		return false
	}
	return p.Occupied()&^BBUniverse == 0
}

// String renders the position as ASCII art with rank and file markers.
func (p Position) String() string {
	var sb strings.Builder
	for rank := boardWidth - 1; rank >= 0; rank-- {
		for file := 0; file < boardWidth; file++ {
			sb.WriteString(p.At(NewSquare(file, rank)).String())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, " %d\n", rank+1)
	}
	sb.WriteString("a b c d e f g\n")
	fmt.Fprintf(&sb, "side to move: %s\n", p.sideToMove)
	return sb.String()
}
