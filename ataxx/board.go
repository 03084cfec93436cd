package ataxx

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is returned by Board.MakeMove when the move is not legal in
// the current position. The board is left untouched.
var ErrIllegalMove = errors.New("illegal move")

// Board is a Position plus the history needed to undo moves. MakeMove keeps
// a snapshot of every position reached, so UndoMove restores the previous
// state exactly, checksum included. A Board must not be shared between
// goroutines; clone one per worker instead.
type Board struct {
	history []Position
}

// NewBoard starts a board at the given position.
func NewBoard(pos Position) *Board {
	history := make([]Position, 1, 64)
	history[0] = pos
	return &Board{history: history}
}

// ParseBoard builds a board from a FEN string.
func ParseBoard(fen string) (*Board, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return NewBoard(pos), nil
}

// Clone returns an independent copy of the board and its history.
func (b *Board) Clone() *Board {
	history := make([]Position, len(b.history), cap(b.history))
	copy(history, b.history)
	return &Board{history: history}
}

func (b *Board) current() *Position { return &b.history[len(b.history)-1] }

// Position returns a copy of the current position.
func (b *Board) Position() Position { return *b.current() }

// MakeMove validates the move and, if legal, plays it. An illegal move is
// rejected with an error wrapping ErrIllegalMove before anything mutates.
func (b *Board) MakeMove(m Move) error {
	cur := b.current()
	if !cur.IsLegal(m) {
		return fmt.Errorf("%w: %s in %s", ErrIllegalMove, m, cur.FEN())
	}
	b.history = append(b.history, cur.AfterMove(m))
	return nil
}

// MakeMoveString parses the textual form of a move and plays it.
func (b *Board) MakeMoveString(s string) error {
	m, err := ParseMove(s)
	if err != nil {
		return err
	}
	return b.MakeMove(m)
}

// UndoMove unplays the last move made with MakeMove. Undoing past the start
// of the recorded history is a programming error and panics; the board is
// never left corrupted.
func (b *Board) UndoMove() {
	if len(b.history) <= 1 {
		panic("ataxx: UndoMove called with no move history")
	}
	b.history = b.history[:len(b.history)-1]
}

// SideToMove returns the side whose turn it is.
func (b *Board) SideToMove() Color { return b.current().sideToMove }

// Checksum returns the current position's semi-unique hash.
func (b *Board) Checksum() Hash { return b.current().checksum }

// At returns the occupancy state of the given square.
func (b *Board) At(sq Square) Piece { return b.current().At(sq) }

// IsGameOver reports whether the game on the board has ended.
func (b *Board) IsGameOver() bool { return b.current().IsGameOver() }

// Winner reports the winning side; ok is false for a draw.
func (b *Board) Winner() (Color, bool) { return b.current().Winner() }

// GenerateMoves returns the legal moves in the current position.
func (b *Board) GenerateMoves() []Move { return b.current().GenerateMoves() }

// CountMoves returns the number of legal moves in the current position.
func (b *Board) CountMoves() int { return b.current().CountMoves() }

// FEN returns the FEN string of the current position.
func (b *Board) FEN() string { return b.current().FEN() }
