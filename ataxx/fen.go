package ataxx

import (
	"fmt"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard Ataxx starting position:
// opposing pieces on the corners, everything else empty, Black to move.
const FENStartPos = "x5o/7/7/7/7/7/o5x x 0 1"

// pieceFromChar converts a FEN character to the corresponding Piece constant.
func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'x', 'X', 'b', 'B':
		return BlackPiece
	case 'o', 'O', 'w', 'W':
		return WhitePiece
	case '-':
		return Blocker
	default:
		return NoPiece
	}
}

// charFromPiece converts a Piece constant to its canonical FEN character.
func charFromPiece(p Piece) byte {
	switch p {
	case BlackPiece:
		return 'x'
	case WhitePiece:
		return 'o'
	case Blocker:
		return '-'
	default:
		return '?' // should not happen for placed pieces
	}
}

// ParseFEN parses an Ataxx FEN string into a Position. The four fields are
// the board (7 ranks top down, '/'-separated, digits for runs of empty
// squares), the side to move, the half-move clock and the full-move number.
// A malformed field yields a descriptive error, never a panic.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 {
		return Position{}, fmt.Errorf("invalid FEN: expected 4 fields, found %d", len(fields))
	}

	var pos Position

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != boardWidth {
		return Position{}, fmt.Errorf("invalid FEN: expected %d ranks, found %d", boardWidth, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := boardWidth - 1 - i // FEN lists ranks top down
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '9' {
				// Digit: skip that many empty squares.
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return Position{}, fmt.Errorf("invalid FEN: unrecognized piece character %q", ch)
			}
			if file >= boardWidth {
				return Position{}, fmt.Errorf("invalid FEN: rank %d has more than %d squares", rank+1, boardWidth)
			}
			pos.Set(NewSquare(file, rank), piece)
			file++
		}
		if file != boardWidth {
			return Position{}, fmt.Errorf("invalid FEN: rank %d has %d squares, want %d", rank+1, file, boardWidth)
		}
	}

	stm, err := ParseColor(fields[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid FEN: %w", err)
	}
	pos.sideToMove = stm

	halfMove, err := strconv.Atoi(fields[2])
	if err != nil || halfMove < 0 {
		return Position{}, fmt.Errorf("invalid FEN: half-move clock %q is not a non-negative number", fields[2])
	}
	pos.halfMoveClock = halfMove

	fullMove, err := strconv.Atoi(fields[3])
	if err != nil || fullMove < 1 {
		return Position{}, fmt.Errorf("invalid FEN: full-move number %q is not a positive number", fields[3])
	}
	pos.plyCount = (fullMove - 1) * 2
	if stm == White {
		pos.plyCount++
	}

	pos.checksum = NewHash(pos.black, pos.white, stm)
	return pos, nil
}

// FEN produces the FEN string of the position. ParseFEN is its inverse for
// every valid position.
func (p Position) FEN() string {
	var sb strings.Builder

	for rank := boardWidth - 1; rank >= 0; rank-- {
		emptyRun := 0
		for file := 0; file < boardWidth; file++ {
			piece := p.At(NewSquare(file, rank))
			if piece == NoPiece {
				emptyRun++
				continue
			}
			if emptyRun > 0 {
				sb.WriteByte('0' + byte(emptyRun))
				emptyRun = 0
			}
			sb.WriteByte(charFromPiece(piece))
		}
		if emptyRun > 0 {
			sb.WriteByte('0' + byte(emptyRun))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(p.sideToMove.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber()))
	return sb.String()
}
