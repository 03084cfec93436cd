package ataxx

import (
	"testing"

	"github.com/matryer/is"
)

type squareTestStruct struct {
	file   int
	rank   int
	output string
}

var squareTests = []squareTestStruct{
	{0, 0, "a1"},
	{6, 0, "g1"},
	{0, 6, "a7"},
	{6, 6, "g7"},
	{3, 3, "d4"},
	{2, 4, "c5"},
}

func TestSquareString(t *testing.T) {
	for _, tc := range squareTests {
		calc := NewSquare(tc.file, tc.rank).String()
		if calc != tc.output {
			t.Errorf("For file=%v rank=%v got %v, expected %v", tc.file, tc.rank, calc, tc.output)
		}
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare should format as -, got %v", NoSquare.String())
	}
}

func TestParseSquare(t *testing.T) {
	is := is.New(t)
	for _, tc := range squareTests {
		sq, err := ParseSquare(tc.output)
		is.NoErr(err)
		is.Equal(sq, NewSquare(tc.file, tc.rank))
	}
	for _, bad := range []string{"", "a", "a8", "h1", "z9", "a1b"} {
		_, err := ParseSquare(bad)
		is.True(err != nil)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	is := is.New(t)

	sing := NewSingleMove(NewSquare(6, 1)) // g2
	jump := NewMove(NewSquare(0, 0), NewSquare(2, 2))

	is.Equal(sing.String(), "g2")
	is.Equal(jump.String(), "a1c3")
	is.Equal(MovePass.String(), "0000")
	is.Equal(MoveNull.String(), "null")

	for _, s := range []string{"g2", "a1c3", "0000", "a7", "g7a7"} {
		m, err := ParseMove(s)
		is.NoErr(err)
		is.Equal(m.String(), s)
	}
}

func TestMoveFields(t *testing.T) {
	is := is.New(t)

	sing := NewSingleMove(NewSquare(1, 6)) // b7
	is.True(sing.IsSingle())
	is.Equal(sing.Source(), sing.Target())
	is.Equal(sing.Target(), NewSquare(1, 6))

	jump := NewMove(NewSquare(0, 0), NewSquare(0, 2)) // a1a3
	is.True(!jump.IsSingle())
	is.Equal(jump.Source(), NewSquare(0, 0))
	is.Equal(jump.Target(), NewSquare(0, 2))
}

func TestParseMoveErrors(t *testing.T) {
	is := is.New(t)
	for _, bad := range []string{"", "a", "a1c", "a1c3d", "z9", "a1z9", "0001"} {
		_, err := ParseMove(bad)
		is.True(err != nil)
	}
}
