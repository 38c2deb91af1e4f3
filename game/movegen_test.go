package game

import (
	"sort"
	"testing"

	"draughts/board"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// posWith builds a position holding exactly the given pieces.
func posWith(toMove board.Color, pieces map[board.Square]board.Piece) board.Position {
	var pos board.Position
	pos.ToMove = toMove
	for sq, pc := range pieces {
		pos.Set(sq, pc)
	}
	return pos
}

func notations(moves []board.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}

func TestInitialPositionHasNineQuietMoves(t *testing.T) {
	pos := board.Initial()
	moves := LegalMoves(&pos, board.White)
	require.Len(t, moves, 9)
	for _, m := range moves {
		require.False(t, m.IsCapture(), "no captures exist in the initial position")
	}
}

func TestSimpleCaptureIsOnlyMove(t *testing.T) {
	// White man on 28, Black man on 33: the capture landing on 39 is the
	// whole legal move list, quiet moves included nowhere.
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteMan,
		33: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	require.Len(t, moves, 1)
	require.Equal(t, "28x39", moves[0].String())

	after := ApplyToPosition(pos, moves[0])
	require.Equal(t, board.Empty, after.At(33), "the jumped piece comes off")
	require.Equal(t, board.Empty, after.At(28))
	require.Equal(t, board.WhiteMan, after.At(39))
	require.Equal(t, board.Black, after.ToMove)
}

func TestMaximumCaptureRuleIsGlobal(t *testing.T) {
	// The man on 28 can chain two jumps (28x39x50); the man on 36 only one
	// (36x47). Only the longest sequence is legal, even though it belongs to
	// a different piece.
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteMan,
		36: board.WhiteMan,
		33: board.BlackMan,
		44: board.BlackMan,
		41: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	if diff := cmp.Diff([]string{"28x39x50"}, notations(moves)); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestKingQuietMovesCoverOpenRays(t *testing.T) {
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteKing,
	})
	moves := LegalMoves(&pos, board.White)
	// Every empty square along the four rays from 28 is its own destination.
	require.Len(t, moves, 17)
	for _, m := range moves {
		require.False(t, m.IsCapture())
		require.Equal(t, board.Square(28), m.From)
	}
}

func TestKingCaptureOffersEveryLanding(t *testing.T) {
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteKing,
		33: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	got := notations(moves)
	want := []string{"28x39", "28x44", "28x50"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("king capture landings mismatch (-want +got):\n%s", diff)
	}
}

func TestKingCaptureMustContinueWhenPossible(t *testing.T) {
	// Jumping 33 can only land on 39 (44 blocks the rest of the ray), and
	// from there the king must take 44 as well: the short landing alone is
	// not a complete move.
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteKing,
		33: board.BlackMan,
		44: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	if diff := cmp.Diff([]string{"28x39x50"}, notations(moves)); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestCapturedPieceIsNotJumpedTwice(t *testing.T) {
	// A lone king against a lone man on the same diagonal: once the man is
	// jumped it stays on its square and cannot be taken again, so every
	// sequence has exactly one step.
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteKing,
		22: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	for _, m := range moves {
		require.Len(t, m.Steps, 1)
	}
}

func TestManCapturesBackward(t *testing.T) {
	// White men only step north, but 28's jump over 33 heads south.
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteMan,
		33: board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	require.Len(t, moves, 1)
	require.True(t, moves[0].IsCapture())
}

func TestMenOnlyStepForward(t *testing.T) {
	pos := posWith(board.White, map[board.Square]board.Piece{
		28: board.WhiteMan,
	})
	moves := LegalMoves(&pos, board.White)
	got := notations(moves)
	if diff := cmp.Diff([]string{"28-22", "28-23"}, got); diff != "" {
		t.Errorf("white man moves mismatch (-want +got):\n%s", diff)
	}

	pos = posWith(board.Black, map[board.Square]board.Piece{
		28: board.BlackMan,
	})
	moves = LegalMoves(&pos, board.Black)
	got = notations(moves)
	if diff := cmp.Diff([]string{"28-32", "28-33"}, got); diff != "" {
		t.Errorf("black man moves mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiJumpPassingThroughBackRow(t *testing.T) {
	// The sequence 12x3x14 touches the back row mid-jump and must continue
	// through it; the mover stays a man (promotion is checked in Apply, on
	// the final square only).
	pos := posWith(board.White, map[board.Square]board.Piece{
		12: board.WhiteMan,
		8:  board.BlackMan,
		9:  board.BlackMan,
	})
	moves := LegalMoves(&pos, board.White)
	if diff := cmp.Diff([]string{"12x3x14"}, notations(moves)); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}

	after := ApplyToPosition(pos, moves[0])
	require.Equal(t, board.WhiteMan, after.At(14), "passing through the back row must not promote")
}

func TestBlockedSideHasNoMoves(t *testing.T) {
	// A Black man on 46 sits on its own back row with nothing to capture.
	pos := posWith(board.Black, map[board.Square]board.Piece{
		46: board.BlackMan,
		28: board.WhiteMan,
	})
	require.Empty(t, LegalMoves(&pos, board.Black))
}

func TestMoveListOrderIsDeterministic(t *testing.T) {
	pos := board.Initial()
	first := LegalMoves(&pos, board.White)
	second := LegalMoves(&pos, board.White)
	require.Equal(t, len(first), len(second))
	for i := range first {
		require.True(t, first[i].Equal(second[i]))
	}
}
