package game

import (
	"draughts/board"

	"golang.org/x/exp/rand"
)

// PositionHash is a Zobrist-style fingerprint of a position plus the side to
// move. It is deterministic and stable within a process; collisions are
// accepted as a rare, non-fatal risk at the table sizes used.
type PositionHash uint32

var (
	pieceKeys [board.NumSquares + 1][5]PositionHash
	sideKey   PositionHash
)

// The key tables are built once from a fixed seed so hashes are reproducible
// across runs of the same build.
func init() {
	rng := rand.New(rand.NewSource(0x64726175))
	for sq := 1; sq <= board.NumSquares; sq++ {
		for pc := board.WhiteMan; pc <= board.BlackKing; pc++ {
			pieceKeys[sq][pc] = PositionHash(rng.Uint32())
		}
	}
	sideKey = PositionHash(rng.Uint32())
}

// Hash computes the full fingerprint: XOR of one key per occupied
// (square, piece) pair, with the side key mixed in when Black is to move.
func Hash(pos *board.Position) PositionHash {
	var h PositionHash
	for sq := board.Square(1); sq <= board.NumSquares; sq++ {
		if pc := pos.At(sq); !pc.IsEmpty() {
			h ^= pieceKeys[sq][pc]
		}
	}
	if pos.ToMove == board.Black {
		h ^= sideKey
	}
	return h
}

// PieceKey returns the XOR key for pc standing on sq, for callers that
// maintain the hash incrementally while making and unmaking moves.
func PieceKey(pc board.Piece, sq board.Square) PositionHash {
	if pc.IsEmpty() {
		panic("game: piece key for empty square")
	}
	return pieceKeys[sq][pc]
}

// SideKey returns the side-to-move XOR key.
func SideKey() PositionHash {
	return sideKey
}
