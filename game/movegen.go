package game

import "draughts/board"

// LegalMoves returns every legal move for side in pos under FMJD rules.
// Captures are mandatory: when any capture sequence exists the list holds
// capture sequences only, filtered down to the maximum step count across all
// of the side's pieces. Callers must not rely on list order for correctness,
// but the order is deterministic within a process.
func LegalMoves(pos *board.Position, side board.Color) []board.Move {
	captures := captureMoves(pos, side)
	if len(captures) > 0 {
		return longestOnly(captures)
	}
	return quietMoves(pos, side)
}

func quietMoves(pos *board.Position, side board.Color) []board.Move {
	var moves []board.Move
	for sq := board.Square(1); sq <= board.NumSquares; sq++ {
		pc := pos.At(sq)
		if pc.IsEmpty() || pc.Color() != side {
			continue
		}
		if pc.IsKing() {
			// Flying king: every empty square along each diagonal until the
			// first occupied square is a separate destination.
			for _, d := range board.Directions {
				for _, to := range board.Ray(sq, d) {
					if !pos.At(to).IsEmpty() {
						break
					}
					moves = append(moves, board.QuietMove(sq, to))
				}
			}
			continue
		}
		for _, d := range board.Forward(side) {
			to := board.Neighbor(sq, d)
			if to != 0 && pos.At(to).IsEmpty() {
				moves = append(moves, board.QuietMove(sq, to))
			}
		}
	}
	return moves
}

func captureMoves(pos *board.Position, side board.Color) []board.Move {
	var out []board.Move
	for sq := board.Square(1); sq <= board.NumSquares; sq++ {
		pc := pos.At(sq)
		if pc.IsEmpty() || pc.Color() != side {
			continue
		}
		// The mover leaves its origin square for the whole sequence, so a
		// sequence may legally land back on it.
		scratch := *pos
		scratch.Set(sq, board.Empty)
		cs := captureSearch{pos: &scratch, mover: pc}
		cs.extend(sq)
		out = append(out, cs.out...)
	}
	return out
}

// captureSearch expands the tree of capture continuations for one piece.
// Jumped pieces stay on the scratch board so they keep blocking traversal;
// the captured bitmask excludes them from being jumped twice.
type captureSearch struct {
	pos      *board.Position
	mover    board.Piece
	captured uint64
	steps    []board.CaptureStep
	out      []board.Move
}

func (cs *captureSearch) extend(from board.Square) {
	continued := false
	if cs.mover.IsKing() {
		for _, d := range board.Directions {
			ray := board.Ray(from, d)
			for i, over := range ray {
				pc := cs.pos.At(over)
				if pc.IsEmpty() {
					continue
				}
				if pc.Color() == cs.mover.Color() || cs.isCaptured(over) {
					break
				}
				// Every empty square beyond the jumped piece is a distinct
				// landing, and each may branch into further captures.
				for _, land := range ray[i+1:] {
					if !cs.pos.At(land).IsEmpty() {
						break
					}
					continued = true
					cs.jump(from, land, over)
				}
				break
			}
		}
	} else {
		// Men jump adjacent enemies in all four directions, forward or back.
		for _, d := range board.Directions {
			over := board.Neighbor(from, d)
			if over == 0 {
				continue
			}
			pc := cs.pos.At(over)
			if pc.IsEmpty() || pc.Color() == cs.mover.Color() || cs.isCaptured(over) {
				continue
			}
			land := board.Neighbor(over, d)
			if land == 0 || !cs.pos.At(land).IsEmpty() {
				continue
			}
			continued = true
			cs.jump(from, land, over)
		}
	}

	// Only a sequence with no continuation anywhere is complete: stopping
	// mid-chain while another jump is available is never legal.
	if !continued && len(cs.steps) > 0 {
		seq := make([]board.CaptureStep, len(cs.steps))
		copy(seq, cs.steps)
		cs.out = append(cs.out, board.CaptureMove(seq))
	}
}

func (cs *captureSearch) jump(from, land, over board.Square) {
	cs.steps = append(cs.steps, board.CaptureStep{From: from, To: land, Captured: over})
	cs.captured |= 1 << uint(over)
	cs.extend(land)
	cs.captured &^= 1 << uint(over)
	cs.steps = cs.steps[:len(cs.steps)-1]
}

func (cs *captureSearch) isCaptured(sq board.Square) bool {
	return cs.captured&(1<<uint(sq)) != 0
}

// longestOnly applies the maximum capture rule: it is a global filter across
// all candidate sequences of the side to move, not per piece.
func longestOnly(captures []board.Move) []board.Move {
	longest := 0
	for _, m := range captures {
		if len(m.Steps) > longest {
			longest = len(m.Steps)
		}
	}
	filtered := captures[:0]
	for _, m := range captures {
		if len(m.Steps) == longest {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
