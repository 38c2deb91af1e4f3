package game

import "draughts/board"

// Evaluation weights. Scores are in hundredths of a man, from the side to
// move's perspective.
const (
	manValue  = 100.0
	kingValue = 300.0

	// Kings dominate open boards; their value grows once few pieces remain.
	endgamePieceCount = 8
	endgameKingFactor = 1.3

	mobilityWeight  = 2.0
	structureWeight = 4.0
	firstKingBonus  = 50.0
	lockedPenalty   = 10.0
	runawayBonus    = 40.0
	tempoWeight     = 1.5
	balanceWeight   = 3.0
)

type sideScore struct {
	material   float64
	positional float64
	hasKing    bool
	left       int
	right      int
}

// Evaluate statically scores pos for its side to move: material difference
// plus positional terms scaled by featureScale (0 keeps material only,
// 1 applies full positional weight).
func Evaluate(pos *board.Position, featureScale float64) float64 {
	mat := CountMaterial(pos)
	endgame := mat.total() <= endgamePieceCount

	var white, black sideScore
	for sq := board.Square(1); sq <= board.NumSquares; sq++ {
		pc := pos.At(sq)
		if pc.IsEmpty() {
			continue
		}
		side := &white
		if pc.Color() == board.Black {
			side = &black
		}
		scorePiece(pos, sq, pc, endgame, side)
	}

	white.positional += balanceTerm(white)
	black.positional += balanceTerm(black)
	if white.hasKing && !black.hasKing {
		white.positional += firstKingBonus
	}
	if black.hasKing && !white.hasKing {
		black.positional += firstKingBonus
	}

	score := (white.material - black.material) +
		featureScale*(white.positional-black.positional)
	if pos.ToMove == board.Black {
		return -score
	}
	return score
}

func scorePiece(pos *board.Position, sq board.Square, pc board.Piece, endgame bool, side *sideScore) {
	if pc.IsKing() {
		side.hasKing = true
		v := kingValue
		if endgame {
			v *= endgameKingFactor
		}
		side.material += v
	} else {
		side.material += manValue
	}

	row, col := board.Coords(sq)
	if col < 5 {
		side.left++
	} else {
		side.right++
	}

	friendly := 0
	blockedAll := true
	for _, d := range board.Directions {
		n := board.Neighbor(sq, d)
		if n == 0 {
			continue
		}
		other := pos.At(n)
		if other.IsEmpty() {
			blockedAll = false
		} else if other.Color() == pc.Color() {
			friendly++
		}
	}
	side.positional += structureWeight * float64(friendly)
	if blockedAll {
		side.positional -= lockedPenalty
	}

	if pc.IsKing() {
		mobility := 0
		for _, d := range board.Directions {
			for _, to := range board.Ray(sq, d) {
				if !pos.At(to).IsEmpty() {
					break
				}
				mobility++
			}
		}
		side.positional += mobilityWeight * float64(mobility)
		return
	}

	mobility := 0
	for _, d := range board.Forward(pc.Color()) {
		if to := board.Neighbor(sq, d); to != 0 && pos.At(to).IsEmpty() {
			mobility++
		}
	}
	side.positional += mobilityWeight * float64(mobility)

	// Tempo: rows already advanced toward promotion.
	advanced := row
	rowsToGo := 9 - row
	if pc.Color() == board.White {
		advanced = 9 - row
		rowsToGo = row
	}
	side.positional += tempoWeight * float64(advanced)

	if rowsToGo > 0 && rowsToGo <= 4 && runawayMan(pos, sq, pc.Color()) {
		side.positional += runawayBonus
	}
}

// runawayMan reports whether a man has a fully open straight diagonal to the
// back row. A coarse filter: it ignores defenders that could still cut the
// path from the side.
func runawayMan(pos *board.Position, sq board.Square, c board.Color) bool {
	for _, d := range board.Forward(c) {
		open := true
		reached := false
		for _, to := range board.Ray(sq, d) {
			if !pos.At(to).IsEmpty() {
				open = false
				break
			}
			if board.PromotionSquare(c, to) {
				reached = true
				break
			}
		}
		if open && reached {
			return true
		}
	}
	return false
}

func balanceTerm(s sideScore) float64 {
	diff := s.left - s.right
	if diff < 0 {
		diff = -diff
	}
	return -balanceWeight * float64(diff)
}
