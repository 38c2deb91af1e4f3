package searcher

import (
	"math"
	"sort"

	"draughts/board"
	"draughts/game"

	"golang.org/x/exp/rand"
)

// winScore is the magnitude of a forced-win leaf. Wins closer to the root
// score higher than distant ones via the ply shading below.
const winScore = 1 << 20

// searchContext is the mutable scratch state of one search call: a board
// buffer driven by make/unmake instead of per-node cloning, the incremental
// hash, and a transient draw tracker. Never shared between searches.
type searchContext struct {
	pos     board.Position
	hash    game.PositionHash
	draw    *drawTracker
	profile Profile
	tt      *transpositionTable
	killers *killerTable
	rng     *rand.Rand
	nodes   int
}

type undoInfo struct {
	move     board.Move
	moved    board.Piece
	hash     game.PositionHash
	captured [20]board.Piece
}

func (c *searchContext) make(m board.Move) undoInfo {
	u := undoInfo{move: m, hash: c.hash}
	pc := c.pos.At(m.From)
	u.moved = pc
	c.pos.Set(m.From, board.Empty)
	c.hash ^= game.PieceKey(pc, m.From)

	for i, st := range m.Steps {
		victim := c.pos.At(st.Captured)
		u.captured[i] = victim
		c.pos.Set(st.Captured, board.Empty)
		c.hash ^= game.PieceKey(victim, st.Captured)
	}

	if pc.IsMan() && board.PromotionSquare(pc.Color(), m.To) {
		pc = pc.Promoted()
	}
	c.pos.Set(m.To, pc)
	c.hash ^= game.PieceKey(pc, m.To)

	c.pos.ToMove = c.pos.ToMove.Opponent()
	c.hash ^= game.SideKey()

	c.draw.push(c.hash, game.CountMaterial(&c.pos))
	return u
}

func (c *searchContext) unmake(u undoInfo) {
	c.draw.pop(c.hash)
	c.pos.ToMove = c.pos.ToMove.Opponent()
	c.pos.Set(u.move.To, board.Empty)
	for i, st := range u.move.Steps {
		c.pos.Set(st.Captured, u.captured[i])
	}
	c.pos.Set(u.move.From, u.moved)
	c.hash = u.hash
}

// childDrawn reports whether the position just reached by make is drawn by
// rule. A side left without moves has lost, and the loss takes precedence
// over any tripped counter, so a moveless child is never scored as a draw.
func (c *searchContext) childDrawn() bool {
	if !c.draw.drawn(c.hash) {
		return false
	}
	return len(game.LegalMoves(&c.pos, c.pos.ToMove)) > 0
}

// searchRoot scores every root move at the given depth with a full window.
// Root children keep exact scores (no sibling pruning) so blunder selection
// can compare them against the best by margin.
func (c *searchContext) searchRoot(moves []board.Move, depth int) []float64 {
	scores := make([]float64, len(moves))
	for i, m := range moves {
		u := c.make(m)
		if c.childDrawn() {
			scores[i] = 0
		} else {
			scores[i] = -c.negamax(depth-1, 1, math.Inf(-1), math.Inf(1))
		}
		c.unmake(u)
	}
	return scores
}

func (c *searchContext) negamax(depth, ply int, alpha, beta float64) float64 {
	c.nodes++
	alphaOrig := alpha

	ttMove := -1
	if c.tt != nil {
		if e, ok := c.tt.probe(c.hash); ok {
			ttMove = int(e.move)
			if int(e.depth) >= depth {
				switch e.flag {
				case flagExact:
					return e.score
				case flagLower:
					if e.score > alpha {
						alpha = e.score
					}
				case flagUpper:
					if e.score < beta {
						beta = e.score
					}
				}
				if alpha >= beta {
					return e.score
				}
			}
		}
	}

	if depth == 0 {
		return c.evaluateLeaf()
	}

	moves := game.LegalMoves(&c.pos, c.pos.ToMove)
	if len(moves) == 0 {
		// Side to move has no moves and loses; nearer losses score worse.
		return -(winScore - float64(ply))
	}

	order := c.orderMoves(moves, ttMove, ply)

	best := math.Inf(-1)
	bestIdx := 0
	for _, idx := range order {
		m := moves[idx]
		u := c.make(m)
		var score float64
		if c.childDrawn() {
			score = 0
		} else {
			score = -c.negamax(depth-1, ply+1, -beta, -alpha)
		}
		c.unmake(u)

		if score > best {
			best = score
			bestIdx = idx
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			if c.killers != nil && !m.IsCapture() {
				c.killers.insert(ply, m)
			}
			break
		}
	}

	if c.tt != nil {
		flag := flagExact
		if best <= alphaOrig {
			flag = flagUpper
		} else if best >= beta {
			flag = flagLower
		}
		c.tt.store(c.hash, depth, flag, bestIdx, best)
	}
	return best
}

func (c *searchContext) evaluateLeaf() float64 {
	score := game.Evaluate(&c.pos, c.profile.EvalFeatureScale)
	if c.profile.NoiseAmplitude > 0 {
		score += (c.rng.Float64()*2 - 1) * c.profile.NoiseAmplitude
	}
	return score
}

// orderMoves returns the visit order for moves: the stored best move first,
// then captures by sequence length, then killers, then a cheap
// material/advancement ranking for the rest.
func (c *searchContext) orderMoves(moves []board.Move, ttMove, ply int) []int {
	order := make([]int, len(moves))
	ranks := make([]float64, len(moves))
	for i, m := range moves {
		order[i] = i
		switch {
		case i == ttMove:
			ranks[i] = 1 << 30
		case m.IsCapture():
			ranks[i] = 1<<20 + float64(len(m.Steps))
		case c.killers != nil && c.killers.isKiller(ply, m):
			ranks[i] = 1 << 10
		default:
			ranks[i] = c.quietRank(m)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ranks[order[a]] > ranks[order[b]]
	})
	return order
}

func (c *searchContext) quietRank(m board.Move) float64 {
	pc := c.pos.At(m.From)
	if pc.IsMan() && board.PromotionSquare(pc.Color(), m.To) {
		return 200
	}
	if pc.IsKing() {
		return 0
	}
	fromRow, _ := board.Coords(m.From)
	toRow, _ := board.Coords(m.To)
	if pc.Color() == board.White {
		return float64(fromRow - toRow)
	}
	return float64(toRow - fromRow)
}
