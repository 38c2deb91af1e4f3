package game

import (
	"errors"
	"fmt"

	"draughts/board"
)

// Phase is the outcome-bearing state of a game. Transitions are monotonic:
// once a game leaves InProgress it never changes again.
type Phase int

const (
	InProgress Phase = iota
	WhiteWins
	BlackWins
	Drawn
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Drawn:
		return "draw"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

var (
	// ErrGameOver rejects move application on a terminal state.
	ErrGameOver = errors.New("game is over")
	// ErrIllegalMove rejects a move missing from the current legal set.
	ErrIllegalMove = errors.New("illegal move")
)

// GameState threads one game from the initial position to its outcome. Apply
// returns a fresh state per move; the zero of everything else is managed by
// NewGame/NewGameFrom.
type GameState struct {
	Position    board.Position
	MoveHistory []board.Move
	Phase       Phase
	DrawReason  DrawReason
	Draw        DrawRuleState
}

// NewGame starts a game from the FMJD initial position.
func NewGame() *GameState {
	return NewGameFrom(board.Initial())
}

// NewGameFrom starts a game from an arbitrary position. The position's own
// hash seeds the repetition history, so returning to it twice more draws.
func NewGameFrom(pos board.Position) *GameState {
	return &GameState{
		Position: pos,
		Draw: DrawRuleState{
			History: []PositionHash{Hash(&pos)},
		},
	}
}

func (gs *GameState) CurrentPlayer() board.Color {
	return gs.Position.ToMove
}

// LegalMoves returns the legal move set for the side to move.
func (gs *GameState) LegalMoves() []board.Move {
	return LegalMoves(&gs.Position, gs.Position.ToMove)
}

// MoveFromNotation resolves a move string against the current legal set.
func (gs *GameState) MoveFromNotation(s string) (board.Move, error) {
	n, err := board.ParseNotation(s)
	if err != nil {
		return board.Move{}, err
	}
	for _, m := range gs.LegalMoves() {
		if n.Matches(m) {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// Apply plays m and returns the resulting state. It fails with ErrGameOver on
// a terminal state and ErrIllegalMove when m is not in the legal set; both
// are expected conditions, not panics. The win check runs before any draw
// accounting: a side leaving its opponent without moves wins immediately.
func (gs *GameState) Apply(m board.Move) (*GameState, error) {
	if gs.Phase != InProgress {
		return nil, ErrGameOver
	}
	legal := false
	for _, lm := range gs.LegalMoves() {
		if lm.Equal(m) {
			legal = true
			break
		}
	}
	if !legal {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}

	mover := gs.Position.ToMove
	next := &GameState{
		Position:    ApplyToPosition(gs.Position, m),
		MoveHistory: append(append([]board.Move(nil), gs.MoveHistory...), m),
		Draw:        gs.Draw.clone(),
	}

	if len(next.LegalMoves()) == 0 {
		if mover == board.White {
			next.Phase = WhiteWins
		} else {
			next.Phase = BlackWins
		}
		return next, nil
	}

	if reason := next.Draw.advance(&next.Position); reason != NoDraw {
		next.Phase = Drawn
		next.DrawReason = reason
	}
	return next, nil
}

// ApplyToPosition plays m on pos and returns the resulting position: the
// mover travels From→To, every jumped piece comes off, the side to move
// flips, and a man promotes only when the move ends on the back row.
func ApplyToPosition(pos board.Position, m board.Move) board.Position {
	pc := pos.At(m.From)
	pos.Set(m.From, board.Empty)
	for _, st := range m.Steps {
		pos.Set(st.Captured, board.Empty)
	}
	if pc.IsMan() && board.PromotionSquare(pc.Color(), m.To) {
		pc = pc.Promoted()
	}
	pos.Set(m.To, pc)
	pos.ToMove = pos.ToMove.Opponent()
	return pos
}
