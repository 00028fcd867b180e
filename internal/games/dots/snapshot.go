package dots

import "strings"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Score     int
	MovesLeft int
	TrailLen  int
	CursorX   int
	CursorY   int
	Board     string // Size rows of Size chars, top row first
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.session.IsTerminal():
		state = StateGameOver
	}

	return Snapshot{
		Score:     g.session.Score(),
		MovesLeft: g.session.MovesLeft(),
		TrailLen:  g.session.TrailLen(),
		CursorX:   g.cursor.X,
		CursorY:   g.cursor.Y,
		Board:     g.session.BoardString(),
		State:     state,
	}
}

// BoardString renders the grid as Size newline-separated rows of color
// characters, top row (y = Size-1) first. Useful in tests and replays.
func (s *Session) BoardString() string {
	var b strings.Builder
	b.Grow(Size*Size + Size)
	for y := Size - 1; y >= 0; y-- {
		if y < Size-1 {
			b.WriteRune('\n')
		}
		for x := 0; x < Size; x++ {
			b.WriteRune(s.ColorAt(x, y).Char())
		}
	}
	return b.String()
}
