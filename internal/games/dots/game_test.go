package dots

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dots/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 80,
		ScreenH: 24,
	}
}

func TestGameDeterministicReset(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(12345))
	g2 := New()
	g2.Reset(testConfig(12345))

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1.Board != snap2.Board {
		t.Errorf("same seed produced different boards:\n%s\n---\n%s", snap1.Board, snap2.Board)
	}
	if snap1.State != StatePlaying {
		t.Errorf("fresh game state = %s, want %s", snap1.State, StatePlaying)
	}
}

func TestCursorMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	start := g.cursor
	input := core.NewInputFrame()

	input.Set(core.ActionUp)
	g.Step(input)
	if g.cursor.Y != start.Y+1 {
		t.Errorf("up moved cursor to y=%d, want %d", g.cursor.Y, start.Y+1)
	}

	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.cursor.X != start.X-1 {
		t.Errorf("left moved cursor to x=%d, want %d", g.cursor.X, start.X-1)
	}

	// Cursor clamps at the board edge.
	input.Clear()
	input.Set(core.ActionUp)
	for i := 0; i < Size+2; i++ {
		g.Step(input)
	}
	if g.cursor.Y != Size-1 {
		t.Errorf("cursor escaped the top edge: y=%d", g.cursor.Y)
	}
}

func TestConfirmClicksCellUnderCursor(t *testing.T) {
	g := New()
	g.Reset(testConfig(2))

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.session.TrailLen() != 1 {
		t.Errorf("confirm did not start a trail, len = %d", g.session.TrailLen())
	}
	if !g.session.TrailContains(g.cursor.X, g.cursor.Y) {
		t.Error("trail does not contain the cursor cell")
	}
}

func TestPointerClickMovesCursorAndClicks(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	// Target the bottom-left board cell. Board row 0 is drawn on the last
	// board screen row, so the pointer row is offsetY + Size - 1.
	px := g.offsetX
	py := g.offsetY + Size - 1

	input := core.NewInputFrame()
	input.SetPointer(px, py)
	g.Step(input)

	if g.cursor != (Point{X: 0, Y: 0}) {
		t.Errorf("cursor = %+v, want {0 0}", g.cursor)
	}
	if !g.session.TrailContains(0, 0) {
		t.Error("pointer click did not start a trail at (0,0)")
	}
}

func TestPointerOutsideBoardIsIgnored(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))
	before := g.cursor

	input := core.NewInputFrame()
	input.SetPointer(0, 0) // HUD area, outside the board
	g.Step(input)

	if g.cursor != before {
		t.Errorf("cursor moved to %+v on an out-of-board click", g.cursor)
	}
	if g.session.TrailLen() != 0 {
		t.Error("out-of-board click started a trail")
	}
}

func TestRestartOnlyWhenTerminal(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	board := g.Snapshot().Board

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)
	if g.Snapshot().Board != board {
		t.Error("restart acted on a game still in progress")
	}

	g.session.movesLeft = 0
	g.Step(input)
	if g.session.MovesLeft() != MoveLimit {
		t.Errorf("restart on terminal game left moves = %d, want %d",
			g.session.MovesLeft(), MoveLimit)
	}
}

func TestTooSmallScreenBlocksInput(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 6, ScreenW: 10, ScreenH: 5})

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Fatalf("state = %s, want %s", snap.State, StatePausedSmall)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.session.TrailLen() != 0 {
		t.Error("input processed while the window is too small")
	}
}

func TestRenderShowsHUDAndBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Moves: 30/30") {
		t.Errorf("HUD missing score or moves: %q", hud)
	}

	// The cursor marker must be visible on the cursor's screen row.
	cursorRow := g.offsetY + (Size - 1 - g.cursor.Y)
	row := screen.Row(cursorRow)
	if !strings.Contains(row, "[") || !strings.Contains(row, "]") {
		t.Errorf("cursor markers missing from row %d: %q", cursorRow, row)
	}
}

func TestGameStateReflectsSession(t *testing.T) {
	g := New()
	g.Reset(testConfig(8))

	if st := g.State(); st.GameOver || st.Score != 0 {
		t.Errorf("fresh game state = %+v", st)
	}

	g.session.movesLeft = 0
	g.session.score = 17
	if st := g.State(); !st.GameOver || st.Score != 17 {
		t.Errorf("terminal game state = %+v", st)
	}
}
