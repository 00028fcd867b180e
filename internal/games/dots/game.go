package dots

import (
	"math/rand"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
	"github.com/vovakirdan/tui-dots/internal/registry"
)

// Game adapts a Session to the platform's game interface. It owns the
// presentation state the pure Session has no business knowing about: the
// selection cursor, the screen layout and the render config.
type Game struct {
	session *Session
	rng     *rand.Rand
	cfg     config.DotsConfig

	// cursor is the currently selected board cell, in board coordinates.
	cursor Point

	// Screen layout, recomputed on Reset.
	screenW   int
	screenH   int
	cellWidth int
	offsetX   int
	offsetY   int
	tooSmall  bool
}

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new dots game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dots", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "dots"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Dots"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	renderCfg, err := config.LoadDots(configPath)
	if err != nil {
		renderCfg = config.DefaultDotsConfig()
	}
	g.cfg = renderCfg

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.session == nil {
		g.session = NewSession(g.rng)
	} else {
		g.session.rng = g.rng
		g.session.Reset()
	}
	g.cursor = Point{X: Size / 2, Y: Size / 2}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
}

// Resize adapts the layout to a new screen size. The board and the game
// progress are untouched; only the centering and the too-small flag change.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
}

// layout centers the board on the screen and flags screens that cannot fit it.
func (g *Game) layout() {
	g.cellWidth = g.cfg.Render.CellWidth

	boardW := Size * g.cellWidth
	boardH := Size
	requiredW := boardW + 2
	requiredH := boardH + hudHeight + footerHeight
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.offsetX = (g.screenW - boardW) / 2
	g.offsetY = hudHeight
}

// pointerToCell translates a screen coordinate to a board cell.
// Returns false if the pointer is outside the board.
func (g *Game) pointerToCell(px, py int) (Point, bool) {
	if g.tooSmall {
		return Point{}, false
	}
	col := px - g.offsetX
	row := py - g.offsetY
	if col < 0 || row < 0 {
		return Point{}, false
	}
	x := col / g.cellWidth
	// Screen rows run top-down, board rows bottom-up.
	y := Size - 1 - row
	if x >= Size || y < 0 || y >= Size {
		return Point{}, false
	}
	return Point{X: x, Y: y}, true
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.session.IsTerminal() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Cursor movement. Up on screen means a higher board row.
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Y = core.Clamp(g.cursor.Y+1, 0, Size-1)
	case input.Has(core.ActionDown):
		g.cursor.Y = core.Clamp(g.cursor.Y-1, 0, Size-1)
	case input.Has(core.ActionLeft):
		g.cursor.X = core.Clamp(g.cursor.X-1, 0, Size-1)
	case input.Has(core.ActionRight):
		g.cursor.X = core.Clamp(g.cursor.X+1, 0, Size-1)
	}

	if input.Pointer != nil {
		if cell, ok := g.pointerToCell(input.Pointer.X, input.Pointer.Y); ok {
			g.cursor = cell
			g.session.Click(cell.X, cell.Y)
			return core.StepResult{State: g.State()}
		}
	}

	if input.Has(core.ActionConfirm) {
		g.session.Click(g.cursor.X, g.cursor.Y)
	}

	return core.StepResult{State: g.State()}
}

// Session exposes the underlying rules engine, mainly for tests and snapshots.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.IsTerminal(),
	}
}
