package dots

import (
	"fmt"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/core"
)

const (
	hudHeight    = 2 // Title/score line plus separator
	footerHeight = 1 // Controls hint
)

// screenColor maps a board color to the platform's screen palette.
func screenColor(c Color) core.Color {
	switch c {
	case Red:
		return core.ColorRed
	case Blue:
		return core.ColorBlue
	case Green:
		return core.ColorGreen
	case Yellow:
		return core.ColorYellow
	default:
		return core.ColorDefault
	}
}

// glyph returns the cell glyph for the configured style.
func (g *Game) glyph(c Color) rune {
	if g.cfg.Render.GlyphStyle == config.GlyphLetters {
		return c.Char()
	}
	return '●'
}

// Render draws the game to the screen.
//
// Board row y appears on screen row offsetY + (Size-1-y), so the top screen
// row shows the refill edge. Each cell occupies cellWidth columns with the
// glyph in the middle and marker brackets on the sides:
//
//	[●]  cursor
//	<●>  trail head (click again to complete)
//	(●)  trail member
//	·●·  connectable from the head (if hints are enabled)
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	for y := 0; y < Size; y++ {
		sy := g.offsetY + (Size - 1 - y)
		for x := 0; x < Size; x++ {
			sx := g.offsetX + x*g.cellWidth
			mid := sx + g.cellWidth/2

			c := g.session.ColorAt(x, y)
			dst.SetColored(mid, sy, g.glyph(c), screenColor(c))

			left, right := g.markers(x, y)
			if left != ' ' {
				dst.Set(mid-1, sy, left)
				dst.Set(mid+1, sy, right)
			}
		}
	}

	g.renderFooter(dst)

	if g.session.IsTerminal() {
		g.renderOverlay(dst, "Out of moves!",
			fmt.Sprintf("Score: %d — press R to restart", g.session.Score()))
	}
}

// markers returns the bracket pair drawn around the cell at (x, y).
// Cursor takes precedence over trail markers so the selection stays visible
// while walking along the trail.
func (g *Game) markers(x, y int) (rune, rune) {
	switch {
	case g.cursor.X == x && g.cursor.Y == y:
		return '[', ']'
	case g.session.IsTrailHead(x, y):
		return '<', '>'
	case g.session.TrailContains(x, y):
		return '(', ')'
	case g.cfg.Render.ShowHints && g.session.TrailLen() > 0 && g.session.CanConnect(x, y):
		return '·', '·'
	default:
		return ' ', ' '
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Dots — Score: %d  Moves: %d/%d  Trail: %d",
		g.session.Score(), g.session.MovesLeft(), MoveLimit, g.session.TrailLen())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderFooter draws the controls hint below the board.
func (g *Game) renderFooter(dst *core.Screen) {
	dst.DrawTextCentered(g.offsetY+Size, "arrows/wasd move · enter select · click cells · q quit")
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
