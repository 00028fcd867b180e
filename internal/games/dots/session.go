// Package dots implements the connect-the-dots puzzle: draw a trail of
// same-colored adjacent cells, close it into a loop for a whole-board color
// wipe, and watch the cleared columns refill from above. The Session type is
// pure, deterministic given its RNG, and UI-agnostic; the Game type in this
// package adapts it to the platform.
package dots

import (
	"math/rand"

	"github.com/vovakirdan/tui-dots/internal/core"
)

// Size is the length of a side of the board.
const Size = 10

// MoveLimit is the number of completed trails allowed in a single game.
const MoveLimit = 30

// rerollAttempts caps the anti-trivial-match redraws per refilled cell.
// A degenerate draw on the last attempt is accepted as-is.
const rerollAttempts = 3

// Point is a board coordinate. X increases to the right, Y increases upward:
// row 0 is the bottom row, so refills enter at Y = Size-1 and dots fall
// toward Y = 0.
type Point struct {
	X, Y int
}

// Session is the full mutable game state: grid, trail, score and moves
// remaining. All operations are synchronous and run to completion; a host
// embedding a Session in a concurrent program must serialize access itself.
type Session struct {
	cells     [Size * Size]Color
	trail     []Point
	score     int
	movesLeft int
	rng       *rand.Rand
}

// NewSession creates a session with a freshly randomized board.
func NewSession(rng *rand.Rand) *Session {
	s := &Session{rng: rng}
	s.Reset()
	return s
}

// Index converts board coordinates to the linear cell index.
// Callers must pass coordinates in [0, Size); anything else is a bug in the
// caller and panics via the slice bounds check.
func Index(x, y int) int {
	return y*Size + x
}

// ColorAt returns the color of the cell at (x, y).
func (s *Session) ColorAt(x, y int) Color {
	return s.cells[Index(x, y)]
}

// Score returns the total number of cells cleared so far.
func (s *Session) Score() int {
	return s.score
}

// MovesLeft returns the number of trail completions remaining.
func (s *Session) MovesLeft() int {
	return s.movesLeft
}

// IsTerminal reports whether the move budget is exhausted.
// Clicks on a terminal session are no-ops.
func (s *Session) IsTerminal() bool {
	return s.movesLeft == 0
}

// TrailLen returns the current trail length.
func (s *Session) TrailLen() int {
	return len(s.trail)
}

// TrailContains reports whether (x, y) is part of the current trail.
func (s *Session) TrailContains(x, y int) bool {
	for _, p := range s.trail {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// IsTrailHead reports whether (x, y) is the last cell appended to the trail.
func (s *Session) IsTrailHead(x, y int) bool {
	if len(s.trail) == 0 {
		return false
	}
	head := s.trail[len(s.trail)-1]
	return head.X == x && head.Y == y
}

// CanConnect reports whether the trail can be extended to (x, y).
// An empty trail accepts any cell. Otherwise the cell must be orthogonally
// adjacent to the trail head, must not be the cell the trail just came from
// (no trivial back-and-forth), and must match the head's color. Revisiting
// an earlier cell through a different path is allowed; that is how loops
// are formed.
func (s *Session) CanConnect(x, y int) bool {
	if len(s.trail) == 0 {
		return true
	}
	head := s.trail[len(s.trail)-1]
	if core.Abs(x-head.X)+core.Abs(y-head.Y) != 1 {
		return false
	}
	if len(s.trail) >= 2 && s.trail[len(s.trail)-2] == (Point{X: x, Y: y}) {
		return false
	}
	return s.ColorAt(head.X, head.Y) == s.ColorAt(x, y)
}

// HasLoop reports whether any coordinate occurs more than once in the trail.
// Any repeat counts, not just a closed contiguous cycle.
func (s *Session) HasLoop() bool {
	for i, p := range s.trail {
		for _, q := range s.trail[i+1:] {
			if p == q {
				return true
			}
		}
	}
	return false
}

// FinishTrail resolves the current trail and returns the number of cells
// cleared. A trail shorter than two cells is a no-op returning 0. If the
// trail contains a loop, every cell on the board matching the trail's color
// is cleared; otherwise only the traversed cells are, counting once per
// trail entry. The trail is then discarded and the board compacted and
// refilled, so the returned board never contains an Empty cell.
func (s *Session) FinishTrail() int {
	if len(s.trail) < 2 {
		return 0
	}

	count := 0
	trailColor := s.ColorAt(s.trail[0].X, s.trail[0].Y)

	if s.HasLoop() {
		// A loop clears the whole board of the trail's color.
		for i, c := range s.cells {
			if c == trailColor {
				s.cells[i] = Empty
				count++
			}
		}
	} else {
		for _, p := range s.trail {
			s.cells[Index(p.X, p.Y)] = Empty
			count++
		}
	}

	s.trail = s.trail[:0]
	s.dropRemaining()
	return count
}

// dropRemaining removes Empty cells by bubbling them to the top of each
// column and refilling the vacated run with fresh colors. Columns are
// independent; a column's refill never reads or writes its neighbors'
// cells outside the reroll checks in fillColumn.
func (s *Session) dropRemaining() {
	for x := 0; x < Size; x++ {
		for {
			// One bottom-to-top pass: swap each Empty cell with the one
			// above it. Repeated passes float all empties to the top.
			for y := 0; y < Size-1; y++ {
				if s.cells[Index(x, y)] == Empty {
					i, j := Index(x, y), Index(x, y+1)
					s.cells[i], s.cells[j] = s.cells[j], s.cells[i]
				}
			}
			if s.fillColumn(x) {
				break
			}
		}
	}
}

// fillColumn fills the run of Empty cells at the top of column x with fresh
// random colors. Returns false without filling if an Empty cell still sits
// below a non-Empty one, meaning the caller must run another compaction
// pass first.
//
// Each newly placed color is checked against its already-settled neighbors
// to avoid handing the player a ready-made match:
//
//	1S5
//	234
//
// where S is the new cell. If S==1==2==3 or S==5==4==3 the color is redrawn,
// up to rerollAttempts times. The bottom row is never checked since it has
// no settled row below it.
func (s *Session) fillColumn(x int) bool {
	firstEmpty := Size
	seenNonEmpty := false
	for y := Size - 1; y >= 0; y-- {
		switch {
		case s.cells[Index(x, y)] == Empty && !seenNonEmpty:
			firstEmpty = y
		case s.cells[Index(x, y)] == Empty:
			return false
		default:
			seenNonEmpty = true
		}
	}

	for y := firstEmpty; y < Size; y++ {
		s.cells[Index(x, y)] = RandomColor(s.rng)
		if y == 0 {
			continue
		}

		for roll := 0; roll < rerollAttempts; roll++ {
			rollAgain := false
			i3 := Index(x, y-1)
			if x > 1 {
				i1 := Index(x-1, y)
				i2 := Index(x-1, y-1)
				rollAgain = s.cells[i1] == s.cells[Index(x, y)] &&
					s.cells[i1] == s.cells[i2] &&
					s.cells[i1] == s.cells[i3]
			}
			if x < Size-1 {
				i4 := Index(x+1, y-1)
				i5 := Index(x+1, y)
				rollAgain = rollAgain || (s.cells[i3] == s.cells[Index(x, y)] &&
					s.cells[i3] == s.cells[i4] &&
					s.cells[i3] == s.cells[i5])
			}
			if rollAgain {
				s.cells[Index(x, y)] = RandomColor(s.rng)
			}
		}
	}

	return true
}

// Click processes a cell selection at (x, y).
//
// With an empty trail the click always starts a new trail. Otherwise:
// clicking the trail head with at least two cells in the trail completes it
// (resolve, add to score, spend a move); a connectable cell extends the
// trail; anything else cancels the trail outright. Cancellation is a normal
// state transition, not an error. On a terminal session Click does nothing.
func (s *Session) Click(x, y int) {
	if s.movesLeft == 0 {
		return
	}

	if len(s.trail) == 0 {
		s.trail = append(s.trail, Point{X: x, Y: y})
		return
	}

	head := s.trail[len(s.trail)-1]
	switch {
	case len(s.trail) >= 2 && head.X == x && head.Y == y:
		s.score += s.FinishTrail()
		s.movesLeft--
	case s.CanConnect(x, y):
		s.trail = append(s.trail, Point{X: x, Y: y})
	default:
		s.trail = s.trail[:0]
	}
}

// Reset re-randomizes the board, clears the trail and score, and restores
// the move budget. Usable from any state, including terminal.
func (s *Session) Reset() {
	for i := range s.cells {
		s.cells[i] = RandomColor(s.rng)
	}
	s.score = 0
	s.trail = s.trail[:0]
	s.movesLeft = MoveLimit
}
