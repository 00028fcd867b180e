package dots

import (
	"math/rand"
)

// Color is the color of a single board cell.
// Empty is a sentinel for a cleared, not-yet-refilled cell; random draws
// never produce it because they pick from the playable set only.
type Color uint8

const (
	Red Color = iota
	Blue
	Green
	Yellow
	Empty
)

// playable is the closed set of colors a random draw can produce.
var playable = [...]Color{Red, Blue, Green, Yellow}

// RandomColor uniformly selects one of the playable colors.
func RandomColor(rng *rand.Rand) Color {
	return playable[rng.Intn(len(playable))]
}

// String returns the string representation of a color.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// Char returns a single character representation for ASCII rendering
// and board snapshots.
func (c Color) Char() rune {
	switch c {
	case Red:
		return 'R'
	case Blue:
		return 'B'
	case Green:
		return 'G'
	case Yellow:
		return 'Y'
	case Empty:
		return '.'
	default:
		return '?'
	}
}
