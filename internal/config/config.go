// Package config provides YAML-based configuration loading for the dots
// platform. Configuration covers presentation only: board size, color count
// and the move budget are compile-time constants of the game rules.
package config

// DotsConfig contains all configuration for the dots game.
type DotsConfig struct {
	Render DotsRender `yaml:"render"`
}

// DotsRender defines how the board is drawn.
type DotsRender struct {
	// GlyphStyle selects the cell glyph set: "dots" (●) or "letters" (R/G/B/Y).
	GlyphStyle string `yaml:"glyph_style"`
	// CellWidth is the number of screen columns per board cell, minimum 3
	// (one glyph plus room for trail/cursor markers).
	CellWidth int `yaml:"cell_width"`
	// ShowHints highlights cells the current trail can extend to.
	ShowHints bool `yaml:"show_hints"`
}

// GlyphStyle values.
const (
	GlyphDots    = "dots"
	GlyphLetters = "letters"
)

// Normalize clamps out-of-range values back to usable defaults.
func (c *DotsConfig) Normalize() {
	if c.Render.GlyphStyle != GlyphDots && c.Render.GlyphStyle != GlyphLetters {
		c.Render.GlyphStyle = GlyphDots
	}
	if c.Render.CellWidth < 3 {
		c.Render.CellWidth = 3
	}
}
