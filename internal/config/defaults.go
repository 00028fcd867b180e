package config

import (
	_ "embed"
)

//go:embed defaults/dots.yaml
var defaultDotsYAML []byte

// DefaultDotsConfig returns the default dots configuration.
func DefaultDotsConfig() DotsConfig {
	return DotsConfig{
		Render: DotsRender{
			GlyphStyle: GlyphDots,
			CellWidth:  3,
			ShowHints:  true,
		},
	}
}
