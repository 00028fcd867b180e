package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadDots("")
	if err != nil {
		t.Fatalf("LoadDots(\"\") failed: %v", err)
	}

	def := DefaultDotsConfig()
	if cfg.Render.GlyphStyle != def.Render.GlyphStyle {
		t.Errorf("glyph_style = %q, want %q", cfg.Render.GlyphStyle, def.Render.GlyphStyle)
	}
	if cfg.Render.CellWidth != def.Render.CellWidth {
		t.Errorf("cell_width = %d, want %d", cfg.Render.CellWidth, def.Render.CellWidth)
	}
	if cfg.Render.ShowHints != def.Render.ShowHints {
		t.Errorf("show_hints = %v, want %v", cfg.Render.ShowHints, def.Render.ShowHints)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("render:\n  glyph_style: letters\n  cell_width: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDots(path)
	if err != nil {
		t.Fatalf("LoadDots(%q) failed: %v", path, err)
	}
	if cfg.Render.GlyphStyle != GlyphLetters {
		t.Errorf("glyph_style = %q, want letters", cfg.Render.GlyphStyle)
	}
	if cfg.Render.CellWidth != 5 {
		t.Errorf("cell_width = %d, want 5", cfg.Render.CellWidth)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := LoadDots("/nonexistent/dots.yaml"); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestNormalizeClampsValues(t *testing.T) {
	cfg := DotsConfig{
		Render: DotsRender{GlyphStyle: "emoji", CellWidth: 1},
	}
	cfg.Normalize()

	if cfg.Render.GlyphStyle != GlyphDots {
		t.Errorf("unknown glyph style should normalize to dots, got %q", cfg.Render.GlyphStyle)
	}
	if cfg.Render.CellWidth != 3 {
		t.Errorf("cell_width should clamp to 3, got %d", cfg.Render.CellWidth)
	}
}
