// Package assets loads the sprites drawn by the terminal and window
// frontends. Nothing here is required to play: every kind that fails to
// load is drawn with its fallback color instead.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
)

// SheetFile is the file name looked up in a sprite override directory.
const SheetFile = "sprites.yaml"

//go:embed defaults/sprites.yaml
var defaultSheet []byte

// sheetFile is the YAML layout of a sprite sheet.
type sheetFile struct {
	Sprites map[string]sheetEntry `yaml:"sprites"`
}

type sheetEntry struct {
	Color string   `yaml:"color"`
	Bg    string   `yaml:"bg"`
	Rows  []string `yaml:"rows"`
}

// Sheet holds ASCII-art sprites keyed by sprite kind.
type Sheet struct {
	glyphs map[crossing.SpriteKind]crossing.Glyphs
}

// DefaultSheet returns the embedded sprite sheet.
func DefaultSheet() *Sheet {
	sheet, err := ParseSheet(defaultSheet)
	if err != nil {
		panic(err)
	}
	return sheet
}

// ParseSheet parses a YAML sprite sheet.
func ParseSheet(data []byte) (*Sheet, error) {
	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("assets: parse sprite sheet: %w", err)
	}

	sheet := &Sheet{glyphs: make(map[crossing.SpriteKind]crossing.Glyphs, len(file.Sprites))}
	for key, entry := range file.Sprites {
		kind, ok := crossing.ParseSpriteKind(key)
		if !ok {
			return nil, fmt.Errorf("assets: unknown sprite %q", key)
		}
		g, err := entry.glyphs()
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", key, err)
		}
		sheet.glyphs[kind] = g
	}
	return sheet, nil
}

func (e sheetEntry) glyphs() (crossing.Glyphs, error) {
	if len(e.Rows) == 0 {
		return crossing.Glyphs{}, errors.New("no rows")
	}
	fg, ok := core.ParseColor(e.Color)
	if !ok {
		return crossing.Glyphs{}, fmt.Errorf("unknown color %q", e.Color)
	}
	bg, ok := core.ParseColor(e.Bg)
	if !ok {
		return crossing.Glyphs{}, fmt.Errorf("unknown background %q", e.Bg)
	}
	return crossing.Glyphs{Rows: e.Rows, Color: fg, Bg: bg}, nil
}

// LoadSheet returns the embedded sheet with the sprites found in
// dir/sprites.yaml laid over it. An empty dir or a directory without a
// sheet yields the embedded sheet alone.
func LoadSheet(dir string) (*Sheet, error) {
	sheet := DefaultSheet()
	if dir == "" {
		return sheet, nil
	}

	data, err := os.ReadFile(filepath.Join(dir, SheetFile))
	if errors.Is(err, fs.ErrNotExist) {
		return sheet, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read sprite sheet: %w", err)
	}

	override, err := ParseSheet(data)
	if err != nil {
		return nil, err
	}
	for kind, g := range override.glyphs {
		sheet.glyphs[kind] = g
	}
	return sheet, nil
}

// Glyphs returns the sprite for kind. It implements crossing.SpriteSource.
func (s *Sheet) Glyphs(kind crossing.SpriteKind) (crossing.Glyphs, bool) {
	if s == nil {
		return crossing.Glyphs{}, false
	}
	g, ok := s.glyphs[kind]
	return g, ok
}

// Len returns the number of sprites in the sheet.
func (s *Sheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.glyphs)
}
