package crossing

import (
	"image/color"

	"github.com/vovakirdan/bondi-dash/internal/core"
)

// SpriteKind is the closed set of drawable assets.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteTukTuk
	SpriteScooter
	SpriteDog
	SpritePalmTree
	SpriteBeachBackground
	SpriteStreetBackground

	spriteKindCount
)

// SpriteKinds lists every sprite kind in declaration order.
func SpriteKinds() []SpriteKind {
	kinds := make([]SpriteKind, 0, spriteKindCount)
	for k := SpriteKind(0); k < spriteKindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// String returns the key used for the sprite in sprite sheets.
func (k SpriteKind) String() string {
	switch k {
	case SpritePlayer:
		return "player"
	case SpriteTukTuk:
		return "tuktuk"
	case SpriteScooter:
		return "scooter"
	case SpriteDog:
		return "dog"
	case SpritePalmTree:
		return "palm_tree"
	case SpriteBeachBackground:
		return "beach"
	case SpriteStreetBackground:
		return "street"
	default:
		return "unknown"
	}
}

// ParseSpriteKind resolves a sprite sheet key.
func ParseSpriteKind(s string) (SpriteKind, bool) {
	for _, k := range SpriteKinds() {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// FileName returns the image file the desktop frontend loads for the kind.
func (k SpriteKind) FileName() string {
	switch k {
	case SpritePlayer:
		return "backpacker.png"
	case SpriteTukTuk:
		return "tuktuk.png"
	case SpriteScooter:
		return "scooter.png"
	case SpriteDog:
		return "dog.png"
	case SpritePalmTree:
		return "palm-tree.png"
	case SpriteBeachBackground:
		return "beach-background.png"
	case SpriteStreetBackground:
		return "street-background.png"
	default:
		return ""
	}
}

// Fallback is the flat color drawn when a sprite is not available.
type Fallback struct {
	RGBA color.RGBA // Window renderer
	Cell core.Color // Terminal renderer
}

// Fallback returns the flat color used for the kind when its sprite is missing.
// Palm trees use it for the trunk; the canopy is LeafFallback.
func (k SpriteKind) Fallback() Fallback {
	switch k {
	case SpritePlayer:
		return Fallback{RGBA: color.RGBA{0xFF, 0x63, 0x47, 0xFF}, Cell: core.ColorTomato}
	case SpriteTukTuk:
		return Fallback{RGBA: color.RGBA{0xFF, 0xD7, 0x00, 0xFF}, Cell: core.ColorGold}
	case SpriteScooter:
		return Fallback{RGBA: color.RGBA{0x1E, 0x90, 0xFF, 0xFF}, Cell: core.ColorOcean}
	case SpriteDog, SpritePalmTree:
		return Fallback{RGBA: color.RGBA{0x8B, 0x45, 0x13, 0xFF}, Cell: core.ColorTrunk}
	case SpriteBeachBackground:
		return Fallback{RGBA: color.RGBA{0xF5, 0xDE, 0xB3, 0xFF}, Cell: core.ColorSand}
	case SpriteStreetBackground:
		return Fallback{RGBA: color.RGBA{0x87, 0xCE, 0xEB, 0xFF}, Cell: core.ColorSky}
	default:
		return Fallback{RGBA: color.RGBA{0xFF, 0x00, 0xFF, 0xFF}, Cell: core.ColorMagenta}
	}
}

// Scenery colors shared by both renderers.
var (
	LeafFallback     = Fallback{RGBA: color.RGBA{0x32, 0xCD, 0x32, 0xFF}, Cell: core.ColorLeaf}
	StreetFallback   = Fallback{RGBA: color.RGBA{0x80, 0x80, 0x80, 0xFF}, Cell: core.ColorStreet}
	SidewalkFallback = Fallback{RGBA: color.RGBA{0xD3, 0xD3, 0xD3, 0xFF}, Cell: core.ColorSidewalk}
	OceanFallback    = Fallback{RGBA: color.RGBA{0x1E, 0x90, 0xFF, 0xFF}, Cell: core.ColorOcean}
	HostelFallback   = Fallback{RGBA: color.RGBA{0xCD, 0x85, 0x3F, 0xFF}, Cell: core.ColorPeru}
	DoorFallback     = Fallback{RGBA: color.RGBA{0x8B, 0x45, 0x13, 0xFF}, Cell: core.ColorTrunk}
	SignFallback     = Fallback{RGBA: color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, Cell: core.ColorBrightWhite}
)

// Glyphs is an ASCII-art sprite for the terminal renderer.
// Spaces are transparent.
type Glyphs struct {
	Rows  []string
	Color core.Color
	Bg    core.Color // Used by background sprites, which are tiled
}

// SpriteSource resolves terminal sprites. A kind that is not available yet
// makes the renderer fall back to flat colors.
type SpriteSource interface {
	Glyphs(kind SpriteKind) (Glyphs, bool)
}
