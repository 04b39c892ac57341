package crossing

import (
	"math"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
)

// Palm trees stand every treeSpacing units along two rows.
const (
	treeCount   = 5
	treeSpacing = 200.0
)

const hudLabel = "Time: "

// viewport maps field units onto terminal cells.
type viewport struct {
	sx, sy float64
}

func newViewport(dst *core.Screen, f config.FieldConfig) viewport {
	return viewport{
		sx: float64(dst.Width()) / f.Width,
		sy: float64(dst.Height()) / f.Height,
	}
}

// cells converts a field rectangle to a cell rectangle. Anything with a
// non-zero size covers at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Round(r.X * v.sx))
	y0 := int(math.Round(r.Y * v.sy))
	x1 := int(math.Round(r.Right() * v.sx))
	y1 := int(math.Round(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1 - x0, y1 - y0
}

// point converts a field coordinate to a cell coordinate.
func (v viewport) point(x, y float64) (int, int) {
	return int(math.Round(x * v.sx)), int(math.Round(y * v.sy))
}

// Render draws the session onto a terminal screen, scaling the field to the
// screen size. Sprites that are not available (or a nil source) are drawn as
// flat color blocks.
func (s *Session) Render(dst *core.Screen, sprites SpriteSource) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	r := renderer{
		dst:     dst,
		sprites: sprites,
		field:   s.cfg.Field,
		vp:      newViewport(dst, s.cfg.Field),
	}
	r.roadTop, r.roadBottom = s.cfg.Road()

	r.street()
	r.beach()
	for _, o := range s.vehicles {
		r.entity(o.Rect(), o.Sprite())
	}
	for _, o := range s.dogs {
		r.entity(o.Rect(), o.Sprite())
	}
	r.entity(s.player.Rect(), SpritePlayer)

	elapsed := s.Elapsed()
	if s.state == StateWin {
		elapsed = s.FinalTime()
	}
	r.hud(hudLabel + FormatSeconds(elapsed) + "s")

	if s.paused {
		banner := " PAUSED  P to resume "
		row := dst.Height() / 2
		dst.DrawTextCentered(row, banner, core.ColorBrightWhite)
		dst.DrawBox((dst.Width()-len(banner))/2-1, row-1, len(banner)+2, 3, core.ColorBrightWhite)
	}
}

type renderer struct {
	dst     *core.Screen
	sprites SpriteSource
	field   config.FieldConfig
	vp      viewport

	roadTop, roadBottom float64
}

func (r renderer) glyphs(kind SpriteKind) (Glyphs, bool) {
	if r.sprites == nil {
		return Glyphs{}, false
	}
	g, ok := r.sprites.Glyphs(kind)
	if !ok || len(g.Rows) == 0 {
		return Glyphs{}, false
	}
	return g, true
}

// street draws the road, kerbs, the lower palm row and the hostel.
func (r renderer) street() {
	w, h := r.field.Width, r.field.Height

	if g, ok := r.glyphs(SpriteStreetBackground); ok {
		r.tile(core.NewRect(0, 0, w, h), g)
	} else {
		r.fill(core.NewRect(0, 0, w, h), SpriteStreetBackground.Fallback())
		r.fill(core.NewRect(0, r.roadTop, w, r.roadBottom-r.roadTop), StreetFallback)
		r.fill(core.NewRect(0, r.roadTop, w, config.KerbHeight), SidewalkFallback)
		r.fill(core.NewRect(0, r.roadBottom, w, config.KerbHeight), SidewalkFallback)
	}

	for i := 0; i < treeCount; i++ {
		r.palmTree(float64(i)*treeSpacing, h-120)
	}
	r.hostel()
}

// beach draws the sand and ocean strip above the goal line and its palm row.
func (r renderer) beach() {
	strip := core.NewRect(0, 0, r.field.Width, r.field.GoalY)
	if g, ok := r.glyphs(SpriteBeachBackground); ok {
		r.tile(strip, g)
	} else {
		r.fill(strip, SpriteBeachBackground.Fallback())
		r.fill(core.NewRect(0, 0, r.field.Width, r.field.GoalY/2), OceanFallback)
	}

	for i := 0; i < treeCount; i++ {
		r.palmTree(float64(i)*treeSpacing, 50)
	}
}

func (r renderer) hostel() {
	cx, h := r.field.Width/2, r.field.Height

	r.fill(core.NewRect(cx-100, h-180, 200, 80), HostelFallback)
	r.fill(core.NewRect(cx-20, h-140, 40, 40), DoorFallback)

	sign := core.NewRect(cx-80, h-170, 160, 30)
	r.fill(sign, SignFallback)

	x, y, sw, sh := r.vp.cells(sign)
	text := Title
	if len(text) > sw {
		text = "Backpackers"
	}
	if len(text) > sw {
		text = text[:sw]
	}
	r.dst.DrawText(x+(sw-len(text))/2, y+sh/2, text, core.ColorBlack)
}

// palmTree draws a tree whose trunk base sits at (x, y).
func (r renderer) palmTree(x, y float64) {
	if g, ok := r.glyphs(SpritePalmTree); ok {
		r.sprite(core.NewRect(x-25, y-50, 50, 100), g)
		return
	}

	r.fill(core.NewRect(x, y-50, 10, 50), SpritePalmTree.Fallback())
	r.disc(x+5, y-50, 20, LeafFallback)
}

func (r renderer) entity(rect core.Rect, kind SpriteKind) {
	if g, ok := r.glyphs(kind); ok {
		r.sprite(rect, g)
		return
	}
	r.fill(rect, kind.Fallback())
}

func (r renderer) hud(text string) {
	x, y := r.vp.point(20, 10)
	for i, ch := range text {
		r.dst.SetCell(x+i, y, core.Cell{Rune: ch, Color: core.ColorBrightWhite, Bg: core.ColorBlack})
	}
}

// fill paints a flat color block.
func (r renderer) fill(rect core.Rect, fb Fallback) {
	x, y, w, h := r.vp.cells(rect)
	r.dst.FillRect(x, y, w, h, core.Cell{Rune: ' ', Bg: fb.Cell})
}

// disc paints every cell whose center lies inside the circle.
func (r renderer) disc(cx, cy, radius float64, fb Fallback) {
	x, y, w, h := r.vp.cells(core.NewRect(cx-radius, cy-radius, 2*radius, 2*radius))
	painted := false
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			fx := (float64(col) + 0.5) / r.vp.sx
			fy := (float64(row) + 0.5) / r.vp.sy
			if (fx-cx)*(fx-cx)+(fy-cy)*(fy-cy) > radius*radius {
				continue
			}
			r.paintBg(col, row, fb.Cell)
			painted = true
		}
	}
	if !painted {
		col, row := r.vp.point(cx, cy)
		r.paintBg(col, row, fb.Cell)
	}
}

func (r renderer) paintBg(x, y int, bg core.Color) {
	c := r.dst.GetCell(x, y)
	c.Rune = ' '
	c.Bg = bg
	r.dst.SetCell(x, y, c)
}

// sprite scales the glyph rows onto the cells covered by rect.
// Spaces keep whatever is underneath.
func (r renderer) sprite(rect core.Rect, g Glyphs) {
	x, y, w, h := r.vp.cells(rect)
	for row := 0; row < h; row++ {
		line := []rune(g.Rows[row*len(g.Rows)/h])
		if len(line) == 0 {
			continue
		}
		for col := 0; col < w; col++ {
			ch := line[col*len(line)/w]
			if ch == ' ' {
				continue
			}
			r.glyph(x+col, y+row, ch, g)
		}
	}
}

// tile repeats the glyph rows over rect without scaling.
func (r renderer) tile(rect core.Rect, g Glyphs) {
	x, y, w, h := r.vp.cells(rect)
	for row := 0; row < h; row++ {
		line := []rune(g.Rows[row%len(g.Rows)])
		for col := 0; col < w; col++ {
			ch := ' '
			if len(line) > 0 {
				ch = line[col%len(line)]
			}
			r.glyph(x+col, y+row, ch, g)
		}
	}
}

func (r renderer) glyph(x, y int, ch rune, g Glyphs) {
	c := r.dst.GetCell(x, y)
	c.Rune = ch
	c.Color = g.Color
	if g.Bg != core.ColorDefault {
		c.Bg = g.Bg
	}
	r.dst.SetCell(x, y, c)
}
