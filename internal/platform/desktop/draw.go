package desktop

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bondi-dash/internal/config"
	"github.com/vovakirdan/bondi-dash/internal/core"
	"github.com/vovakirdan/bondi-dash/internal/crossing"
)

// Debug font metrics.
const (
	charW = 6
	lineH = 16
)

const (
	treeCount   = 5
	treeSpacing = 200.0
)

var (
	overlayColor = color.RGBA{0x00, 0x00, 0x00, 0xB0}
	hudColor     = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// Draw renders the street, the obstacles, the player and the HUD, plus the
// start or win panel when the session is not playing.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.session.Config().Field

	g.drawStreet(screen)
	g.drawBeach(screen)
	for _, o := range g.session.Vehicles() {
		g.drawEntity(screen, o.Rect(), o.Sprite())
	}
	for _, o := range g.session.Dogs() {
		g.drawEntity(screen, o.Rect(), o.Sprite())
	}
	g.drawEntity(screen, g.session.Player().Rect(), crossing.SpritePlayer)

	switch g.session.State() {
	case crossing.StateStart:
		drawPanel(screen, f.Width, f.Height, g.startLines())
	case crossing.StatePlaying:
		g.drawHUD(screen)
		if g.session.Paused() {
			drawPanel(screen, f.Width, f.Height, []string{"PAUSED", "", "P to resume"})
		}
	case crossing.StateWin:
		g.drawHUD(screen)
		drawPanel(screen, f.Width, f.Height, g.winLines())
	}
}

func (g *Game) drawStreet(dst *ebiten.Image) {
	cfg := g.session.Config()
	w, h := cfg.Field.Width, cfg.Field.Height
	top, bottom := cfg.Road()

	if img, ok := g.texture(crossing.SpriteStreetBackground); ok {
		drawImage(dst, img, core.NewRect(0, 0, w, h))
	} else {
		fillRect(dst, core.NewRect(0, 0, w, h), crossing.SpriteStreetBackground.Fallback())
		fillRect(dst, core.NewRect(0, top, w, bottom-top), crossing.StreetFallback)
		fillRect(dst, core.NewRect(0, top, w, config.KerbHeight), crossing.SidewalkFallback)
		fillRect(dst, core.NewRect(0, bottom, w, config.KerbHeight), crossing.SidewalkFallback)
	}

	for i := 0; i < treeCount; i++ {
		g.drawPalmTree(dst, float64(i)*treeSpacing, h-120)
	}
	g.drawHostel(dst)
}

func (g *Game) drawBeach(dst *ebiten.Image) {
	f := g.session.Config().Field
	strip := core.NewRect(0, 0, f.Width, f.GoalY)

	if img, ok := g.texture(crossing.SpriteBeachBackground); ok {
		drawImage(dst, img, strip)
	} else {
		fillRect(dst, strip, crossing.SpriteBeachBackground.Fallback())
		fillRect(dst, core.NewRect(0, 0, f.Width, f.GoalY/2), crossing.OceanFallback)
	}

	for i := 0; i < treeCount; i++ {
		g.drawPalmTree(dst, float64(i)*treeSpacing, 50)
	}
}

func (g *Game) drawHostel(dst *ebiten.Image) {
	f := g.session.Config().Field
	cx, h := f.Width/2, f.Height

	fillRect(dst, core.NewRect(cx-100, h-180, 200, 80), crossing.HostelFallback)
	fillRect(dst, core.NewRect(cx-20, h-140, 40, 40), crossing.DoorFallback)
	fillRect(dst, core.NewRect(cx-80, h-170, 160, 30), crossing.SignFallback)

	// The debug font is white; the sign text is printed once and tinted black.
	if g.sign == nil {
		g.sign = ebiten.NewImage(len(crossing.Title)*charW, lineH)
		ebitenutil.DebugPrint(g.sign, crossing.Title)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(g.sign.Bounds().Dx())/2, h-170+(30-lineH)/2)
	op.ColorScale.Scale(0, 0, 0, 1)
	dst.DrawImage(g.sign, op)
}

// drawPalmTree draws a tree whose trunk base sits at (x, y).
func (g *Game) drawPalmTree(dst *ebiten.Image, x, y float64) {
	if img, ok := g.texture(crossing.SpritePalmTree); ok {
		drawImage(dst, img, core.NewRect(x-25, y-50, 50, 100))
		return
	}

	fillRect(dst, core.NewRect(x, y-50, 10, 50), crossing.SpritePalmTree.Fallback())
	vector.FillCircle(dst, float32(x+5), float32(y-50), 20, crossing.LeafFallback.RGBA, true)
}

func (g *Game) drawEntity(dst *ebiten.Image, r core.Rect, kind crossing.SpriteKind) {
	if img, ok := g.texture(kind); ok {
		drawImage(dst, img, r)
		return
	}
	fillRect(dst, r, kind.Fallback())
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	elapsed := g.session.Elapsed()
	if g.session.State() == crossing.StateWin {
		elapsed = g.session.FinalTime()
	}
	text := hudText(elapsed)

	vector.FillRect(dst, 14, 8, float32(len(text)*charW+12), lineH+6, hudColor, false)
	ebitenutil.DebugPrintAt(dst, text, 20, 10)
}

func (g *Game) startLines() []string {
	lines := []string{
		crossing.Title,
		"",
		"Cross the street from the hostel to the beach.",
		"Dodge the tuk-tuks, scooters and stray dogs:",
		"one touch and you are back at the door.",
		"",
		"Arrows/WASD move  P pause  F11 fullscreen  Esc quit",
		"",
	}

	settled, total := g.images.Progress()
	if !g.images.Settled() {
		lines = append(lines, fmt.Sprintf("Loading sprites... %d/%d", settled, total))
	} else {
		lines = append(lines, "Press Enter to start")
	}
	return lines
}

func (g *Game) winLines() []string {
	lines := []string{
		"You made it to the beach!",
		"",
		fmt.Sprintf("Your time: %s seconds", crossing.FormatSeconds(g.session.FinalTime())),
		fmt.Sprintf("Sent back: %d times", g.session.Hits()),
	}
	if g.hasBest {
		if g.newBest {
			lines = append(lines, "", "New personal best!")
		} else {
			lines = append(lines, "", fmt.Sprintf("Personal best: %ss", crossing.FormatSeconds(g.best)))
		}
	}
	return append(lines, "", "Press R to play again")
}

func hudText(d time.Duration) string {
	return "Time: " + crossing.FormatSeconds(d) + "s"
}

// drawPanel dims the field and prints the lines centered on it.
func drawPanel(dst *ebiten.Image, w, h float64, lines []string) {
	widest := 0
	for _, l := range lines {
		widest = max(widest, len(l))
	}
	pw := float64(widest*charW + 48)
	ph := float64(len(lines)*lineH + 32)
	px, py := (w-pw)/2, (h-ph)/2

	vector.FillRect(dst, float32(px), float32(py), float32(pw), float32(ph), overlayColor, false)
	for i, l := range lines {
		x := int(w/2) - len(l)*charW/2
		ebitenutil.DebugPrintAt(dst, l, x, int(py)+16+i*lineH)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, fb crossing.Fallback) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fb.RGBA, false)
}

// drawImage stretches img over r.
func drawImage(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
