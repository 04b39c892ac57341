package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
	"time"

	"github.com/vovakirdan/bondi-dash/internal/crossing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{0xFF, 0x63, 0x47, 0xFF})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func waitLoaded(t *testing.T, set *ImageSet) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := set.Wait(ctx); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
}

func TestLoadImages(t *testing.T) {
	fsys := fstest.MapFS{
		crossing.SpritePlayer.FileName(): {Data: pngBytes(t, 50, 50)},
		crossing.SpriteDog.FileName():    {Data: pngBytes(t, 30, 20)},
		crossing.SpriteTukTuk.FileName(): {Data: []byte("not a png")},
	}

	set := LoadImages(context.Background(), fsys, nil)
	waitLoaded(t, set)

	if !set.Settled() {
		t.Error("Settled() = false after Wait")
	}
	settled, total := set.Progress()
	if total != len(crossing.SpriteKinds()) || settled != total {
		t.Errorf("Progress() = %d/%d, want all settled", settled, total)
	}
	if set.Loaded() != 2 {
		t.Errorf("Loaded() = %d, want 2", set.Loaded())
	}

	img, ok := set.Image(crossing.SpritePlayer)
	if !ok || img.Bounds().Dx() != 50 {
		t.Error("player image should be available")
	}
	if _, ok := set.Image(crossing.SpriteTukTuk); ok {
		t.Error("broken file should settle as unavailable")
	}
	if _, ok := set.Image(crossing.SpriteScooter); ok {
		t.Error("missing file should settle as unavailable")
	}
}

func TestLoadImagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	set := LoadImages(ctx, fstest.MapFS{}, nil)
	select {
	case <-set.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("cancelled load never finished")
	}
	if set.Loaded() != 0 {
		t.Errorf("Loaded() = %d, want 0", set.Loaded())
	}
}
