package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/bondi-dash/internal/crossing"
)

// maxDecoders bounds concurrent image decodes.
const maxDecoders = 4

// ImageSet holds the window sprites, decoded in the background.
// A kind whose file is missing or broken settles as unavailable.
type ImageSet struct {
	mu      sync.RWMutex
	images  map[crossing.SpriteKind]image.Image
	settled int
	total   int
	done    chan struct{}
	err     error
}

// LoadImages starts decoding one image per sprite kind from fsys, named by
// SpriteKind.FileName. It returns immediately; use Done, Settled or Wait to
// find out when loading has finished.
func LoadImages(ctx context.Context, fsys fs.FS, logger *log.Logger) *ImageSet {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	kinds := crossing.SpriteKinds()
	set := &ImageSet{
		images: make(map[crossing.SpriteKind]image.Image, len(kinds)),
		total:  len(kinds),
		done:   make(chan struct{}),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxDecoders)

	go func() {
		for _, kind := range kinds {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				img, err := decode(fsys, kind.FileName())
				if err != nil {
					logger.Warn("sprite unavailable, using fallback", "kind", kind, "err", err)
				} else {
					logger.Debug("sprite loaded", "kind", kind, "size", img.Bounds().Size())
				}
				set.settle(kind, img)
				return nil
			})
		}

		err := g.Wait()
		set.mu.Lock()
		set.err = err
		set.mu.Unlock()
		close(set.done)
	}()

	return set
}

func decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

func (s *ImageSet) settle(kind crossing.SpriteKind, img image.Image) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img != nil {
		s.images[kind] = img
	}
	s.settled++
}

// Image returns the decoded image for kind once it is available.
func (s *ImageSet) Image(kind crossing.SpriteKind) (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[kind]
	return img, ok
}

// Progress returns how many kinds have settled out of the total.
func (s *ImageSet) Progress() (settled, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settled, s.total
}

// Loaded returns how many kinds decoded successfully.
func (s *ImageSet) Loaded() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

// Done is closed when every kind has settled or loading was cancelled.
func (s *ImageSet) Done() <-chan struct{} {
	return s.done
}

// Settled reports whether loading has finished.
func (s *ImageSet) Settled() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// Wait blocks until loading has finished or ctx is done. It returns the
// cancellation error if loading was cut short.
func (s *ImageSet) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
