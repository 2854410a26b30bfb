package animations

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// WalkFrames is the number of cells in the player walk strip.
const WalkFrames = 3

// Sheet is a horizontal strip of equally sized frames.
type Sheet struct {
	frames []*ebiten.Image
}

// NewSheet slices img into count equal frames laid out left to right. An
// image that does not look like such a strip is used whole for every frame.
func NewSheet(img *ebiten.Image, count int) *Sheet {
	rects := FrameRects(img.Bounds(), count)
	s := &Sheet{frames: make([]*ebiten.Image, len(rects))}
	for i, r := range rects {
		if r == img.Bounds() {
			s.frames[i] = img
			continue
		}
		s.frames[i] = img.SubImage(r).(*ebiten.Image)
	}
	return s
}

// Frame returns the image for frame index i, wrapping around the strip.
func (s *Sheet) Frame(i int) *ebiten.Image {
	n := len(s.frames)
	return s.frames[((i%n)+n)%n]
}

func (s *Sheet) Len() int {
	return len(s.frames)
}

// FrameRects returns the source rectangle of each frame inside bounds. The
// frame width is bounds.Dx()/count and the frame height is the full image
// height. When a frame would be less than half or more than twice as wide as
// it is tall, bounds is not treated as a strip and every frame is bounds.
func FrameRects(bounds image.Rectangle, count int) []image.Rectangle {
	if count < 1 {
		count = 1
	}
	rects := make([]image.Rectangle, count)
	fw, fh := bounds.Dx()/count, bounds.Dy()
	if fw <= 0 || fh <= 0 || fw*2 < fh || fw > fh*2 {
		for i := range rects {
			rects[i] = bounds
		}
		return rects
	}
	for i := range rects {
		origin := bounds.Min.Add(image.Pt(i*fw, 0))
		rects[i] = image.Rectangle{Min: origin, Max: origin.Add(image.Pt(fw, fh))}
	}
	return rects
}
