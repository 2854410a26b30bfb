package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// Levels returns the embedded level files, rooted at the assets directory
// (paths look like "levels/level1.txt").
func Levels() fs.FS {
	return levelFS
}

// Sprites holds the textures drawn by the game.
type Sprites struct {
	Player   *animations.Sheet
	Platform *ebiten.Image
	Coin     *ebiten.Image
}

// SpriteLoader loads images from a directory and caches them by name.
type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage returns the decoded image at name. A nil filesystem behaves like
// an empty one.
func (l *SpriteLoader) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("load image %s: %w", name, fs.ErrNotExist)
	}

	imgBytes, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", name, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}

	l.cache[name] = img
	return img, nil
}

// LoadSprites loads the player sheet, platform and coin textures. Missing
// files are replaced by generated placeholders; the returned slice lists
// the names that fell back so callers can log them.
func (l *SpriteLoader) LoadSprites() (*Sprites, []string) {
	var missing []string
	load := func(name string, placeholder func() *ebiten.Image) *ebiten.Image {
		img, err := l.LoadImage(name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				missing = append(missing, name+": "+err.Error())
			} else {
				missing = append(missing, name)
			}
			return placeholder()
		}
		return img
	}

	fw, fh := config.Animation.FrameWidth, config.Animation.FrameHeight
	playerImg := load(config.Player.SpriteFile, func() *ebiten.Image {
		return placeholderPlayerSheet(fw, fh, animations.WalkFrames)
	})

	tile := int(config.Level.TileSize)
	return &Sprites{
		Player:   animations.NewSheet(playerImg, animations.WalkFrames),
		Platform: load(config.Level.PlatformSprite, func() *ebiten.Image { return placeholderPlatform(tile) }),
		Coin:     load(config.Coin.SpriteFile, func() *ebiten.Image { return placeholderCoin(tile) }),
	}, missing
}

// placeholderPlayerSheet draws a strip of simple figures whose legs move
// between frames.
func placeholderPlayerSheet(fw, fh, frames int) *ebiten.Image {
	sheet := ebiten.NewImage(fw*frames, fh)
	body := color.RGBA{R: 220, G: 60, B: 60, A: 255}
	legs := color.RGBA{R: 40, G: 40, B: 120, A: 255}
	w, h := float32(fw), float32(fh)
	for i := 0; i < frames; i++ {
		ox := float32(i * fw)
		vector.FillRect(sheet, ox+w*0.3, h*0.1, w*0.4, h*0.5, body, false)
		vector.FillRect(sheet, ox+w*0.55, h*0.2, w*0.1, h*0.1, config.White, false)
		stride := float32(i) * w * 0.08
		vector.FillRect(sheet, ox+w*0.3+stride, h*0.6, w*0.12, h*0.4, legs, false)
		vector.FillRect(sheet, ox+w*0.58-stride, h*0.6, w*0.12, h*0.4, legs, false)
	}
	return sheet
}

func placeholderPlatform(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.Fill(color.RGBA{R: 120, G: 72, B: 40, A: 255})
	s := float32(size)
	vector.FillRect(img, 0, 0, s, s*0.2, config.DarkGreen, false)
	vector.StrokeRect(img, 0, 0, s, s, 2, color.RGBA{R: 60, G: 36, B: 20, A: 255}, false)
	return img
}

func placeholderCoin(size int) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.FillCircle(img, c, c, c*0.6, config.Gold, true)
	vector.StrokeCircle(img, c, c, c*0.6, 3, color.RGBA{R: 180, G: 120, B: 0, A: 255}, true)
	return img
}

// FitScale returns the uniform scale that fits an image of the given size
// inside a square of side size, keeping its aspect ratio.
func FitScale(b image.Rectangle, size float64) float64 {
	m := b.Dx()
	if b.Dy() > m {
		m = b.Dy()
	}
	if m == 0 {
		return 1
	}
	return size / float64(m)
}
