package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // Register PNG format
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"

	_ "golang.org/x/image/bmp" // Register BMP format
	xdraw "golang.org/x/image/draw"
)

// spriteExtensions are tried in order when looking up a sprite by name
var spriteExtensions = []string{".bmp", ".png"}

// loadImage decodes dir/name.bmp, falling back to dir/name.png
func loadImage(dir, name string) (image.Image, error) {
	for _, ext := range spriteExtensions {
		path := filepath.Join(dir, name+ext)
		f, err := os.Open(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("open sprite %s: %w", path, err)
		}

		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("decode sprite %s: %w", path, err)
		}
		return img, nil
	}
	return nil, fmt.Errorf("sprite %q not found in %s: %w", name, dir, fs.ErrNotExist)
}

// loadImages loads name0 .. name(n-1)
func loadImages(dir, name string, n int) ([]image.Image, error) {
	images := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		img, err := loadImage(dir, name+strconv.Itoa(i))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

var (
	shipColor    = color.NRGBA{R: 100, G: 150, B: 255, A: 255}
	outlineColor = color.NRGBA{A: 255}
	bulletColor  = color.NRGBA{R: 255, G: 230, B: 80, A: 255}

	enemyColors = []color.NRGBA{
		{R: 255, G: 90, B: 90, A: 255},
		{R: 90, G: 220, B: 120, A: 255},
		{R: 240, G: 200, B: 60, A: 255},
		{R: 190, G: 110, B: 255, A: 255},
		{R: 80, G: 210, B: 230, A: 255},
	}

	enemyBurstPalette = []color.NRGBA{
		{R: 255, G: 255, B: 220, A: 255},
		{R: 255, G: 200, B: 60, A: 255},
		{R: 230, G: 90, B: 30, A: 255},
		{R: 120, G: 40, B: 20, A: 200},
	}

	playerBurstPalette = []color.NRGBA{
		{R: 255, G: 255, B: 255, A: 255},
		{R: 140, G: 200, B: 255, A: 255},
		{R: 255, G: 120, B: 60, A: 255},
		{R: 90, G: 40, B: 90, A: 200},
	}
)

// shipSprite draws a simple arrow-shaped ship pointing up
func shipSprite(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	centerX := float64(width) / 2

	for y := 0; y < height; y++ {
		// Hull widens from the nose to the tail
		half := float64(width) / 2 * float64(y+1) / float64(height)
		for x := 0; x < width; x++ {
			relX := math.Abs(float64(x) + 0.5 - centerX)
			if relX < half-1 {
				img.SetNRGBA(x, y, shipColor)
			} else if relX < half {
				img.SetNRGBA(x, y, outlineColor)
			}
		}
	}
	return img
}

// bulletSprite draws a solid bar
func bulletSprite(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(bulletColor), image.Point{}, xdraw.Src)
	return img
}

// enemySprite draws a bordered square with two eyes
func enemySprite(width, height int, clr color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(outlineColor), image.Point{}, xdraw.Src)
	xdraw.Draw(img, image.Rect(1, 1, width-1, height-1), image.NewUniform(clr), image.Point{}, xdraw.Src)

	eye := image.NewUniform(outlineColor)
	eyeY := height / 3
	xdraw.Draw(img, image.Rect(width/4, eyeY, width/4+3, eyeY+3), eye, image.Point{}, xdraw.Src)
	xdraw.Draw(img, image.Rect(width-width/4-3, eyeY, width-width/4, eyeY+3), eye, image.Point{}, xdraw.Src)
	return img
}

// burstFrames draws an expanding ring sequence on a small pixel grid and
// scales each frame up to width x height with nearest-neighbour sampling.
func burstFrames(n, width, height int, palette []color.NRGBA) []image.Image {
	const grid = 16
	frames := make([]image.Image, n)

	for i := 0; i < n; i++ {
		small := image.NewNRGBA(image.Rect(0, 0, grid, grid))
		progress := float64(i+1) / float64(n)
		outer := 1.5 + progress*(grid/2-1.5)
		inner := outer * progress * 0.8
		clr := palette[min(i*len(palette)/n, len(palette)-1)]

		for y := 0; y < grid; y++ {
			for x := 0; x < grid; x++ {
				dx := float64(x) + 0.5 - grid/2
				dy := float64(y) + 0.5 - grid/2
				d := math.Hypot(dx, dy)
				if d <= outer && d >= inner {
					small.SetNRGBA(x, y, clr)
				}
			}
		}

		big := image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.NearestNeighbor.Scale(big, big.Bounds(), small, small.Bounds(), xdraw.Src, nil)
		frames[i] = big
	}
	return frames
}
