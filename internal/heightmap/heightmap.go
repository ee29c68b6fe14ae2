// Package heightmap turns grayscale images into voxel terrain.
package heightmap

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"os"

	// Registered decoders.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"

	"cullmesh/internal/voxel"
)

// ErrBadImage is returned for input that no registered decoder accepts.
var ErrBadImage = errors.New("heightmap: unsupported or corrupt image")

// Decode reads a png, jpeg, bmp or tiff image.
func Decode(r io.Reader) (image.Image, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadImage, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", ErrBadImage, format)
	}
	return img, nil
}

// Load opens and decodes the image at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("heightmap: open %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("heightmap: decode %s: %w", path, err)
	}
	return img, nil
}

// Filler is placed under the top block of every column.
const Filler = voxel.BlockStone

// ToGrid resamples img to w×d pixels and raises one column per pixel:
// black is an empty column, white a column h blocks tall. The top block of
// a column is top, everything below it is Filler. Image x runs along grid
// x and image y along grid z.
func ToGrid(img image.Image, w, h, d int, top voxel.Block) (*voxel.Grid, error) {
	dims := voxel.Dims{W: w, H: h, D: d}
	if dims.Empty() {
		return nil, fmt.Errorf("heightmap: invalid grid size %s", dims)
	}

	gray := image.NewGray(image.Rect(0, 0, w, d))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, img.Bounds(), draw.Src, nil)

	g := voxel.NewGrid(dims)
	for z := 0; z < d; z++ {
		for x := 0; x < w; x++ {
			col := columnHeight(gray.GrayAt(x, z).Y, h)
			if col == 0 {
				continue
			}
			g.Fill(x, 0, z, x+1, col-1, z+1, Filler)
			g.Set(x, col-1, z, top)
		}
	}
	return g, nil
}

// columnHeight maps a luminance value onto 0..h.
func columnHeight(lum uint8, h int) int {
	return int(math.Round(float64(lum) / 255 * float64(h)))
}
