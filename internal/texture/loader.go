package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
)

// LoadRamp reads a ramp image (TGA, PNG or JPEG) and samples its middle row
// left to right, low elevation first.
func LoadRamp(path string) (*Ramp, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, err := decode(path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	n := toNRGBA(img)
	b := n.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("texture: empty ramp image %s", path)
	}

	y := b.Min.Y + b.Dy()/2
	stops := make([]color.NRGBA, 0, b.Dx())
	for x := b.Min.X; x < b.Max.X; x++ {
		stops = append(stops, n.NRGBAAt(x, y))
	}
	return NewRamp(stops...), nil
}

// decode picks the codec by extension. TGA has no magic number, so image.Decode
// sniffing cannot be trusted to route it.
func decode(path string, r io.Reader) (image.Image, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		return tga.Decode(r)
	case ".png":
		return png.Decode(r)
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	default:
		return nil, fmt.Errorf("unknown extension %q", ext)
	}
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha: draw and set alpha to 255
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.SetNRGBA(x, y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
			}
		}
	}
	return dst
}
