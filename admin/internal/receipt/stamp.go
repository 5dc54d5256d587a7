package receipt

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/jpeg"
	"image/png"
	"os"

	"github.com/pkg/errors"
)

// Stamper overlays a "returned" stamp onto receipt images.
type Stamper struct {
	stamp image.Image
}

func NewStamper(stamp image.Image) *Stamper {
	return &Stamper{stamp: stamp}
}

func LoadStamper(path string) (*Stamper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open stamp")
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "decode stamp")
	}
	return NewStamper(img), nil
}

// Stamp draws the stamp in the bottom right corner, shrunk to at most a third
// of the receipt width. The result is always PNG.
func (s *Stamper) Stamp(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "decode receipt")
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)

	stamp := s.stamp
	if limit := b.Dx() / 3; stamp.Bounds().Dx() > limit && limit > 0 {
		stamp = scale(stamp, limit)
	}
	sb := stamp.Bounds()
	margin := b.Dx() / 40
	x := b.Dx() - sb.Dx() - margin
	y := b.Dy() - sb.Dy() - margin
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	at := image.Rect(x, y, x+sb.Dx(), y+sb.Dy())
	draw.Draw(dst, at, stamp, sb.Min, draw.Over)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, errors.Wrap(err, "encode receipt")
	}
	return buf.Bytes(), nil
}

// scale resizes img to width w with nearest-neighbour sampling.
func scale(img image.Image, w int) image.Image {
	b := img.Bounds()
	h := b.Dy() * w / b.Dx()
	if h == 0 {
		h = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, img.At(b.Min.X+x*b.Dx()/w, b.Min.Y+y*b.Dy()/h))
		}
	}
	return out
}
