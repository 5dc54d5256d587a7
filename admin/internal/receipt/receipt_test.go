package receipt

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encode(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStamper_Stamp(t *testing.T) {
	t.Parallel()
	red := color.RGBA{R: 255, A: 255}
	s := NewStamper(solid(300, 60, red))

	out, err := s.Stamp(encode(t, solid(120, 200, color.White)))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 120, 200), img.Bounds())

	// stamp scaled to width 40, height 8, anchored bottom right with margin 3
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, color.RGBAModel.Convert(img.At(0, 0)))
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(120-3-1, 200-3-1)))
	assert.Equal(t, red, color.RGBAModel.Convert(img.At(120-3-40, 200-3-8)))
	assert.NotEqual(t, red, color.RGBAModel.Convert(img.At(120-3-41, 200-3-1)))
}

func TestStamper_InvalidImage(t *testing.T) {
	t.Parallel()
	s := NewStamper(solid(10, 10, color.Black))
	_, err := s.Stamp([]byte("not an image"))
	require.Error(t, err)
}

func TestLocalStore_Save(t *testing.T) {
	t.Parallel()
	dir := filepath.Join(t.TempDir(), "receipts")
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), "../TXN-20240101-ABCDEF12.png", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, "receipts/TXN-20240101-ABCDEF12.png", ref)

	data, err := os.ReadFile(filepath.Join(dir, "TXN-20240101-ABCDEF12.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), data)
}

func TestLoadStamper(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "stamp.png")
	require.NoError(t, os.WriteFile(p, encode(t, solid(4, 4, color.Black)), 0o644))

	s, err := LoadStamper(p)
	require.NoError(t, err)
	require.Equal(t, 4, s.stamp.Bounds().Dx())

	_, err = LoadStamper(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
}
