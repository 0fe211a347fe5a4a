package assets_test

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/bmp"

	"github.com/goud-engine/core/asset"
	"github.com/goud-engine/core/internal/assets"
	"github.com/stretchr/testify/require"
)

func encodeTestBitmap(t *testing.T, w, h int, fill color.RGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: fill.R, G: fill.G, B: fill.B, A: fill.A})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func TestBitmapLoaderExtensionsListsOnlyBmp(t *testing.T) {
	require.Equal(t, []string{"bmp"}, assets.BitmapLoader{}.Extensions())
}

func TestBitmapLoaderDecodesDimensionsAndPixels(t *testing.T) {
	data := encodeTestBitmap(t, 2, 3, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	ctx := asset.NewLoadContext("sprite.bmp")

	bmpAsset, err := assets.BitmapLoader{}.Load(data, nil, ctx)
	require.NoError(t, err)
	require.Equal(t, 2, bmpAsset.Width)
	require.Equal(t, 3, bmpAsset.Height)
	require.Len(t, bmpAsset.RGBA, 2*3*4)
	require.Equal(t, byte(10), bmpAsset.RGBA[0])
	require.Equal(t, byte(20), bmpAsset.RGBA[1])
	require.Equal(t, byte(30), bmpAsset.RGBA[2])
}

func TestBitmapLoaderReturnsDecodeFailedForGarbageInput(t *testing.T) {
	ctx := asset.NewLoadContext("broken.bmp")
	_, err := assets.BitmapLoader{}.Load([]byte("not a bitmap"), nil, ctx)
	require.Error(t, err)
}
