// Package assets holds the engine's one concrete codec: a Windows/OS2
// bitmap loader, kept as a worked example of asset.Loader (spec.md §6
// explicitly scopes codec bodies out of the core beyond this one).
// Grounded on the teacher's engine/loader package shape (a concrete
// "*Backend" struct satisfying a small interface) and on
// original_source/goud_engine/src/assets/loaders/audio.rs's pattern of one
// format per file, translated from audio to image decoding since the pack
// carries golang.org/x/image rather than an audio codec.
package assets

import (
	"bytes"

	"golang.org/x/image/bmp"

	"github.com/goud-engine/core/asset"
	"github.com/goud-engine/core/internal/engerr"
)

// Bitmap is the decoded pixel data of a .bmp file: width/height plus
// row-major RGBA8 bytes, matching render.FormatRGBA8 so it can be handed
// straight to Backend.CreateTexture.
type Bitmap struct {
	Width  int
	Height int
	RGBA   []byte
}

// BitmapLoader decodes .bmp files via golang.org/x/image/bmp. It has no
// settings, so callers pass nil for settings.
type BitmapLoader struct{}

var _ asset.Loader[*Bitmap] = BitmapLoader{}

// Extensions returns the single extension this loader handles.
func (BitmapLoader) Extensions() []string { return []string{"bmp"} }

// Load decodes data as a bitmap. ctx is required; its path is used in any
// returned AssetLoadError.
func (BitmapLoader) Load(data []byte, settings any, ctx *asset.LoadContext) (*Bitmap, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &engerr.AssetLoadError{
			Kind:    engerr.AssetDecodeFailed,
			Path:    ctx.Path(),
			Message: err.Error(),
			Cause:   err,
		}
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	rgba := make([]byte, width*height*4)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			rgba[i] = byte(r >> 8)
			rgba[i+1] = byte(g >> 8)
			rgba[i+2] = byte(b >> 8)
			rgba[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return &Bitmap{Width: width, Height: height, RGBA: rgba}, nil
}
