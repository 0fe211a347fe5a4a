package render_test

import (
	"testing"

	"github.com/goud-engine/core/render"
	"github.com/stretchr/testify/require"
)

func TestBytesPerPixelCoversEveryFormat(t *testing.T) {
	cases := map[render.TextureFormat]int{
		render.FormatR8:           1,
		render.FormatRG8:          2,
		render.FormatRGB8:         3,
		render.FormatRGBA8:        4,
		render.FormatRGBA16F:      8,
		render.FormatRGBA32F:      16,
		render.FormatDepth:        4,
		render.FormatDepthStencil: 4,
	}
	for format, want := range cases {
		require.Equal(t, want, format.BytesPerPixel())
	}
}
