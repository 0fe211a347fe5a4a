package asset_test

import (
	"testing"

	"github.com/goud-engine/core/asset"
	"github.com/stretchr/testify/require"
)

func TestLoadContextDerivesExtensionAndFileName(t *testing.T) {
	ctx := asset.NewLoadContext("textures/player/Idle.BMP")
	require.Equal(t, "textures/player/Idle.BMP", ctx.Path())
	require.Equal(t, "bmp", ctx.Extension(), "extension should be lowercased and have no leading dot")
	require.Equal(t, "Idle.BMP", ctx.FileName())
}

func TestLoadContextWithNoExtension(t *testing.T) {
	ctx := asset.NewLoadContext("README")
	require.Equal(t, "", ctx.Extension())
}

type stubLoader struct{}

func (stubLoader) Extensions() []string { return []string{"stub", "stb"} }
func (stubLoader) Load(data []byte, settings any, ctx *asset.LoadContext) (string, error) {
	return string(data), nil
}

func TestSupportsExtensionIsCaseInsensitiveAndStripsDot(t *testing.T) {
	l := stubLoader{}
	require.True(t, asset.SupportsExtension[string](l, "stub"))
	require.True(t, asset.SupportsExtension[string](l, "STB"))
	require.True(t, asset.SupportsExtension[string](l, ".stub"))
	require.False(t, asset.SupportsExtension[string](l, "png"))
}
