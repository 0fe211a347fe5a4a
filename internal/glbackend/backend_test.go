package glbackend

import (
	"testing"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/goud-engine/core/render"
	"github.com/stretchr/testify/require"
)

// These cover the pure enum-translation tables only. Anything that touches
// an actual GL object (New, CreateBuffer, CreateTexture, CreateShader, ...)
// needs a live context and isn't exercised here, matching how the teacher
// leaves render/opengl.go itself untested and tests only its GL-independent
// neighbors (lin, packet, mesh).

func TestBufferTargetCoversEveryType(t *testing.T) {
	require.EqualValues(t, gl.ARRAY_BUFFER, bufferTarget(render.BufferVertex))
	require.EqualValues(t, gl.ELEMENT_ARRAY_BUFFER, bufferTarget(render.BufferIndex))
	require.EqualValues(t, gl.UNIFORM_BUFFER, bufferTarget(render.BufferUniform))
}

func TestBufferUsageHintCoversEveryUsage(t *testing.T) {
	require.EqualValues(t, gl.STATIC_DRAW, bufferUsageHint(render.UsageStatic))
	require.EqualValues(t, gl.DYNAMIC_DRAW, bufferUsageHint(render.UsageDynamic))
	require.EqualValues(t, gl.STREAM_DRAW, bufferUsageHint(render.UsageStream))
}

func TestTopologyModeCoversEveryTopology(t *testing.T) {
	cases := map[render.Topology]uint32{
		render.TopologyPoints:        gl.POINTS,
		render.TopologyLines:         gl.LINES,
		render.TopologyLineStrip:     gl.LINE_STRIP,
		render.TopologyTriangles:     gl.TRIANGLES,
		render.TopologyTriangleStrip: gl.TRIANGLE_STRIP,
		render.TopologyTriangleFan:   gl.TRIANGLE_FAN,
	}
	for topology, want := range cases {
		require.EqualValues(t, want, topologyMode(topology))
	}
}

func TestBlendFactorEnumCoversEveryFactor(t *testing.T) {
	cases := map[render.BlendFactor]uint32{
		render.BlendZero:                  gl.ZERO,
		render.BlendOne:                   gl.ONE,
		render.BlendSrcColor:              gl.SRC_COLOR,
		render.BlendOneMinusSrcColor:      gl.ONE_MINUS_SRC_COLOR,
		render.BlendDstColor:              gl.DST_COLOR,
		render.BlendOneMinusDstColor:      gl.ONE_MINUS_DST_COLOR,
		render.BlendSrcAlpha:              gl.SRC_ALPHA,
		render.BlendOneMinusSrcAlpha:      gl.ONE_MINUS_SRC_ALPHA,
		render.BlendDstAlpha:              gl.DST_ALPHA,
		render.BlendOneMinusDstAlpha:      gl.ONE_MINUS_DST_ALPHA,
		render.BlendConstantColor:         gl.CONSTANT_COLOR,
		render.BlendOneMinusConstantColor: gl.ONE_MINUS_CONSTANT_COLOR,
		render.BlendConstantAlpha:         gl.CONSTANT_ALPHA,
		render.BlendOneMinusConstantAlpha: gl.ONE_MINUS_CONSTANT_ALPHA,
	}
	for factor, want := range cases {
		require.EqualValues(t, want, blendFactorEnum(factor))
	}
}

func TestCullFaceEnumCoversEveryFace(t *testing.T) {
	require.EqualValues(t, gl.FRONT, cullFaceEnum(render.CullFront))
	require.EqualValues(t, gl.BACK, cullFaceEnum(render.CullBack))
	require.EqualValues(t, gl.FRONT_AND_BACK, cullFaceEnum(render.CullFrontAndBack))
}
