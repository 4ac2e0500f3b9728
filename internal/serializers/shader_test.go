package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

func TestShaderTextRoundTrip(t *testing.T) {
	in := &assets.Shader{
		MaxGroups:         4,
		MaxDrawIDs:        256,
		DepthTest:         true,
		DepthWrite:        true,
		ColorWrite:        true,
		CullMode:          assets.CullModeFront,
		Topology:          []assets.ShaderTopology{assets.TopologyLineList},
		Stages: []assets.ShaderStage{
			{Type: assets.StageVertex, SourceAssetName: "mesh.vert", PackageName: "Runtime"},
			{Type: assets.StageFragment, SourceAssetName: "mesh.frag"},
		},
		Attributes: []assets.ShaderAttribute{
			{Type: assets.UniformVec3, Name: "position"},
		},
		Uniforms: assets.ShaderUniforms{
			PerFrame: []assets.ShaderUniform{{Type: assets.UniformMat4, Name: "view_proj"}},
			PerDraw:  []assets.ShaderUniform{{Type: assets.UniformStruct, Name: "instance", Size: 64, ArraySize: 10}},
		},
	}
	text, err := SerializeShaderText(in)
	require.NoError(t, err)

	out, err := DeserializeShaderText(text)
	require.NoError(t, err)
	assert.Equal(t, in.MaxGroups, out.MaxGroups)
	assert.Equal(t, in.MaxDrawIDs, out.MaxDrawIDs)
	assert.True(t, out.DepthTest)
	assert.Equal(t, assets.CullModeFront, out.CullMode)
	assert.Equal(t, in.Topology, out.Topology)
	require.Len(t, out.Stages, 2)
	assert.Equal(t, in.Stages[0], out.Stages[0])
	require.Len(t, out.Attributes, 1)
	assert.Equal(t, in.Attributes[0], out.Attributes[0])
	require.Len(t, out.Uniforms.PerFrame, 1)
	assert.Equal(t, in.Uniforms.PerFrame[0], out.Uniforms.PerFrame[0])
	require.Len(t, out.Uniforms.PerDraw, 1)
	assert.Equal(t, in.Uniforms.PerDraw[0], out.Uniforms.PerDraw[0])
	assert.Equal(t, assets.TypeShader, out.Type)
}

func TestShaderTextRequiresAtLeastOneStage(t *testing.T) {
	_, err := SerializeShaderText(&assets.Shader{})
	assert.Error(t, err)
}

func TestShaderTextDefaultsCullModeAndTopology(t *testing.T) {
	in := &assets.Shader{
		Stages: []assets.ShaderStage{{Type: assets.StageVertex, SourceAssetName: "x.vert"}},
	}
	text, err := SerializeShaderText(in)
	require.NoError(t, err)

	out, err := DeserializeShaderText(text)
	require.NoError(t, err)
	assert.Equal(t, assets.CullModeBack, out.CullMode)
	assert.Equal(t, []assets.ShaderTopology{assets.TopologyTriangleList}, out.Topology)

	// color_write is always written, so its true default only shows when
	// the text leaves the field out.
	bare, err := DeserializeShaderText(`version = 1
stages = [ { type = "vertex" } ]
`)
	require.NoError(t, err)
	assert.True(t, bare.ColorWrite)
}

func TestShaderTextRejectsMissingStages(t *testing.T) {
	_, err := DeserializeShaderText(`version = 1
stages = []
`)
	assert.Error(t, err)
}
