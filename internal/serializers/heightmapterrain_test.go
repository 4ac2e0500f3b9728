package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

func TestHeightmapTerrainTextRoundTrip(t *testing.T) {
	in := &assets.HeightmapTerrain{
		Version:           3,
		HeightmapFilename: "world.png",
		ChunkSize:         64,
		TileScale:         [3]float32{2, 1, 2},
		MaterialNames:     []string{"grass", "rock"},
	}
	text, err := SerializeHeightmapTerrainText(in)
	require.NoError(t, err)

	out, err := DeserializeHeightmapTerrainText(text)
	require.NoError(t, err)
	assert.Equal(t, in.Version, out.Version)
	assert.Equal(t, in.HeightmapFilename, out.HeightmapFilename)
	assert.Equal(t, in.ChunkSize, out.ChunkSize)
	assert.Equal(t, in.TileScale, out.TileScale)
	assert.Equal(t, in.MaterialNames, out.MaterialNames)
	assert.Equal(t, assets.TypeHeightmapTerrain, out.Type)
}

func TestHeightmapTerrainTextDefaultsTileScale(t *testing.T) {
	in := &assets.HeightmapTerrain{
		Version:           1,
		HeightmapFilename: "flat.png",
		ChunkSize:         32,
		MaterialNames:     []string{""},
	}
	text, err := SerializeHeightmapTerrainText(in)
	require.NoError(t, err)

	out, err := DeserializeHeightmapTerrainText(text)
	require.NoError(t, err)
	assert.Equal(t, assets.DefaultTileScale, out.TileScale)
	assert.Equal(t, []string{assets.DefaultTerrainMaterial}, out.MaterialNames)
}

func TestHeightmapTerrainTextRequiresVersion(t *testing.T) {
	_, err := DeserializeHeightmapTerrainText(`heightmap_filename = "x.png"
chunk_size = 1
material_names = []
`)
	assert.Error(t, err)
}
