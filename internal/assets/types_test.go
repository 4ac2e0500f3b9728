package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeStringNamesEveryKnownType(t *testing.T) {
	want := map[Type]string{
		TypeImage:            "image",
		TypeStaticMesh:       "static_mesh",
		TypeBitmapFont:       "bitmap_font",
		TypeSystemFont:       "system_font",
		TypeHeightmapTerrain: "heightmap_terrain",
		TypeBSON:             "bson",
		TypeMaterial:         "material",
		TypeShader:           "shader",
		TypeScene:            "scene",
		TypeAudio:            "audio",
	}
	for ty, name := range want {
		assert.Equal(t, name, ty.String())
	}
	assert.Equal(t, "unknown", Type(999).String())
}

func TestBaseLoadedReflectsGeneration(t *testing.T) {
	var b Base
	assert.False(t, b.Loaded())

	b.Generation = GenerationInvalid
	assert.False(t, b.Loaded())

	b.Generation = 1
	assert.True(t, b.Loaded())
}

func TestImageFormatChannelCount(t *testing.T) {
	assert.Equal(t, uint32(1), ImageFormatR8.ChannelCount())
	assert.Equal(t, uint32(2), ImageFormatRG8.ChannelCount())
	assert.Equal(t, uint32(3), ImageFormatRGB8.ChannelCount())
	assert.Equal(t, uint32(4), ImageFormatRGBA8.ChannelCount())
	assert.Equal(t, uint32(0), ImageFormatUnknown.ChannelCount())
}
