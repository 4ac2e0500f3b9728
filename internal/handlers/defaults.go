package handlers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/scene"
	"github.com/standardbeagle/goassets/internal/serializers"
)

// RegisterDefaults wires a Handler for every asset type this module
// knows how to (de)serialize (spec.md §4.4, §4.5). System font additionally
// gets its secondary-TTF-fetch override (see systemfont.go).
func RegisterDefaults(r *Registry) {
	r.Register(&Handler{
		Type:              assets.TypeImage,
		TypeName:          "image",
		IsBinary:          true,
		New:               func() any { return &assets.Image{} },
		BinarySerialize:   func(a any) ([]byte, error) { return serializers.SerializeImage(a.(*assets.Image)) },
		BinaryDeserialize: func(buf []byte) (any, error) { return serializers.DeserializeImage(buf) },
	})

	r.Register(&Handler{
		Type:              assets.TypeStaticMesh,
		TypeName:          "static_mesh",
		IsBinary:          true,
		New:               func() any { return &assets.StaticMesh{} },
		BinarySerialize:   func(a any) ([]byte, error) { return serializers.SerializeStaticMesh(a.(*assets.StaticMesh)) },
		BinaryDeserialize: func(buf []byte) (any, error) { return serializers.DeserializeStaticMesh(buf) },
	})

	r.Register(&Handler{
		Type:              assets.TypeBitmapFont,
		TypeName:          "bitmap_font",
		IsBinary:          true,
		New:               func() any { return &assets.BitmapFont{} },
		BinarySerialize:   func(a any) ([]byte, error) { return serializers.SerializeBitmapFont(a.(*assets.BitmapFont)) },
		BinaryDeserialize: func(buf []byte) (any, error) { return serializers.DeserializeBitmapFont(buf) },
	})

	r.Register(&Handler{
		Type:            assets.TypeSystemFont,
		TypeName:        "system_font",
		IsBinary:        false,
		New:             func() any { return &assets.SystemFont{} },
		TextSerialize:   func(a any) (string, error) { return serializers.SerializeSystemFontText(a.(*assets.SystemFont)) },
		TextDeserialize: func(text string) (any, error) { return serializers.DeserializeSystemFontText(text) },
		RequestAsset:    systemFontRequestAsset,
	})

	r.Register(&Handler{
		Type:     assets.TypeHeightmapTerrain,
		TypeName: "heightmap_terrain",
		IsBinary: false,
		New:      func() any { return &assets.HeightmapTerrain{} },
		TextSerialize: func(a any) (string, error) {
			return serializers.SerializeHeightmapTerrainText(a.(*assets.HeightmapTerrain))
		},
		TextDeserialize: func(text string) (any, error) { return serializers.DeserializeHeightmapTerrainText(text) },
	})

	r.Register(&Handler{
		Type:            assets.TypeBSON,
		TypeName:        "bson",
		IsBinary:        false,
		New:             func() any { return &assets.BSONAsset{} },
		TextSerialize:   func(a any) (string, error) { return serializers.SerializeBSONAssetText(a.(*assets.BSONAsset)) },
		TextDeserialize: func(text string) (any, error) { return serializers.DeserializeBSONAssetText(text) },
	})

	r.Register(&Handler{
		Type:            assets.TypeMaterial,
		TypeName:        "material",
		IsBinary:        false,
		New:             func() any { return &assets.Material{} },
		TextSerialize:   func(a any) (string, error) { return serializers.SerializeMaterialText(a.(*assets.Material)) },
		TextDeserialize: func(text string) (any, error) { return serializers.DeserializeMaterialText(text) },
	})

	r.Register(&Handler{
		Type:            assets.TypeShader,
		TypeName:        "shader",
		IsBinary:        false,
		New:             func() any { return &assets.Shader{} },
		TextSerialize:   func(a any) (string, error) { return serializers.SerializeShaderText(a.(*assets.Shader)) },
		TextDeserialize: func(text string) (any, error) { return serializers.DeserializeShaderText(text) },
	})

	r.Register(&Handler{
		Type:            assets.TypeScene,
		TypeName:        "scene",
		IsBinary:        false,
		New:             func() any { return &scene.Scene{} },
		TextSerialize:   func(a any) (string, error) { return scene.SerializeText(a.(*scene.Scene)) },
		TextDeserialize: func(text string) (any, error) { return scene.DeserializeText(text) },
	})

	r.Register(&Handler{
		Type:              assets.TypeAudio,
		TypeName:          "audio",
		IsBinary:          true,
		New:               func() any { return &assets.Audio{} },
		BinarySerialize:   func(a any) ([]byte, error) { return serializers.SerializeAudio(a.(*assets.Audio)) },
		BinaryDeserialize: func(buf []byte) (any, error) { return serializers.DeserializeAudio(buf) },
	})
}
