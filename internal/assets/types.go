// Package assets defines the in-memory asset base record and the
// per-type payload structs described in spec.md §3-§4.4.
package assets

import "github.com/standardbeagle/goassets/internal/intern"

// Type tags an asset's kind. Values double as the binary container's
// `type` field (spec.md §3).
type Type uint32

const (
	TypeUnknown Type = iota
	TypeImage
	TypeStaticMesh
	TypeBitmapFont
	TypeSystemFont
	TypeHeightmapTerrain
	TypeBSON
	TypeMaterial
	TypeShader
	TypeScene
	TypeAudio
)

func (t Type) String() string {
	switch t {
	case TypeImage:
		return "image"
	case TypeStaticMesh:
		return "static_mesh"
	case TypeBitmapFont:
		return "bitmap_font"
	case TypeSystemFont:
		return "system_font"
	case TypeHeightmapTerrain:
		return "heightmap_terrain"
	case TypeBSON:
		return "bson"
	case TypeMaterial:
		return "material"
	case TypeShader:
		return "shader"
	case TypeScene:
		return "scene"
	case TypeAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// GenerationInvalid marks an asset as not (yet, or no longer) loaded.
const GenerationInvalid uint32 = 0

// Metadata is the per-asset metadata block (spec.md §3).
type Metadata struct {
	Version         uint32
	SourceAssetPath string
	Tags            []string
}

// Base is the record every asset carries regardless of type (spec.md
// §3's "Asset base record"). Per-type structs embed Base.
type Base struct {
	ID          uint64
	Generation  uint32
	Size        uint64
	Name        intern.Name
	PackageName intern.Name
	Type        Type
	Metadata    Metadata
	// WatchID is non-zero once the asset's primary file has an active
	// filesystem watch registered against it (spec.md §3, §9).
	WatchID uint32
}

// Loaded reports whether the asset has completed a successful
// (re)load (spec.md §3 invariant: generation != invalid after success).
func (b *Base) Loaded() bool { return b.Generation != GenerationInvalid }
