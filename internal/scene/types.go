// Package scene implements the scene graph asset (spec.md §4.4): a
// tree of nodes carrying optional transforms and a fixed vocabulary of
// typed attachments, with v1/v2 text-format migration.
package scene

import "github.com/standardbeagle/goassets/internal/assets"

// CurrentVersion is the version always written by SerializeText.
const CurrentVersion = 2

// AttachmentType is one of the fixed attachment kinds a node may carry
// (spec.md §4.4's table).
type AttachmentType string

const (
	AttachmentSkybox           AttachmentType = "skybox"
	AttachmentDirectionalLight AttachmentType = "directional-light"
	AttachmentPointLight       AttachmentType = "point-light"
	AttachmentAudioEmitter     AttachmentType = "audio-emitter"
	AttachmentStaticMesh       AttachmentType = "static-mesh"
	AttachmentHeightmapTerrain AttachmentType = "heightmap-terrain"
	AttachmentWaterPlane       AttachmentType = "water-plane"
	AttachmentVolume           AttachmentType = "volume"
	AttachmentHitSphere        AttachmentType = "hit-sphere"
)

// VolumeShapeType selects which shape field on a VolumeAttachment is
// populated.
type VolumeShapeType string

const (
	VolumeShapeSphere    VolumeShapeType = "sphere"
	VolumeShapeRectangle VolumeShapeType = "rectangle"
)

// VolumeType is the sole supported volume kind; others fail deserialize.
type VolumeType string

const VolumeTypeTrigger VolumeType = "trigger"

// SkyboxAttachment renders a sky cubemap.
type SkyboxAttachment struct {
	CubemapImageAssetName string
	PackageName           string
}

// DirectionalLightAttachment is a directional (sun-like) light source.
type DirectionalLightAttachment struct {
	Color              [4]float32
	Direction          [4]float32
	ShadowDistance     float32
	ShadowFadeDistance float32
	ShadowSplitMult    float32
}

// PointLightAttachment is an omnidirectional light source.
type PointLightAttachment struct {
	Color     [4]float32
	Position  [4]float32
	ConstantF float32
	Linear    float32
	Quadratic float32
}

// Audio attenuation defaults applied when the corresponding field is
// absent from an audio-emitter attachment (spec.md §4.4).
const (
	DefaultAudioVolume      float32 = 1.0
	DefaultAudioInnerRadius float32 = 1.0
	DefaultAudioOuterRadius float32 = 10.0
	DefaultAudioFalloff     float32 = 1.0
)

// AudioEmitterAttachment plays a positioned audio resource.
type AudioEmitterAttachment struct {
	AudioResourceName        string
	AudioResourcePackageName string
	Volume                   float32
	IsLooping                bool
	InnerRadius              float32
	OuterRadius              float32
	Falloff                  float32
	IsStreaming               bool
}

// StaticMeshAttachment references a static mesh asset.
type StaticMeshAttachment struct {
	AssetName   string
	PackageName string
}

// HeightmapTerrainAttachment references a heightmap terrain asset.
type HeightmapTerrainAttachment struct {
	AssetName   string
	PackageName string
}

// WaterPlaneAttachment has no fields of its own yet (spec.md §4.4).
type WaterPlaneAttachment struct{}

// VolumeAttachment is a trigger region, sphere- or rectangle-shaped.
type VolumeAttachment struct {
	ShapeType      VolumeShapeType
	Radius         float32   // valid when ShapeType == VolumeShapeSphere
	Extents        [3]float32 // valid when ShapeType == VolumeShapeRectangle
	VolumeType     VolumeType
	OnEnter        string
	OnLeave        string
	OnUpdate       string
	HitSphereTags  []string
}

// HitSphereAttachment is a simple spherical collider.
type HitSphereAttachment struct {
	Radius float32
}

// Attachment is one typed attachment on a node. Exactly the field
// matching Type is meaningful.
type Attachment struct {
	Name string
	Type AttachmentType
	Tags []string

	Skybox           *SkyboxAttachment
	DirectionalLight *DirectionalLightAttachment
	PointLight       *PointLightAttachment
	AudioEmitter     *AudioEmitterAttachment
	StaticMesh       *StaticMeshAttachment
	HeightmapTerrain *HeightmapTerrainAttachment
	WaterPlane       *WaterPlaneAttachment
	Volume           *VolumeAttachment
	HitSphere        *HitSphereAttachment
}

// Node is one element of the scene tree.
type Node struct {
	Name        string
	Xform       string
	Attachments []Attachment
	Children    []Node
}

// Scene is the text (BSON) scene asset (spec.md §4.4).
type Scene struct {
	assets.Base

	Version     uint32
	Description string
	Nodes       []Node
}
