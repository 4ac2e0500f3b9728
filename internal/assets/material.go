package assets

// MaterialFileVersion is the only text material version this package
// accepts. Versions 1 and 2 existed in the original engine but are
// not auto-migrated (spec.md §4.4): a mismatch is a fatal deserialize
// error, not a silent upgrade.
const MaterialFileVersion = 3

// MaterialPropertyType is the declared type of a material property
// value, reusing the shader uniform type vocabulary where it overlaps.
type MaterialPropertyType string

const (
	MaterialPropInt     MaterialPropertyType = "int"
	MaterialPropFloat32 MaterialPropertyType = "f32"
	MaterialPropVec2    MaterialPropertyType = "vec2"
	MaterialPropVec3    MaterialPropertyType = "vec3"
	MaterialPropVec4    MaterialPropertyType = "vec4"
	MaterialPropMat4    MaterialPropertyType = "mat4"

	// MaterialPropCustom is an engine-defined property whose value isn't
	// representable in this format: only its byte Size is stored, and a
	// warning is logged on write (spec.md §4.4).
	MaterialPropCustom MaterialPropertyType = "custom"
)

// MaterialProperty is one named scalar/vector value on a material.
// IntValue holds the value for MaterialPropInt; Value holds it for the
// float/vec/mat types (length 1, 2, 3, 4, or 16 respectively); Size
// holds it for MaterialPropCustom, whose actual value is never
// round-tripped.
type MaterialProperty struct {
	Name     string
	Type     MaterialPropertyType
	Value    []float32
	IntValue int64
	Size     uint32
}

// MaterialMap binds one texture slot (e.g. "albedo", "normal") to a
// source image asset and its sampling state. Name is the map's logical
// slot; Channel isolates a single channel within a packed texture
// (spec.md §9's documented name/channel separation).
type MaterialMap struct {
	Name            string
	ImageAssetName  string
	FilterMin       TextureFilter
	FilterMag       TextureFilter
	RepeatU         TextureRepeat
	RepeatV         TextureRepeat
	RepeatW         TextureRepeat
	Channel         MaterialMapChannel
}

// Material is the text (BSON) material asset (spec.md §4.4).
// MaterialType holds the root object's "type" field (e.g. "standard",
// "pbr"); Base.Type is the asset-type tag and is deliberately distinct.
type Material struct {
	Base

	Version      uint32
	MaterialType string
	Properties   []MaterialProperty
	Maps         []MaterialMap
}
