package assets

// TextureFilter is a texture sampler filter mode. The string set is
// grounded on original_source's render_type_utils.c.
type TextureFilter string

const (
	TextureFilterLinear  TextureFilter = "linear"
	TextureFilterNearest TextureFilter = "nearest"
)

// TextureRepeat is a texture sampler wrap mode.
type TextureRepeat string

const (
	TextureRepeatRepeat         TextureRepeat = "repeat"
	TextureRepeatClampToEdge    TextureRepeat = "clamp_to_edge"
	TextureRepeatClampToBorder  TextureRepeat = "clamp_to_border"
	TextureRepeatMirroredRepeat TextureRepeat = "mirrored_repeat"
)

// MaterialMapChannel selects a single channel out of a multi-channel
// map, e.g. for packed ORM textures (spec.md §9's name/channel fix).
type MaterialMapChannel string

const (
	MaterialMapChannelR MaterialMapChannel = "R"
	MaterialMapChannelG MaterialMapChannel = "G"
	MaterialMapChannelB MaterialMapChannel = "B"
	MaterialMapChannelA MaterialMapChannel = "A"
)

// ShaderUniformType is a shader uniform's declared type, string set
// grounded on render_type_utils.c.
type ShaderUniformType string

const (
	UniformFloat32    ShaderUniformType = "f32"
	UniformVec2       ShaderUniformType = "vec2"
	UniformVec3       ShaderUniformType = "vec3"
	UniformVec4       ShaderUniformType = "vec4"
	UniformInt8       ShaderUniformType = "i8"
	UniformInt16      ShaderUniformType = "i16"
	UniformInt32      ShaderUniformType = "i32"
	UniformUint8      ShaderUniformType = "u8"
	UniformUint16     ShaderUniformType = "u16"
	UniformUint32     ShaderUniformType = "u32"
	UniformMat4       ShaderUniformType = "mat4"
	UniformSampler1D  ShaderUniformType = "sampler1d"
	UniformSampler2D  ShaderUniformType = "sampler2d"
	UniformSampler3D  ShaderUniformType = "sampler3d"
	UniformSampler1DArray ShaderUniformType = "sampler1dArray"
	UniformSampler2DArray ShaderUniformType = "sampler2dArray"
	UniformSamplerCube    ShaderUniformType = "samplerCube"
	UniformSamplerCubeArray ShaderUniformType = "samplerCubeArray"
	UniformStruct     ShaderUniformType = "struct"
	UniformCustom     ShaderUniformType = "custom"
)

// ShaderTopology is a primitive topology name.
type ShaderTopology string

const (
	TopologyTriangleList ShaderTopology = "triangle_list"
	TopologyLineList     ShaderTopology = "line_list"
	TopologyPointList    ShaderTopology = "point_list"
)

// ShaderCullMode is a face-culling mode.
type ShaderCullMode string

const (
	CullModeNone  ShaderCullMode = "none"
	CullModeFront ShaderCullMode = "front"
	CullModeBack  ShaderCullMode = "back"
	CullModeFrontAndBack ShaderCullMode = "front_and_back"
)

// ShaderStageType is a pipeline stage kind.
type ShaderStageType string

const (
	StageVertex   ShaderStageType = "vertex"
	StageFragment ShaderStageType = "fragment"
	StageCompute  ShaderStageType = "compute"
)
