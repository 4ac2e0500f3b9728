package assets

// ShaderStage is one pipeline stage's source reference.
type ShaderStage struct {
	Type            ShaderStageType
	SourceAssetName string
	PackageName     string
}

// ShaderAttribute is one named vertex input attribute.
type ShaderAttribute struct {
	Type ShaderUniformType
	Name string
}

// ShaderUniform is one named uniform declaration within a scope.
// Size is required and meaningful only for Type == UniformStruct;
// ArraySize is written only when greater than one (spec.md §4.4).
type ShaderUniform struct {
	Type      ShaderUniformType
	Name      string
	Size      uint32
	ArraySize uint32
}

// ShaderUniforms buckets uniform declarations by update frequency,
// mirroring the original engine's per_frame/per_group/per_draw scopes.
type ShaderUniforms struct {
	PerFrame []ShaderUniform
	PerGroup []ShaderUniform
	PerDraw  []ShaderUniform
}

// Shader is the text (BSON) shader asset (spec.md §4.4). Missing
// Topology defaults to {triangle_list} with a warning; missing
// CullMode defaults to "back"; ColorWrite defaults true; the other
// pipeline-state flags default false.
type Shader struct {
	Base

	Version    uint32
	MaxGroups  uint32
	MaxDrawIDs uint32

	DepthTest         bool
	DepthWrite        bool
	StencilTest       bool
	StencilWrite      bool
	SupportsWireframe bool
	ColorRead         bool
	ColorWrite        bool

	CullMode ShaderCullMode
	Topology []ShaderTopology

	Stages     []ShaderStage
	Attributes []ShaderAttribute
	Uniforms   ShaderUniforms
}
