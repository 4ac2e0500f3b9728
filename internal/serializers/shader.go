package serializers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/intern"
	"github.com/standardbeagle/goassets/internal/logx"
)

const currentShaderVersion = 1

// SerializeShaderText renders a Shader to BSON text (spec.md §4.4).
// At least one stage is required; an empty Stages slice is a fatal
// serialize error.
func SerializeShaderText(a *assets.Shader) (string, error) {
	if len(a.Stages) == 0 {
		return "", errs.NewSerializeError("shader", "stages", errNoStages)
	}

	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetInt(root, "version", currentShaderVersion)
	bson.SetInt(root, "max_groups", int64(a.MaxGroups))
	bson.SetInt(root, "max_draw_ids", int64(a.MaxDrawIDs))
	bson.SetBool(root, "depth_test", a.DepthTest)
	bson.SetBool(root, "depth_write", a.DepthWrite)
	bson.SetBool(root, "stencil_test", a.StencilTest)
	bson.SetBool(root, "stencil_write", a.StencilWrite)
	bson.SetBool(root, "supports_wireframe", a.SupportsWireframe)
	bson.SetBool(root, "color_read", a.ColorRead)
	bson.SetBool(root, "color_write", a.ColorWrite)

	cullMode := a.CullMode
	if cullMode == "" {
		cullMode = assets.CullModeBack
	}
	bson.SetString(root, "cull_mode", string(cullMode))

	topologies := bson.NewObjectOf(bson.ObjectKindArray)
	if len(a.Topology) == 0 {
		logx.Warnf("shader %q has no topology_types set, defaulting to triangle_list", intern.NameString(a.Name))
		bson.AppendString(topologies, string(assets.TopologyTriangleList))
	} else {
		for _, t := range a.Topology {
			bson.AppendString(topologies, string(t))
		}
	}
	bson.SetObject(root, "topology_types", topologies)

	stages := bson.NewObjectOf(bson.ObjectKindArray)
	for _, s := range a.Stages {
		so := bson.NewObjectOf(bson.ObjectKindObject)
		bson.SetString(so, "type", string(s.Type))
		if s.SourceAssetName != "" {
			bson.SetString(so, "source_asset_name", s.SourceAssetName)
		}
		if s.PackageName != "" {
			bson.SetString(so, "package_name", s.PackageName)
		}
		bson.AppendObject(stages, so)
	}
	bson.SetObject(root, "stages", stages)

	if len(a.Attributes) > 0 {
		attrs := bson.NewObjectOf(bson.ObjectKindArray)
		for _, at := range a.Attributes {
			ao := bson.NewObjectOf(bson.ObjectKindObject)
			bson.SetString(ao, "type", string(at.Type))
			bson.SetString(ao, "name", at.Name)
			bson.AppendObject(attrs, ao)
		}
		bson.SetObject(root, "attributes", attrs)
	}

	totalUniforms := len(a.Uniforms.PerFrame) + len(a.Uniforms.PerGroup) + len(a.Uniforms.PerDraw)
	if totalUniforms > 0 {
		uniformsObj := bson.NewObjectOf(bson.ObjectKindObject)
		if len(a.Uniforms.PerFrame) > 0 {
			bson.SetObject(uniformsObj, "per_frame", buildUniformArray(a.Uniforms.PerFrame))
		}
		if len(a.Uniforms.PerGroup) > 0 {
			bson.SetObject(uniformsObj, "per_group", buildUniformArray(a.Uniforms.PerGroup))
		}
		if len(a.Uniforms.PerDraw) > 0 {
			bson.SetObject(uniformsObj, "per_draw", buildUniformArray(a.Uniforms.PerDraw))
		}
		bson.SetObject(root, "uniforms", uniformsObj)
	}

	return bson.Write(&bson.Tree{Root: root})
}

func buildUniformArray(uniforms []assets.ShaderUniform) *bson.Object {
	arr := bson.NewObjectOf(bson.ObjectKindArray)
	for _, u := range uniforms {
		uo := bson.NewObjectOf(bson.ObjectKindObject)
		bson.SetString(uo, "type", string(u.Type))
		bson.SetString(uo, "name", u.Name)
		if u.Type == assets.UniformStruct {
			bson.SetInt(uo, "size", int64(u.Size))
		}
		if u.ArraySize > 1 {
			bson.SetInt(uo, "array_size", int64(u.ArraySize))
		}
		bson.AppendObject(arr, uo)
	}
	return arr
}

// DeserializeShaderText is SerializeShaderText's inverse (spec.md
// §4.4). At least one stage is required; its absence is fatal.
func DeserializeShaderText(text string) (*assets.Shader, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("shader", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("shader", "", err)
	}
	root := tree.Root

	version, ok := bson.GetInt(root, "version")
	if !ok {
		return nil, errs.NewSerializeError("shader", "version", errMissingField)
	}

	out := &assets.Shader{Version: uint32(version)}
	out.Base.Type = assets.TypeShader

	if v, ok := bson.GetInt(root, "max_groups"); ok {
		out.MaxGroups = uint32(v)
	}
	if v, ok := bson.GetInt(root, "max_draw_ids"); ok {
		out.MaxDrawIDs = uint32(v)
	}
	out.DepthTest, _ = bson.GetBool(root, "depth_test")
	out.DepthWrite, _ = bson.GetBool(root, "depth_write")
	out.StencilTest, _ = bson.GetBool(root, "stencil_test")
	out.StencilWrite, _ = bson.GetBool(root, "stencil_write")
	out.SupportsWireframe, _ = bson.GetBool(root, "supports_wireframe")
	out.ColorRead, _ = bson.GetBool(root, "color_read")
	if v, ok := bson.GetBool(root, "color_write"); ok {
		out.ColorWrite = v
	} else {
		out.ColorWrite = true
	}

	if cullMode, ok := bson.GetString(root, "cull_mode"); ok && cullMode != "" {
		out.CullMode = assets.ShaderCullMode(cullMode)
	} else {
		out.CullMode = assets.CullModeBack
	}

	if topoArr, ok := bson.GetObject(root, "topology_types"); ok && topoArr.Len() > 0 {
		for i := 0; i < topoArr.Len(); i++ {
			s, ok := bson.GetStringAt(topoArr, i)
			if !ok || s == "" {
				logx.Warnf("shader: unable to extract topology type at index %d, skipping", i)
				continue
			}
			out.Topology = append(out.Topology, assets.ShaderTopology(s))
		}
	}
	if len(out.Topology) == 0 {
		out.Topology = []assets.ShaderTopology{assets.TopologyTriangleList}
	}

	stagesArr, ok := bson.GetObject(root, "stages")
	if !ok || stagesArr.Len() == 0 {
		return nil, errs.NewSerializeError("shader", "stages", errNoStages)
	}
	for i := 0; i < stagesArr.Len(); i++ {
		so, ok := bson.GetObjectAt(stagesArr, i)
		if !ok {
			continue
		}
		var stage assets.ShaderStage
		typeStr, _ := bson.GetString(so, "type")
		stage.Type = assets.ShaderStageType(typeStr)
		stage.SourceAssetName, _ = bson.GetString(so, "source_asset_name")
		stage.PackageName, _ = bson.GetString(so, "package_name")
		out.Stages = append(out.Stages, stage)
	}

	if attrsArr, ok := bson.GetObject(root, "attributes"); ok {
		for i := 0; i < attrsArr.Len(); i++ {
			ao, ok := bson.GetObjectAt(attrsArr, i)
			if !ok {
				continue
			}
			var attr assets.ShaderAttribute
			typeStr, _ := bson.GetString(ao, "type")
			attr.Type = assets.ShaderUniformType(typeStr)
			attr.Name, _ = bson.GetString(ao, "name")
			out.Attributes = append(out.Attributes, attr)
		}
	}

	if uniformsObj, ok := bson.GetObject(root, "uniforms"); ok {
		var err error
		out.Uniforms.PerFrame, err = parseUniformArray(uniformsObj, "per_frame")
		if err != nil {
			return nil, err
		}
		out.Uniforms.PerGroup, err = parseUniformArray(uniformsObj, "per_group")
		if err != nil {
			return nil, err
		}
		out.Uniforms.PerDraw, err = parseUniformArray(uniformsObj, "per_draw")
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

func parseUniformArray(uniformsObj *bson.Object, key string) ([]assets.ShaderUniform, error) {
	arr, ok := bson.GetObject(uniformsObj, key)
	if !ok {
		return nil, nil
	}
	out := make([]assets.ShaderUniform, 0, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		uo, ok := bson.GetObjectAt(arr, i)
		if !ok {
			continue
		}
		typeStr, ok := bson.GetString(uo, "type")
		if !ok {
			return nil, errs.NewSerializeError("shader", "uniform type", errMissingField)
		}
		u := assets.ShaderUniform{Type: assets.ShaderUniformType(typeStr)}
		u.Name, _ = bson.GetString(uo, "name")
		if u.Type == assets.UniformStruct {
			size, ok := bson.GetInt(uo, "size")
			if !ok || size < 0 {
				return nil, errs.NewSerializeError("shader", "uniform size", errMissingField)
			}
			u.Size = uint32(size)
		}
		if arrSize, ok := bson.GetInt(uo, "array_size"); ok && arrSize > 0 {
			u.ArraySize = uint32(arrSize)
		}
		out = append(out, u)
	}
	return out, nil
}
