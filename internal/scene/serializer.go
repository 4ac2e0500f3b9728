package scene

import (
	"strings"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/logx"
)

// SerializeText renders a Scene to BSON text (spec.md §4.4). Always
// writes the current version; there is no path back to v1 output.
func SerializeText(s *Scene) (string, error) {
	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetInt(root, "version", int64(CurrentVersion))
	if s.Description != "" {
		bson.SetString(root, "description", s.Description)
	}

	if len(s.Nodes) > 0 {
		nodes := bson.NewObjectOf(bson.ObjectKindArray)
		for _, n := range s.Nodes {
			nodeObj, err := serializeNode(&n)
			if err != nil {
				return "", err
			}
			bson.AppendObject(nodes, nodeObj)
		}
		bson.SetObject(root, "nodes", nodes)
	}

	return bson.Write(&bson.Tree{Root: root})
}

func serializeNode(n *Node) (*bson.Object, error) {
	obj := bson.NewObjectOf(bson.ObjectKindObject)
	if n.Name != "" {
		bson.SetString(obj, "name", n.Name)
	}
	if n.Xform != "" {
		bson.SetString(obj, "xform", n.Xform)
	}

	if len(n.Attachments) > 0 {
		attachments := bson.NewObjectOf(bson.ObjectKindArray)
		for _, a := range n.Attachments {
			attObj, err := serializeAttachment(&a)
			if err != nil {
				return nil, err
			}
			bson.AppendObject(attachments, attObj)
		}
		bson.SetObject(obj, "attachments", attachments)
	}

	if len(n.Children) > 0 {
		children := bson.NewObjectOf(bson.ObjectKindArray)
		for _, c := range n.Children {
			childObj, err := serializeNode(&c)
			if err != nil {
				return nil, err
			}
			bson.AppendObject(children, childObj)
		}
		bson.SetObject(obj, "children", children)
	}

	return obj, nil
}

func serializeAttachmentBase(obj *bson.Object, a *Attachment) {
	if a.Name != "" {
		bson.SetString(obj, "name", a.Name)
	}
	bson.SetString(obj, "type", string(a.Type))
	if len(a.Tags) > 0 {
		bson.SetString(obj, "tags", strings.Join(a.Tags, "|"))
	}
}

func serializeAttachment(a *Attachment) (*bson.Object, error) {
	obj := bson.NewObjectOf(bson.ObjectKindObject)
	serializeAttachmentBase(obj, a)

	switch a.Type {
	case AttachmentSkybox:
		c := a.Skybox
		bson.SetString(obj, "cubemap_image_asset_name", c.CubemapImageAssetName)
		if c.PackageName != "" {
			bson.SetString(obj, "package_name", c.PackageName)
		}
	case AttachmentDirectionalLight:
		c := a.DirectionalLight
		bson.SetVec4(obj, "color", c.Color)
		bson.SetVec4(obj, "direction", c.Direction)
		bson.SetFloat(obj, "shadow_distance", c.ShadowDistance)
		bson.SetFloat(obj, "shadow_fade_distance", c.ShadowFadeDistance)
		bson.SetFloat(obj, "shadow_split_mult", c.ShadowSplitMult)
	case AttachmentPointLight:
		c := a.PointLight
		bson.SetVec4(obj, "color", c.Color)
		bson.SetVec4(obj, "position", c.Position)
		bson.SetFloat(obj, "constant_f", c.ConstantF)
		bson.SetFloat(obj, "linear", c.Linear)
		bson.SetFloat(obj, "quadratic", c.Quadratic)
	case AttachmentAudioEmitter:
		c := a.AudioEmitter
		bson.SetString(obj, "audio_resource_name", c.AudioResourceName)
		if c.AudioResourcePackageName != "" {
			bson.SetString(obj, "audio_resource_package_name", c.AudioResourcePackageName)
		}
		bson.SetFloat(obj, "volume", c.Volume)
		bson.SetBool(obj, "is_looping", c.IsLooping)
		bson.SetFloat(obj, "inner_radius", c.InnerRadius)
		bson.SetFloat(obj, "outer_radius", c.OuterRadius)
		bson.SetFloat(obj, "falloff", c.Falloff)
		bson.SetBool(obj, "is_streaming", c.IsStreaming)
	case AttachmentStaticMesh:
		c := a.StaticMesh
		bson.SetString(obj, "asset_name", c.AssetName)
		if c.PackageName != "" {
			bson.SetString(obj, "package_name", c.PackageName)
		}
	case AttachmentHeightmapTerrain:
		c := a.HeightmapTerrain
		bson.SetString(obj, "asset_name", c.AssetName)
		if c.PackageName != "" {
			bson.SetString(obj, "package_name", c.PackageName)
		}
	case AttachmentWaterPlane:
		// no fields.
	case AttachmentVolume:
		c := a.Volume
		switch c.ShapeType {
		case VolumeShapeSphere:
			bson.SetString(obj, "shape_type", string(VolumeShapeSphere))
			bson.SetFloat(obj, "radius", c.Radius)
		case VolumeShapeRectangle:
			bson.SetString(obj, "shape_type", string(VolumeShapeRectangle))
			bson.SetVec3(obj, "extents", c.Extents)
		default:
			return nil, errs.NewSerializeError("scene", "shape_type", errUnknownVolumeShape)
		}
		if c.VolumeType != VolumeTypeTrigger {
			return nil, errs.NewSerializeError("scene", "volume_type", errUnsupportedVolumeType)
		}
		bson.SetString(obj, "volume_type", string(VolumeTypeTrigger))
		if c.OnEnter == "" && c.OnLeave == "" && c.OnUpdate == "" {
			logx.Warnf("scene: volume attachment %q has no on_enter/on_leave/on_update command", a.Name)
		}
		if c.OnEnter != "" {
			bson.SetString(obj, "on_enter", c.OnEnter)
		}
		if c.OnLeave != "" {
			bson.SetString(obj, "on_leave", c.OnLeave)
		}
		if c.OnUpdate != "" {
			bson.SetString(obj, "on_update", c.OnUpdate)
		}
		if len(c.HitSphereTags) > 0 {
			bson.SetString(obj, "hit_sphere_tags", strings.Join(c.HitSphereTags, "|"))
		}
	case AttachmentHitSphere:
		c := a.HitSphere
		bson.SetFloat(obj, "radius", c.Radius)
	default:
		return nil, errs.NewSerializeError("scene", "type", errUnknownAttachmentType)
	}

	return obj, nil
}

// DeserializeText is SerializeText's inverse, also accepting the
// legacy v1 format: a root-level "properties" object signals v1, with
// "description" nested inside it and a legacy "name" field ignored
// (spec.md §4.4). Versions greater than CurrentVersion are rejected.
func DeserializeText(text string) (*Scene, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("scene", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("scene", "", err)
	}
	root := tree.Root

	out := &Scene{}
	out.Base.Type = assets.TypeScene

	if props, ok := bson.GetObject(root, "properties"); ok {
		out.Version = 1
		if desc, ok := bson.GetString(props, "description"); ok {
			out.Description = desc
		}
	} else {
		version, ok := bson.GetInt(root, "version")
		if !ok {
			return nil, errs.NewSerializeError("scene", "version", errMissingField)
		}
		if version > CurrentVersion {
			return nil, errs.NewSerializeError("scene", "version", errUnsupportedVersion)
		}
		out.Version = uint32(version)
		if desc, ok := bson.GetString(root, "description"); ok {
			out.Description = desc
		}
	}

	if nodesObj, ok := bson.GetObject(root, "nodes"); ok {
		out.Nodes = make([]Node, 0, nodesObj.Len())
		for i := 0; i < nodesObj.Len(); i++ {
			nodeObj, ok := bson.GetObjectAt(nodesObj, i)
			if !ok {
				logx.Warnf("scene: unable to read node at index %d, skipping", i)
				continue
			}
			node, err := deserializeNode(nodeObj, out.Version)
			if err != nil {
				return nil, err
			}
			out.Nodes = append(out.Nodes, *node)
		}
	}

	return out, nil
}

func deserializeNode(obj *bson.Object, version uint32) (*Node, error) {
	n := &Node{}
	if name, ok := bson.GetString(obj, "name"); ok {
		n.Name = name
	}
	if xform, ok := bson.GetString(obj, "xform"); ok {
		n.Xform = xform
	}

	if attachmentsObj, ok := bson.GetObject(obj, "attachments"); ok {
		n.Attachments = make([]Attachment, 0, attachmentsObj.Len())
		for i := 0; i < attachmentsObj.Len(); i++ {
			attObj, ok := bson.GetObjectAt(attachmentsObj, i)
			if !ok {
				logx.Warnf("scene: unable to read attachment at index %d, skipping", i)
				continue
			}
			att, err := deserializeAttachment(attObj, version)
			if err != nil {
				return nil, err
			}
			n.Attachments = append(n.Attachments, *att)
		}
	}

	if childrenObj, ok := bson.GetObject(obj, "children"); ok {
		n.Children = make([]Node, 0, childrenObj.Len())
		for i := 0; i < childrenObj.Len(); i++ {
			childObj, ok := bson.GetObjectAt(childrenObj, i)
			if !ok {
				logx.Warnf("scene: unable to read child node at index %d, skipping", i)
				continue
			}
			child, err := deserializeNode(childObj, version)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, *child)
		}
	}

	return n, nil
}

func deserializeAttachmentBase(obj *bson.Object) (name string, typ AttachmentType, tags []string, err error) {
	if v, ok := bson.GetString(obj, "name"); ok {
		name = v
	}
	typStr, ok := bson.GetString(obj, "type")
	if !ok {
		return "", "", nil, errs.NewSerializeError("scene", "type", errMissingField)
	}
	typ = AttachmentType(typStr)
	if tagsStr, ok := bson.GetString(obj, "tags"); ok && tagsStr != "" {
		tags = strings.Split(tagsStr, "|")
	}
	return name, typ, tags, nil
}

func deserializeAttachment(obj *bson.Object, version uint32) (*Attachment, error) {
	name, typ, tags, err := deserializeAttachmentBase(obj)
	if err != nil {
		return nil, err
	}
	// "terrain" is a type-string fallback for heightmap-terrain attachments
	// (basset_scene_serializer.c's strings_equali("terrain", type_str)).
	if strings.EqualFold(string(typ), "terrain") {
		typ = AttachmentHeightmapTerrain
	}
	a := &Attachment{Name: name, Type: typ, Tags: tags}

	switch typ {
	case AttachmentSkybox:
		c := &SkyboxAttachment{}
		cubemap, ok := bson.GetString(obj, "cubemap_image_asset_name")
		if !ok && version == 1 {
			cubemap, ok = bson.GetString(obj, "cubemap_name")
		}
		if !ok {
			return nil, errs.NewSerializeError("scene", "cubemap_image_asset_name", errMissingField)
		}
		c.CubemapImageAssetName = cubemap
		if pkg, ok := bson.GetString(obj, "package_name"); ok {
			c.PackageName = pkg
		}
		a.Skybox = c

	case AttachmentDirectionalLight:
		c := &DirectionalLightAttachment{}
		if v, ok := bson.GetVec4(obj, "color"); ok {
			c.Color = v
		}
		if v, ok := bson.GetVec4(obj, "direction"); ok {
			c.Direction = v
		}
		if v, ok := bson.GetFloat(obj, "shadow_distance"); ok {
			c.ShadowDistance = v
		}
		if v, ok := bson.GetFloat(obj, "shadow_fade_distance"); ok {
			c.ShadowFadeDistance = v
		}
		if v, ok := bson.GetFloat(obj, "shadow_split_mult"); ok {
			c.ShadowSplitMult = v
		}
		a.DirectionalLight = c

	case AttachmentPointLight:
		c := &PointLightAttachment{}
		if v, ok := bson.GetVec4(obj, "color"); ok {
			c.Color = v
		}
		if v, ok := bson.GetVec4(obj, "position"); ok {
			c.Position = v
		}
		if v, ok := bson.GetFloat(obj, "constant_f"); ok {
			c.ConstantF = v
		}
		if v, ok := bson.GetFloat(obj, "linear"); ok {
			c.Linear = v
		}
		if v, ok := bson.GetFloat(obj, "quadratic"); ok {
			c.Quadratic = v
		}
		a.PointLight = c

	case AttachmentAudioEmitter:
		c := &AudioEmitterAttachment{
			Volume:      DefaultAudioVolume,
			InnerRadius: DefaultAudioInnerRadius,
			OuterRadius: DefaultAudioOuterRadius,
			Falloff:     DefaultAudioFalloff,
		}
		resName, ok := bson.GetString(obj, "audio_resource_name")
		if !ok {
			return nil, errs.NewSerializeError("scene", "audio_resource_name", errMissingField)
		}
		c.AudioResourceName = resName
		if pkg, ok := bson.GetString(obj, "audio_resource_package_name"); ok {
			c.AudioResourcePackageName = pkg
		}
		if v, ok := bson.GetFloat(obj, "volume"); ok {
			c.Volume = v
		}
		if v, ok := bson.GetBool(obj, "is_looping"); ok {
			c.IsLooping = v
		}
		if v, ok := bson.GetFloat(obj, "inner_radius"); ok {
			c.InnerRadius = v
		}
		if v, ok := bson.GetFloat(obj, "outer_radius"); ok {
			c.OuterRadius = v
		}
		if v, ok := bson.GetFloat(obj, "falloff"); ok {
			c.Falloff = v
		}
		if v, ok := bson.GetBool(obj, "is_streaming"); ok {
			c.IsStreaming = v
		}
		a.AudioEmitter = c

	case AttachmentStaticMesh:
		c := &StaticMeshAttachment{}
		assetName, ok := bson.GetString(obj, "asset_name")
		if !ok && version == 1 {
			assetName, ok = bson.GetString(obj, "resource_name")
		}
		if !ok {
			return nil, errs.NewSerializeError("scene", "asset_name", errMissingField)
		}
		c.AssetName = assetName
		if pkg, ok := bson.GetString(obj, "package_name"); ok {
			c.PackageName = pkg
		}
		a.StaticMesh = c

	case AttachmentHeightmapTerrain:
		c := &HeightmapTerrainAttachment{}
		assetName, ok := bson.GetString(obj, "asset_name")
		if !ok && version == 1 {
			assetName, ok = bson.GetString(obj, "resource_name")
		}
		if !ok {
			return nil, errs.NewSerializeError("scene", "asset_name", errMissingField)
		}
		c.AssetName = assetName
		if pkg, ok := bson.GetString(obj, "package_name"); ok {
			c.PackageName = pkg
		}
		a.HeightmapTerrain = c

	case AttachmentWaterPlane:
		a.WaterPlane = &WaterPlaneAttachment{}

	case AttachmentVolume:
		c := &VolumeAttachment{}
		shapeStr, ok := bson.GetString(obj, "shape_type")
		if !ok {
			return nil, errs.NewSerializeError("scene", "shape_type", errMissingField)
		}
		c.ShapeType = VolumeShapeType(shapeStr)
		switch c.ShapeType {
		case VolumeShapeSphere:
			if v, ok := bson.GetFloat(obj, "radius"); ok {
				c.Radius = v
			} else {
				return nil, errs.NewSerializeError("scene", "radius", errMissingField)
			}
		case VolumeShapeRectangle:
			if v, ok := bson.GetVec3(obj, "extents"); ok {
				c.Extents = v
			} else {
				return nil, errs.NewSerializeError("scene", "extents", errMissingField)
			}
		default:
			return nil, errs.NewSerializeError("scene", "shape_type", errUnknownVolumeShape)
		}
		volTypeStr, ok := bson.GetString(obj, "volume_type")
		if !ok || VolumeType(volTypeStr) != VolumeTypeTrigger {
			return nil, errs.NewSerializeError("scene", "volume_type", errUnsupportedVolumeType)
		}
		c.VolumeType = VolumeTypeTrigger
		if v, ok := bson.GetString(obj, "on_enter"); ok {
			c.OnEnter = v
		}
		if v, ok := bson.GetString(obj, "on_leave"); ok {
			c.OnLeave = v
		}
		if v, ok := bson.GetString(obj, "on_update"); ok {
			c.OnUpdate = v
		}
		if c.OnEnter == "" && c.OnLeave == "" && c.OnUpdate == "" {
			logx.Warnf("scene: volume attachment %q has no on_enter/on_leave/on_update command", name)
		}
		if tagsStr, ok := bson.GetString(obj, "hit_sphere_tags"); ok && tagsStr != "" {
			c.HitSphereTags = strings.Split(tagsStr, "|")
		}
		a.Volume = c

	case AttachmentHitSphere:
		c := &HitSphereAttachment{}
		if v, ok := bson.GetFloat(obj, "radius"); ok {
			c.Radius = v
		}
		a.HitSphere = c

	default:
		return nil, errs.NewSerializeError("scene", "type", errUnknownAttachmentType)
	}

	return a, nil
}
