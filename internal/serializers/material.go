package serializers

import (
	"strconv"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/intern"
	"github.com/standardbeagle/goassets/internal/logx"
)

// SerializeMaterialText renders a Material to BSON text (spec.md
// §4.4). Always writes assets.MaterialFileVersion.
func SerializeMaterialText(a *assets.Material) (string, error) {
	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetString(root, "type", a.MaterialType)
	bson.SetString(root, "name", intern.NameString(a.Name))
	bson.SetInt(root, "version", int64(assets.MaterialFileVersion))

	props := bson.NewObjectOf(bson.ObjectKindArray)
	for _, p := range a.Properties {
		po := bson.NewObjectOf(bson.ObjectKindObject)
		bson.SetString(po, "name", p.Name)
		bson.SetString(po, "type", string(p.Type))
		switch p.Type {
		case assets.MaterialPropInt:
			bson.SetInt(po, "value", p.IntValue)
		case assets.MaterialPropFloat32:
			if len(p.Value) > 0 {
				bson.SetFloat(po, "value", p.Value[0])
			}
		case assets.MaterialPropVec2, assets.MaterialPropVec3, assets.MaterialPropVec4, assets.MaterialPropMat4:
			bson.SetString(po, "value", formatVecValue(p.Value))
		case assets.MaterialPropCustom:
			bson.SetInt(po, "size", int64(p.Size))
			logx.Warnf("material %q: property %q is custom, value not written (size only)", a.Name, p.Name)
		default:
			logx.Warnf("material %q: property %q has unrecognized type %q, value not written", a.Name, p.Name, p.Type)
		}
		bson.AppendObject(props, po)
	}
	bson.SetObject(root, "properties", props)

	maps := bson.NewObjectOf(bson.ObjectKindArray)
	for _, m := range a.Maps {
		mo := bson.NewObjectOf(bson.ObjectKindObject)
		bson.SetString(mo, "name", m.Name)
		bson.SetString(mo, "image_asset_name", m.ImageAssetName)
		bson.SetString(mo, "filter_min", string(m.FilterMin))
		bson.SetString(mo, "filter_mag", string(m.FilterMag))
		bson.SetString(mo, "repeat_u", string(m.RepeatU))
		bson.SetString(mo, "repeat_v", string(m.RepeatV))
		bson.SetString(mo, "repeat_w", string(m.RepeatW))
		if m.Channel != "" {
			bson.SetString(mo, "channel", string(m.Channel))
		}
		bson.AppendObject(maps, mo)
	}
	bson.SetObject(root, "maps", maps)

	return bson.Write(&bson.Tree{Root: root})
}

// DeserializeMaterialText is SerializeMaterialText's inverse. Versions
// 1 and 2 are rejected outright; there is no auto-migration (spec.md
// §4.4).
func DeserializeMaterialText(text string) (*assets.Material, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("material", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("material", "", err)
	}
	root := tree.Root

	version, ok := bson.GetInt(root, "version")
	if !ok {
		return nil, errs.NewSerializeError("material", "version", errMissingField)
	}
	if version != int64(assets.MaterialFileVersion) {
		return nil, errs.NewSerializeError("material", "version", errUnsupportedMaterialVersion)
	}

	out := &assets.Material{Version: uint32(version)}
	out.Base.Type = assets.TypeMaterial
	if typ, ok := bson.GetString(root, "type"); ok {
		out.MaterialType = typ
	}
	if name, ok := bson.GetString(root, "name"); ok && name != "" {
		out.Name = intern.NewName(name)
	}

	if propsObj, ok := bson.GetObject(root, "properties"); ok {
		for i := 0; i < propsObj.Len(); i++ {
			po, ok := bson.GetObjectAt(propsObj, i)
			if !ok {
				continue
			}
			name, _ := bson.GetString(po, "name")
			typeStr, _ := bson.GetString(po, "type")
			prop := assets.MaterialProperty{Name: name, Type: assets.MaterialPropertyType(typeStr)}
			switch prop.Type {
			case assets.MaterialPropInt:
				if v, ok := bson.GetInt(po, "value"); ok {
					prop.IntValue = v
				}
			case assets.MaterialPropFloat32:
				if v, ok := bson.GetFloat(po, "value"); ok {
					prop.Value = []float32{v}
				}
			case assets.MaterialPropVec2:
				if v, ok := bson.GetVec2(po, "value"); ok {
					prop.Value = v[:]
				}
			case assets.MaterialPropVec3:
				if v, ok := bson.GetVec3(po, "value"); ok {
					prop.Value = v[:]
				}
			case assets.MaterialPropVec4:
				if v, ok := bson.GetVec4(po, "value"); ok {
					prop.Value = v[:]
				}
			case assets.MaterialPropMat4:
				if v, ok := bson.GetMat4(po, "value"); ok {
					prop.Value = v[:]
				}
			case assets.MaterialPropCustom:
				if v, ok := bson.GetInt(po, "size"); ok {
					prop.Size = uint32(v)
				}
			default:
				logx.Warnf("material: property %q has unrecognized type %q", name, typeStr)
			}
			out.Properties = append(out.Properties, prop)
		}
	}

	if mapsObj, ok := bson.GetObject(root, "maps"); ok {
		for i := 0; i < mapsObj.Len(); i++ {
			mo, ok := bson.GetObjectAt(mapsObj, i)
			if !ok {
				continue
			}
			m := assets.MaterialMap{}
			m.Name, _ = bson.GetString(mo, "name")
			m.ImageAssetName, _ = bson.GetString(mo, "image_asset_name")
			filterMin, _ := bson.GetString(mo, "filter_min")
			m.FilterMin = assets.TextureFilter(filterMin)
			filterMag, _ := bson.GetString(mo, "filter_mag")
			m.FilterMag = assets.TextureFilter(filterMag)
			ru, _ := bson.GetString(mo, "repeat_u")
			m.RepeatU = assets.TextureRepeat(ru)
			rv, _ := bson.GetString(mo, "repeat_v")
			m.RepeatV = assets.TextureRepeat(rv)
			rw, _ := bson.GetString(mo, "repeat_w")
			m.RepeatW = assets.TextureRepeat(rw)
			channel, _ := bson.GetString(mo, "channel")
			m.Channel = assets.MaterialMapChannel(channel)
			out.Maps = append(out.Maps, m)
		}
	}

	return out, nil
}

func formatVecValue(v []float32) string {
	s := ""
	for i, f := range v {
		if i > 0 {
			s += " "
		}
		s += strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return s
}
