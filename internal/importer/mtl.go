package importer

import (
	"bufio"
	"strings"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/intern"
)

// mtlMaterial accumulates one "newmtl" block's texture map references.
type mtlMaterial struct {
	name       string
	albedo     string
	normal     string
	metallic   string
	roughness  string
	ao         string
	emissive   string
}

// parseMTL converts a Wavefront MTL file into sibling material assets,
// grounded on basset_importer_static_mesh_obj.c's MTL-processing block
// and obj_mtl_serializer.h's map-channel vocabulary. Only the texture
// map statements the original maps onto a basset_material channel are
// recognized (map_Kd, map_Bump or bump, map_Pm, map_Pr, map_Ke); anything else is
// ignored, matching the original's per-channel switch that silently
// skips unsupported channels (e.g. Phong specular, clear coat).
func parseMTL(data []byte, mtlPath string) ([]Sibling, error) {
	var materials []*mtlMaterial
	var current *mtlMaterial

	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				continue
			}
			current = &mtlMaterial{name: fields[1]}
			materials = append(materials, current)
		case "map_Kd":
			if current != nil && len(fields) >= 2 {
				current.albedo = lastField(fields)
			}
		case "map_Bump", "bump":
			if current != nil && len(fields) >= 2 {
				current.normal = lastField(fields)
			}
		case "map_Pm":
			if current != nil && len(fields) >= 2 {
				current.metallic = lastField(fields)
			}
		case "map_Pr":
			if current != nil && len(fields) >= 2 {
				current.roughness = lastField(fields)
			}
		case "map_Ke":
			if current != nil && len(fields) >= 2 {
				current.emissive = lastField(fields)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	siblings := make([]Sibling, 0, len(materials))
	for _, m := range materials {
		mat := &assets.Material{MaterialType: "standard", Version: assets.MaterialFileVersion}
		mat.Base.Type = assets.TypeMaterial
		mat.Base.Name = intern.NewName(m.name)

		addMap := func(name, image string) {
			if image == "" {
				return
			}
			mat.Maps = append(mat.Maps, assets.MaterialMap{
				Name:           name,
				ImageAssetName: image,
				FilterMin:      assets.TextureFilterLinear,
				FilterMag:      assets.TextureFilterLinear,
				RepeatU:        assets.TextureRepeatRepeat,
				RepeatV:        assets.TextureRepeatRepeat,
			})
		}
		addMap("albedo", m.albedo)
		addMap("normal", m.normal)
		addMap("emissive", m.emissive)
		if m.metallic != "" {
			mat.Maps = append(mat.Maps, assets.MaterialMap{
				Name: "metallic", ImageAssetName: m.metallic, Channel: assets.MaterialMapChannelR,
				FilterMin: assets.TextureFilterLinear, FilterMag: assets.TextureFilterLinear,
				RepeatU: assets.TextureRepeatRepeat, RepeatV: assets.TextureRepeatRepeat,
			})
		}
		if m.roughness != "" {
			mat.Maps = append(mat.Maps, assets.MaterialMap{
				Name: "roughness", ImageAssetName: m.roughness, Channel: assets.MaterialMapChannelR,
				FilterMin: assets.TextureFilterLinear, FilterMag: assets.TextureFilterLinear,
				RepeatU: assets.TextureRepeatRepeat, RepeatV: assets.TextureRepeatRepeat,
			})
		}

		siblings = append(siblings, Sibling{
			TypeName:  "material",
			AssetName: m.name,
			Asset:     mat,
		})
	}
	_ = mtlPath
	return siblings, nil
}

// lastField returns the final whitespace-separated field, which for a
// map_* statement is the image filename (options like "-bm 1.0" may
// precede it).
func lastField(fields []string) string {
	return fields[len(fields)-1]
}
