package importer

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/errs"
)

// objFaceVertex is one "v/vt/vn" triple in a face line. Indices are
// 1-based in the file and may be negative (relative to the current
// end of the corresponding array); 0 means "not present".
type objFaceVertex struct {
	v, vt, vn int
}

type objGroup struct {
	name     string
	material string
	faces    [][]objFaceVertex
}

// ImportStaticMeshOBJ converts a Wavefront OBJ source file into a
// static mesh asset, grounded on
// basset_importer_static_mesh_obj.c / obj_serializer.c: vertices are
// expanded per-face (no shared-index buffer), one basset_static_mesh_geometry
// per "g"/"o" group (or per material change within an ungrouped file,
// mirroring the original's group-by-usemtl behavior when no g/o lines
// are present), with a bounding center/extents computed per geometry
// and for the mesh as a whole.
//
// If the file references a material library (mtllib) and ctx.ReadSibling
// is set, the library is read through it and parseMTL's material
// Siblings are returned; a library that cannot be read or parsed yields
// no Siblings and no error. ImportStaticMeshOBJ itself never touches
// the VFS.
func ImportStaticMeshOBJ(ctx ImportContext, data []byte, out any) ([]Sibling, error) {
	mesh, ok := out.(*assets.StaticMesh)
	if !ok {
		return nil, errs.NewSerializeError("static_mesh", "", errWrongOutType)
	}

	positions := [][3]float32{}
	texcoords := [][2]float32{}
	normals := [][3]float32{}

	groups := []*objGroup{}
	var current *objGroup
	var materialFile string
	var currentMaterial string
	grouped := false

	newGroup := func(name string) *objGroup {
		g := &objGroup{name: name, material: currentMaterial}
		groups = append(groups, g)
		return g
	}

	sc := bufio.NewScanner(strings.NewReader(string(data)))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "mtllib":
			if len(fields) >= 2 {
				materialFile = fields[1]
			}
		case "usemtl":
			if len(fields) >= 2 {
				currentMaterial = fields[1]
			}
			if current != nil && !grouped && len(current.faces) > 0 {
				current = newGroup("")
			} else if current != nil {
				current.material = currentMaterial
			}
		case "g", "o":
			name := ""
			if len(fields) >= 2 {
				name = fields[1]
			}
			current = newGroup(name)
			grouped = true
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, errs.NewSerializeError("static_mesh", "v", err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, errs.NewSerializeError("static_mesh", "vn", err)
			}
			normals = append(normals, n)
		case "vt":
			t, err := parseVec2(fields[1:])
			if err != nil {
				return nil, errs.NewSerializeError("static_mesh", "vt", err)
			}
			texcoords = append(texcoords, t)
		case "f":
			if current == nil {
				current = newGroup("")
			}
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, errs.NewSerializeError("static_mesh", "f", err)
			}
			for i := range face {
				if face[i].v < 0 {
					face[i].v += len(positions) + 1
				}
				if face[i].vt < 0 {
					face[i].vt += len(texcoords) + 1
				}
				if face[i].vn < 0 {
					face[i].vn += len(normals) + 1
				}
			}
			current.faces = append(current.faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errs.NewSerializeError("static_mesh", "", err)
	}
	if len(groups) == 0 {
		return nil, errs.NewSerializeError("static_mesh", "", errEmptyOBJ)
	}

	geometries := make([]assets.StaticMeshGeometry, 0, len(groups))
	for _, g := range groups {
		if len(g.faces) == 0 {
			continue
		}
		geom := buildGeometry(g, positions, texcoords, normals)
		geometries = append(geometries, geom)
	}
	if len(geometries) == 0 {
		return nil, errs.NewSerializeError("static_mesh", "", errEmptyOBJ)
	}

	meshCenter, meshExtents := meshBounds(geometries)
	mesh.Geometries = geometries
	mesh.Center = meshCenter
	mesh.Extents = meshExtents

	if materialFile == "" || ctx.ReadSibling == nil {
		return nil, nil
	}
	mtlData, err := ctx.ReadSibling(materialFile)
	if err != nil {
		// Not fatal: the mesh can still be used without materials
		// (basset_importer_static_mesh_obj.c's explicit comment).
		return nil, nil
	}
	siblings, err := parseMTL(mtlData, materialFile)
	if err != nil {
		return nil, nil
	}
	return siblings, nil
}

func buildGeometry(g *objGroup, positions [][3]float32, texcoords [][2]float32, normals [][3]float32) assets.StaticMeshGeometry {
	geom := assets.StaticMeshGeometry{Name: g.name, MaterialAssetName: g.material}
	for _, face := range g.faces {
		start := uint32(len(geom.Vertices))
		for _, fv := range face {
			var vert assets.Vertex3D
			if idx, ok := resolveIndex(fv.v, len(positions)); ok {
				vert.Position = positions[idx]
			}
			if idx, ok := resolveIndex(fv.vt, len(texcoords)); ok {
				vert.Texcoord = texcoords[idx]
			}
			if idx, ok := resolveIndex(fv.vn, len(normals)); ok {
				vert.Normal = normals[idx]
			}
			geom.Vertices = append(geom.Vertices, vert)
		}
		// Fan-triangulate faces with more than 3 vertices.
		for i := 1; i+1 < len(face); i++ {
			geom.Indices = append(geom.Indices, start, start+uint32(i), start+uint32(i+1))
		}
	}
	geom.Center, geom.Extents = vertexBounds(geom.Vertices)
	return geom
}

func resolveIndex(raw, count int) (int, bool) {
	if raw == 0 {
		return 0, false
	}
	if raw > 0 {
		return raw - 1, true
	}
	return count + raw, true
}

func vertexBounds(verts []assets.Vertex3D) ([3]float32, assets.Extents3D) {
	if len(verts) == 0 {
		return [3]float32{}, assets.Extents3D{}
	}
	min := verts[0].Position
	max := verts[0].Position
	for _, v := range verts[1:] {
		for i := 0; i < 3; i++ {
			if v.Position[i] < min[i] {
				min[i] = v.Position[i]
			}
			if v.Position[i] > max[i] {
				max[i] = v.Position[i]
			}
		}
	}
	center := [3]float32{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
	return center, assets.Extents3D{Min: min, Max: max}
}

func meshBounds(geoms []assets.StaticMeshGeometry) ([3]float32, assets.Extents3D) {
	if len(geoms) == 0 {
		return [3]float32{}, assets.Extents3D{}
	}
	min := geoms[0].Extents.Min
	max := geoms[0].Extents.Max
	for _, g := range geoms[1:] {
		for i := 0; i < 3; i++ {
			if g.Extents.Min[i] < min[i] {
				min[i] = g.Extents.Min[i]
			}
			if g.Extents.Max[i] > max[i] {
				max[i] = g.Extents.Max[i]
			}
		}
	}
	center := [3]float32{(min[0] + max[0]) / 2, (min[1] + max[1]) / 2, (min[2] + max[2]) / 2}
	return center, assets.Extents3D{Min: min, Max: max}
}

func parseVec3(fields []string) ([3]float32, error) {
	if len(fields) < 3 {
		return [3]float32{}, errShortFieldList
	}
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

func parseVec2(fields []string) ([2]float32, error) {
	if len(fields) < 2 {
		return [2]float32{}, errShortFieldList
	}
	var v [2]float32
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return v, err
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseFace reads "v", "v/vt", "v//vn" or "v/vt/vn" index groups.
func parseFace(fields []string) ([]objFaceVertex, error) {
	if len(fields) < 3 {
		return nil, errShortFieldList
	}
	out := make([]objFaceVertex, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(f, "/")
		var fv objFaceVertex
		var err error
		if fv.v, err = parseFaceIndex(parts, 0); err != nil {
			return nil, err
		}
		if len(parts) > 1 {
			if fv.vt, err = parseFaceIndex(parts, 1); err != nil {
				return nil, err
			}
		}
		if len(parts) > 2 {
			if fv.vn, err = parseFaceIndex(parts, 2); err != nil {
				return nil, err
			}
		}
		out = append(out, fv)
	}
	return out, nil
}

func parseFaceIndex(parts []string, i int) (int, error) {
	if i >= len(parts) || parts[i] == "" {
		return 0, nil
	}
	return strconv.Atoi(parts[i])
}
