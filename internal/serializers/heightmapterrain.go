package serializers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/logx"
)

// SerializeHeightmapTerrainText renders a HeightmapTerrain to BSON
// text (spec.md §4.4).
func SerializeHeightmapTerrainText(a *assets.HeightmapTerrain) (string, error) {
	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetInt(root, "version", int64(a.Version))
	bson.SetString(root, "heightmap_filename", a.HeightmapFilename)
	bson.SetInt(root, "chunk_size", int64(a.ChunkSize))

	tileScale := a.TileScale
	if tileScale == [3]float32{} {
		tileScale = assets.DefaultTileScale
	}
	bson.SetVec3(root, "tile_scale", tileScale)

	names := bson.NewObjectOf(bson.ObjectKindArray)
	for _, name := range a.MaterialNames {
		if name == "" {
			name = assets.DefaultTerrainMaterial
		}
		bson.AppendString(names, name)
	}
	bson.SetObject(root, "material_names", names)

	return bson.Write(&bson.Tree{Root: root})
}

// DeserializeHeightmapTerrainText is SerializeHeightmapTerrainText's
// inverse. version, heightmap_filename, chunk_size and material_names
// are required fields; tile_scale falls back to (1,1,1) and any
// unreadable material name slot falls back to "default_terrain"
// (spec.md §4.4).
func DeserializeHeightmapTerrainText(text string) (*assets.HeightmapTerrain, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("heightmap_terrain", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("heightmap_terrain", "", err)
	}
	root := tree.Root

	version, ok := bson.GetInt(root, "version")
	if !ok {
		return nil, errs.NewSerializeError("heightmap_terrain", "version", errMissingField)
	}
	filename, ok := bson.GetString(root, "heightmap_filename")
	if !ok {
		return nil, errs.NewSerializeError("heightmap_terrain", "heightmap_filename", errMissingField)
	}
	chunkSize, ok := bson.GetInt(root, "chunk_size")
	if !ok {
		return nil, errs.NewSerializeError("heightmap_terrain", "chunk_size", errMissingField)
	}

	out := &assets.HeightmapTerrain{
		Version:           uint32(version),
		HeightmapFilename: filename,
		ChunkSize:         uint32(chunkSize),
	}
	out.Base.Type = assets.TypeHeightmapTerrain

	if tileScale, ok := bson.GetVec3(root, "tile_scale"); ok {
		out.TileScale = tileScale
	} else {
		logx.Warnf("heightmap_terrain %q: failed to parse tile_scale, defaulting to (1,1,1)", filename)
		out.TileScale = assets.DefaultTileScale
	}

	namesObj, ok := bson.GetObject(root, "material_names")
	if !ok {
		return nil, errs.NewSerializeError("heightmap_terrain", "material_names", errMissingField)
	}
	out.MaterialNames = make([]string, namesObj.Len())
	for i := range out.MaterialNames {
		if name, ok := bson.GetStringAt(namesObj, i); ok {
			out.MaterialNames[i] = name
		} else {
			logx.Warnf("heightmap_terrain %q: unable to read material name at index %d, using %q", filename, i, assets.DefaultTerrainMaterial)
			out.MaterialNames[i] = assets.DefaultTerrainMaterial
		}
	}

	return out, nil
}
