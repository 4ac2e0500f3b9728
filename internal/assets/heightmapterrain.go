package assets

// HeightmapTerrain is the text heightmap terrain asset (spec.md §4.4).
// This module implements the richer of the two struct shapes present
// in original_source/ per SPEC_FULL.md's Open Question decision:
// {heightmap_filename, chunk_size, tile_scale, material_names[]}, with
// the heightmap referenced by the text form's heightmap_filename key.
type HeightmapTerrain struct {
	Base

	Version           uint32
	HeightmapFilename string
	ChunkSize         uint32
	TileScale         [3]float32
	MaterialNames     []string
}

// DefaultTileScale is used when tile_scale is absent from the text
// form (spec.md §4.4).
var DefaultTileScale = [3]float32{1, 1, 1}

// DefaultTerrainMaterial fills any missing per-slot material name.
const DefaultTerrainMaterial = "default_terrain"
