package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

const sampleOBJ = `# sample cube fragment
mtllib cube.mtl
v -1.0 -1.0 0.0
v 1.0 -1.0 0.0
v 1.0 1.0 0.0
v -1.0 1.0 0.0
vt 0.0 0.0
vt 1.0 0.0
vt 1.0 1.0
vt 0.0 1.0
vn 0.0 0.0 1.0
g Front
usemtl Bricks
f 1/1/1 2/2/1 3/3/1 4/4/1
`

const sampleMTL = `newmtl Bricks
map_Kd bricks_albedo.png
map_Bump bricks_normal.png
`

func TestImportStaticMeshOBJBasicGeometry(t *testing.T) {
	mesh := &assets.StaticMesh{}
	siblings, err := ImportStaticMeshOBJ(ImportContext{}, []byte(sampleOBJ), mesh)
	require.NoError(t, err)
	assert.Empty(t, siblings) // no ReadSibling configured

	require.Len(t, mesh.Geometries, 1)
	geom := mesh.Geometries[0]
	assert.Equal(t, "Front", geom.Name)
	assert.Equal(t, "Bricks", geom.MaterialAssetName)
	assert.Len(t, geom.Vertices, 4)
	assert.Len(t, geom.Indices, 6) // quad fan-triangulated into 2 tris
}

func TestImportStaticMeshOBJWithMTLSibling(t *testing.T) {
	mesh := &assets.StaticMesh{}
	ctx := ImportContext{
		SourcePath: "/assets/models/cube.obj",
		ReadSibling: func(relPath string) ([]byte, error) {
			assert.Equal(t, "cube.mtl", relPath)
			return []byte(sampleMTL), nil
		},
	}
	siblings, err := ImportStaticMeshOBJ(ctx, []byte(sampleOBJ), mesh)
	require.NoError(t, err)
	require.Len(t, siblings, 1)
	assert.Equal(t, "material", siblings[0].TypeName)
	assert.Equal(t, "Bricks", siblings[0].AssetName)

	mat, ok := siblings[0].Asset.(*assets.Material)
	require.True(t, ok)
	require.Len(t, mat.Maps, 2)
	assert.Equal(t, "albedo", mat.Maps[0].Name)
	assert.Equal(t, "bricks_albedo.png", mat.Maps[0].ImageAssetName)
	assert.Equal(t, "normal", mat.Maps[1].Name)
}

func TestImportStaticMeshOBJRejectsWrongOutType(t *testing.T) {
	_, err := ImportStaticMeshOBJ(ImportContext{}, []byte(sampleOBJ), &assets.Material{})
	assert.Error(t, err)
}

func TestImportStaticMeshOBJRejectsEmptyFile(t *testing.T) {
	_, err := ImportStaticMeshOBJ(ImportContext{}, []byte("# nothing here\n"), &assets.StaticMesh{})
	assert.Error(t, err)
}
