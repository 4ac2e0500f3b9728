package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/importer"
	"github.com/standardbeagle/goassets/internal/serializers"
	"github.com/standardbeagle/goassets/internal/vfs"
	"github.com/standardbeagle/goassets/testhelpers"
)

func writeManifest(t *testing.T, dir, body string) string {
	t.Helper()
	return testhelpers.WriteFile(t, dir, "manifest.bson", body)
}

func newTestRegistry(t *testing.T, manifestBody string) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, manifestBody)

	v := vfs.New()
	require.NoError(t, v.Initialize(vfs.Config{ManifestPath: manifestPath}))
	t.Cleanup(func() { _ = v.Shutdown() })

	impReg := importer.NewRegistry()
	require.NoError(t, importer.RegisterDefaults(impReg))

	r := NewRegistry(v, impReg)
	r.Register(&Handler{
		Type:              assets.TypeMaterial,
		TypeName:          "material",
		New:               func() any { return &assets.Material{} },
		TextSerialize:     func(a any) (string, error) { return serializers.SerializeMaterialText(a.(*assets.Material)) },
		TextDeserialize:   func(text string) (any, error) { return serializers.DeserializeMaterialText(text) },
	})
	r.Register(&Handler{
		Type:              assets.TypeStaticMesh,
		TypeName:          "static_mesh",
		IsBinary:          true,
		New:               func() any { return &assets.StaticMesh{} },
		BinarySerialize:   func(a any) ([]byte, error) { return serializers.SerializeStaticMesh(a.(*assets.StaticMesh)) },
		BinaryDeserialize: func(buf []byte) (any, error) { return serializers.DeserializeStaticMesh(buf) },
	})
	return r, dir
}

func TestDefaultRequestAssetDeserializesExistingPrimary(t *testing.T) {
	r, dir := newTestRegistry(t, `package_name = "Runtime"
assets = [
    { name = "Grass" type = "Material" path = "grass.bmt" }
]
`)
	matText, err := serializers.SerializeMaterialText(&assets.Material{MaterialType: "standard", Version: assets.MaterialFileVersion})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grass.bmt"), []byte(matText), 0o644))

	h, ok := r.Lookup(assets.TypeMaterial)
	require.True(t, ok)

	var gotResult Result
	var gotAsset any
	r.RequestAsset(h, Request{PackageName: "Runtime", TypeName: "material", AssetName: "Grass"}, func(result Result, asset any, listener any) {
		gotResult, gotAsset = result, asset
	})

	assert.Equal(t, ResultSuccess, gotResult)
	mat, ok := gotAsset.(*assets.Material)
	require.True(t, ok)
	assert.Equal(t, "standard", mat.MaterialType)
}

func TestDefaultRequestAssetImportsFromSourceAndWritesPrimary(t *testing.T) {
	r, dir := newTestRegistry(t, `package_name = "Runtime"
assets = [
    { name = "Cube" type = "static_mesh" path = "cube.bsm" source_path = "cube.obj" }
]
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.obj"), []byte(`mtllib cube.mtl
v -1.0 -1.0 0.0
v 1.0 -1.0 0.0
v 1.0 1.0 0.0
g Front
usemtl Bricks
f 1 2 3
`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cube.mtl"), []byte(`newmtl Bricks
map_Kd bricks_albedo.png
`), 0o644))

	h, ok := r.Lookup(assets.TypeStaticMesh)
	require.True(t, ok)

	var gotResult Result
	var gotAsset any
	r.RequestAsset(h, Request{PackageName: "Runtime", TypeName: "static_mesh", AssetName: "Cube"}, func(result Result, asset any, listener any) {
		gotResult, gotAsset = result, asset
	})

	require.Equal(t, ResultSuccess, gotResult)
	mesh, ok := gotAsset.(*assets.StaticMesh)
	require.True(t, ok)
	require.Len(t, mesh.Geometries, 1)
	assert.Equal(t, "Bricks", mesh.Geometries[0].MaterialAssetName)

	// Primary .bsm file was written back.
	_, err := os.Stat(filepath.Join(dir, "cube.bsm"))
	assert.NoError(t, err)

	// Sibling material was NOT written back because "material" isn't in
	// this package's manifest -- WriteAsset fails and is logged, not
	// fatal, so the overall import still reports success.
}

func TestDefaultRequestAssetSourceFileMissingFails(t *testing.T) {
	r, _ := newTestRegistry(t, `package_name = "Runtime"
assets = [
    { name = "Grass" type = "Material" path = "grass.bmt" source_path = "grass_source.mtl" }
]
`)
	h, ok := r.Lookup(assets.TypeMaterial)
	require.True(t, ok)

	var gotResult Result
	r.RequestAsset(h, Request{PackageName: "Runtime", TypeName: "material", AssetName: "Grass"}, func(result Result, asset any, listener any) {
		gotResult = result
	})
	assert.Equal(t, ResultVFSRequestFailed, gotResult)
}
