package handlers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/importer"
	"github.com/standardbeagle/goassets/internal/intern"
	"github.com/standardbeagle/goassets/internal/serializers"
	"github.com/standardbeagle/goassets/internal/vfs"
)

func newSystemFontRegistry(t *testing.T, manifestBody string) (*Registry, string) {
	t.Helper()
	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, manifestBody)

	v := vfs.New()
	require.NoError(t, v.Initialize(vfs.Config{ManifestPath: manifestPath}))
	t.Cleanup(func() { _ = v.Shutdown() })

	r := NewRegistry(v, importer.NewRegistry())
	RegisterDefaults(r)
	return r, dir
}

func TestSystemFontRequestAssetFetchesTTFBinary(t *testing.T) {
	r, dir := newSystemFontRegistry(t, `package_name = "Runtime"
assets = [
    { name = "Title" type = "system_font" path = "title.bsf" }
    { name = "Arial" type = "Ttf" path = "arial.ttf" }
]
`)
	fontText, err := serializers.SerializeSystemFontText(&assets.SystemFont{
		Version:             1,
		TTFAssetName:        intern.NewName("Arial"),
		TTFAssetPackageName: intern.NewName("Runtime"),
		Faces:               []string{"Regular"},
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "title.bsf"), []byte(fontText), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arial.ttf"), []byte("fake-ttf-bytes"), 0o644))

	h, ok := r.Lookup(assets.TypeSystemFont)
	require.True(t, ok)

	var gotResult Result
	var gotAsset any
	r.RequestAsset(h, Request{PackageName: "Runtime", TypeName: "system_font", AssetName: "Title"}, func(result Result, asset any, listener any) {
		gotResult, gotAsset = result, asset
	})

	require.Equal(t, ResultSuccess, gotResult)
	font, ok := gotAsset.(*assets.SystemFont)
	require.True(t, ok)
	assert.Equal(t, "fake-ttf-bytes", string(font.FontBinary))
}

func TestSystemFontRequestAssetFailsWhenTTFMissing(t *testing.T) {
	r, dir := newSystemFontRegistry(t, `package_name = "Runtime"
assets = [
    { name = "Title" type = "system_font" path = "title.bsf" }
    { name = "Arial" type = "Ttf" path = "arial.ttf" }
]
`)
	fontText, err := serializers.SerializeSystemFontText(&assets.SystemFont{
		Version:             1,
		TTFAssetName:        intern.NewName("Arial"),
		TTFAssetPackageName: intern.NewName("Runtime"),
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "title.bsf"), []byte(fontText), 0o644))
	// arial.ttf deliberately not written to disk.

	h, ok := r.Lookup(assets.TypeSystemFont)
	require.True(t, ok)

	var gotResult Result
	r.RequestAsset(h, Request{PackageName: "Runtime", TypeName: "system_font", AssetName: "Title"}, func(result Result, asset any, listener any) {
		gotResult = result
	})
	assert.Equal(t, ResultVFSRequestFailed, gotResult)
}
