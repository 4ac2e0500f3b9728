package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/standardbeagle/goassets/testhelpers"
)

func writeManifest(t *testing.T, dir, name, body string) string {
	t.Helper()
	return testhelpers.WriteFile(t, dir, name, body)
}

func TestVFSInitializeAndRequestAsset(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rock.png"), []byte("png-bytes-here"), 0o644))

	manifestPath := writeManifest(t, dir, "manifest.bson", `package_name = "Runtime"
assets = [
    { name = "Rock" type = "Image" path = "rock.bimg" source_path = "rock.png" }
]
`)

	v := New()
	require.NoError(t, v.Initialize(Config{ManifestPath: manifestPath}))
	defer v.Shutdown()

	var got Response
	v.RequestAsset(Request{
		PackageName: "Runtime",
		TypeName:    "Image",
		AssetName:   "Rock",
		Binary:      true,
	}, func(r Response) { got = r })

	assert.Equal(t, ResultFileDoesNotExist, got.Result)

	v.RequestAsset(Request{
		PackageName: "Runtime",
		TypeName:    "Image",
		AssetName:   "Rock",
		Binary:      true,
		Source:      true,
	}, func(r Response) { got = r })

	require.Equal(t, ResultSuccess, got.Result)
	assert.Equal(t, "png-bytes-here", string(got.Bytes))
}

func TestVFSInitializeLoadsReferencesOnceOnCycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	aPath := writeManifest(t, dir, "a.bson", `package_name = "A"
references = [ { name = "B" path = "b.bson" } ]
assets = [ { name = "Thing" type = "Text" path = "a.txt" } ]
`)
	writeManifest(t, dir, "b.bson", `package_name = "B"
references = [ { name = "A" path = "a.bson" } ]
assets = [ { name = "Thing" type = "Text" path = "b.txt" } ]
`)

	v := New()
	require.NoError(t, v.Initialize(Config{ManifestPath: aPath}))
	defer v.Shutdown()

	assert.Len(t, v.packages, 2)
}

func TestVFSRequestDirectFromDisk(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "standalone.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	v := New()
	var got Response
	v.RequestDirectFromDisk(path, false, nil, func(r Response) { got = r })

	require.Equal(t, ResultSuccess, got.Result)
	assert.Equal(t, "standalone", got.AssetName)
	assert.Equal(t, "hello", got.Text)
	assert.Empty(t, got.PackageName)
}

func TestVFSRequestPackageDoesNotExist(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	manifestPath := writeManifest(t, dir, "manifest.bson", `package_name = "Runtime"
assets = []
`)

	v := New()
	require.NoError(t, v.Initialize(Config{ManifestPath: manifestPath}))
	defer v.Shutdown()

	var got Response
	v.RequestAsset(Request{PackageName: "Nope", TypeName: "Image", AssetName: "X"}, func(r Response) { got = r })
	assert.Equal(t, ResultPackageDoesNotExist, got.Result)
}
