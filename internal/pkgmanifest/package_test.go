package pkgmanifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTestPackage(t *testing.T) (*Package, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rock.png"), []byte("source-bytes"), 0o644))

	m := &Manifest{
		PackageName: "Runtime",
		Assets: []ManifestAsset{
			{Name: "Rock", Type: "Image", Path: "rock.bimg", SourcePath: "rock.png"},
			{Name: "Grass", Type: "Material", Path: "grass.bmt"},
		},
	}
	return NewPackageFromManifest(m, dir), dir
}

func TestPackageResolveCaseInsensitive(t *testing.T) {
	pkg, dir := buildTestPackage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rock.bimg"), []byte("primary-bytes"), 0o644))

	path, size, err := pkg.Resolve("image", "rock")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rock.bimg"), path)
	assert.EqualValues(t, len("primary-bytes"), size)

	path2, _, err := pkg.Resolve("IMAGE", "ROCK")
	require.NoError(t, err)
	assert.Equal(t, path, path2)
}

func TestPackageResolveMissingPrimaryFileErrors(t *testing.T) {
	pkg, _ := buildTestPackage(t)
	_, _, err := pkg.Resolve("image", "rock")
	assert.Error(t, err)
}

func TestPackageResolveSourceNoSourcePath(t *testing.T) {
	pkg, _ := buildTestPackage(t)
	_, _, err := pkg.ResolveSource("material", "grass")
	assert.Error(t, err)
}

func TestPackageResolveSourceSuccess(t *testing.T) {
	pkg, dir := buildTestPackage(t)
	path, size, err := pkg.ResolveSource("image", "rock")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "rock.png"), path)
	assert.EqualValues(t, len("source-bytes"), size)
}

func TestPackageResolveUnknownTypeSuggestsNothing(t *testing.T) {
	pkg, _ := buildTestPackage(t)
	_, _, err := pkg.Resolve("bogus", "rock")
	assert.Error(t, err)
}

func TestPackageResolveTypoSuggestsDidYouMean(t *testing.T) {
	pkg, dir := buildTestPackage(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rock.bimg"), []byte("x"), 0o644))
	_, _, err := pkg.Resolve("image", "Rok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestPackageBytesGetSource(t *testing.T) {
	pkg, _ := buildTestPackage(t)
	buf, err := pkg.BytesGetSource("image", "rock")
	require.NoError(t, err)
	assert.Equal(t, "source-bytes", string(buf))
}

func TestPackageWriteBytesCreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	m := &Manifest{
		PackageName: "Runtime",
		Assets: []ManifestAsset{
			{Name: "Rock", Type: "StaticMesh", Path: "nested/deep/rock.bsm"},
		},
	}
	pkg := NewPackageFromManifest(m, dir)

	require.NoError(t, pkg.WriteBytes("staticmesh", "rock", []byte("binary-data")))

	got, err := os.ReadFile(filepath.Join(dir, "nested/deep/rock.bsm"))
	require.NoError(t, err)
	assert.Equal(t, "binary-data", string(got))
}

func TestPackageTextGet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grass.bmt"), []byte("material-text"), 0o644))
	m := &Manifest{
		PackageName: "Runtime",
		Assets:      []ManifestAsset{{Name: "Grass", Type: "Material", Path: "grass.bmt"}},
	}
	pkg := NewPackageFromManifest(m, dir)
	text, err := pkg.TextGet("material", "grass")
	require.NoError(t, err)
	assert.Equal(t, "material-text", text)
}

func TestNewPackageFromBinaryBlobUnsupported(t *testing.T) {
	_, err := NewPackageFromBinaryBlob("Runtime", []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrBinaryBlobUnsupported)
}
