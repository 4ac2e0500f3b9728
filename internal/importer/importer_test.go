package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

func TestRegistryRegisterRejectsIncompleteEntries(t *testing.T) {
	r := NewRegistry()
	assert.ErrorIs(t, r.Register(Importer{Type: assets.TypeAudio, Import: ImportAudioPCM}), errMissingSourceType)
	assert.ErrorIs(t, r.Register(Importer{Type: assets.TypeAudio, SourceExtension: "pcm"}), errMissingImportFunc)
}

func TestRegistryHasImporterCaseInsensitiveExtension(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Importer{Type: assets.TypeStaticMesh, SourceExtension: "OBJ", Import: ImportStaticMeshOBJ}))
	assert.True(t, r.HasImporter(assets.TypeStaticMesh, "obj"))
	assert.True(t, r.HasImporter(assets.TypeStaticMesh, ".OBJ"))
	assert.False(t, r.HasImporter(assets.TypeStaticMesh, "fbx"))
}

func TestRegisterDefaultsWiresBuiltins(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, RegisterDefaults(r))
	assert.True(t, r.HasImporter(assets.TypeStaticMesh, "obj"))
	assert.True(t, r.HasImporter(assets.TypeAudio, "pcm"))
}

func TestImportWithSiblingsUnknownPairErrors(t *testing.T) {
	r := NewRegistry()
	_, err := r.ImportWithSiblings(assets.TypeImage, "png", nil, &assets.Image{})
	assert.Error(t, err)
}
