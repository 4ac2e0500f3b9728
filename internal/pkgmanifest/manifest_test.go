package pkgmanifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifestRequiresPackageName(t *testing.T) {
	_, err := ParseManifest(`assets = []`)
	assert.Error(t, err)
}

func TestParseManifestFull(t *testing.T) {
	m, err := ParseManifest(`package_name = "Runtime"
references = [
    { name = "Core" path = "../core.bpackage" }
]
assets = [
    { name = "Rock" type = "Image" path = "rock.bimg" source_path = "rock.png" }
    { name = "Grass" type = "Material" path = "grass.bmt" }
]
`)
	require.NoError(t, err)
	assert.Equal(t, "Runtime", m.PackageName)
	require.Len(t, m.References, 1)
	assert.Equal(t, "Core", m.References[0].Name)
	assert.Equal(t, "../core.bpackage", m.References[0].Path)

	require.Len(t, m.Assets, 2)
	assert.Equal(t, "Rock", m.Assets[0].Name)
	assert.Equal(t, "Image", m.Assets[0].Type)
	assert.Equal(t, "rock.png", m.Assets[0].SourcePath)
	assert.Empty(t, m.Assets[1].SourcePath)
}

func TestParseManifestReferencesAndAssetsOptional(t *testing.T) {
	m, err := ParseManifest(`package_name = "Empty"`)
	require.NoError(t, err)
	assert.Empty(t, m.References)
	assert.Empty(t, m.Assets)
}
