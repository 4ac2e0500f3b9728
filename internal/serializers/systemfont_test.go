package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/intern"
)

func TestSystemFontTextRoundTrip(t *testing.T) {
	in := &assets.SystemFont{
		Version:             1,
		TTFAssetName:        intern.NewName("Arial"),
		TTFAssetPackageName: intern.NewName("Runtime"),
		Faces:               []string{"Regular", "Bold"},
	}
	text, err := SerializeSystemFontText(in)
	require.NoError(t, err)

	out, err := DeserializeSystemFontText(text)
	require.NoError(t, err)
	assert.Equal(t, intern.NameString(in.TTFAssetName), intern.NameString(out.TTFAssetName))
	assert.Equal(t, intern.NameString(in.TTFAssetPackageName), intern.NameString(out.TTFAssetPackageName))
	assert.Equal(t, in.Faces, out.Faces)
	assert.Equal(t, assets.TypeSystemFont, out.Type)
	assert.Empty(t, out.FontBinary, "FontBinary is populated by the handler layer, not the codec")
}

func TestSystemFontTextRequiresTTFAssetName(t *testing.T) {
	_, err := DeserializeSystemFontText(`version = 1
ttf_asset_package_name = "Runtime"
faces = []
`)
	assert.Error(t, err)
}
