package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
)

func TestBSONAssetTextRoundTrip(t *testing.T) {
	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetInt(root, "answer", 42)
	bson.SetString(root, "greeting", "hello")
	in := &assets.BSONAsset{Tree: &bson.Tree{Root: root}}

	text, err := SerializeBSONAssetText(in)
	require.NoError(t, err)

	out, err := DeserializeBSONAssetText(text)
	require.NoError(t, err)
	assert.Equal(t, assets.TypeBSON, out.Type)

	answer, ok := bson.GetInt(out.Tree.Root, "answer")
	require.True(t, ok)
	assert.EqualValues(t, 42, answer)

	greeting, ok := bson.GetString(out.Tree.Root, "greeting")
	require.True(t, ok)
	assert.Equal(t, "hello", greeting)
}

func TestBSONAssetTextRejectsMalformedInput(t *testing.T) {
	_, err := DeserializeBSONAssetText("foo = @\n")
	assert.Error(t, err)
}
