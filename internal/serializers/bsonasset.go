package serializers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
)

// SerializeBSONAssetText renders a BSONAsset's wrapped tree back to
// text verbatim (spec.md §4.4).
func SerializeBSONAssetText(a *assets.BSONAsset) (string, error) {
	text, err := bson.Write(a.Tree)
	if err != nil {
		return "", errs.NewSerializeError("bson", "", err)
	}
	return text, nil
}

// DeserializeBSONAssetText parses text into a BSONAsset's tree
// verbatim (spec.md §4.4).
func DeserializeBSONAssetText(text string) (*assets.BSONAsset, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("bson", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("bson", "", err)
	}
	out := &assets.BSONAsset{Tree: tree}
	out.Base.Type = assets.TypeBSON
	return out, nil
}
