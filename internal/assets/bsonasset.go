package assets

import "github.com/standardbeagle/goassets/internal/bson"

// BSONAsset wraps an arbitrary BSON tree verbatim (spec.md §4.4):
// serialize renders the tree to text, deserialize parses the given
// text into the asset's tree.
type BSONAsset struct {
	Base

	Tree *bson.Tree
}
