package assets

import "github.com/standardbeagle/goassets/internal/intern"

// SystemFont is the text (BSON) system font asset (spec.md §4.4). It
// names a TTF asset by reference; the handler layer additionally fetches
// that TTF's binary bytes into FontBinary after a text deserialize.
type SystemFont struct {
	Base

	Version             uint32
	TTFAssetName        intern.Name
	TTFAssetPackageName intern.Name
	Faces               []string

	// FontBinary holds the referenced TTF's raw bytes, populated by the
	// system-font asset handler's secondary VFS request (spec.md §4.4).
	FontBinary []byte
}
