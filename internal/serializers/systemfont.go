package serializers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/logx"
)

const currentSystemFontVersion = 1

// SerializeSystemFontText renders a SystemFont to BSON text (spec.md
// §4.4). FontBinary is never written; it's populated post-deserialize
// by the handler layer's secondary VFS request, not by this codec.
func SerializeSystemFontText(a *assets.SystemFont) (string, error) {
	root := bson.NewObjectOf(bson.ObjectKindObject)
	bson.SetInt(root, "version", currentSystemFontVersion)
	bson.SetName(root, "ttf_asset_name", a.TTFAssetName)
	bson.SetName(root, "ttf_asset_package_name", a.TTFAssetPackageName)

	faces := bson.NewObjectOf(bson.ObjectKindArray)
	for _, f := range a.Faces {
		bson.AppendString(faces, f)
	}
	bson.SetObject(root, "faces", faces)

	return bson.Write(&bson.Tree{Root: root})
}

// DeserializeSystemFontText is SerializeSystemFontText's inverse.
// version, ttf_asset_name, ttf_asset_package_name and faces are
// required fields; an unreadable face entry is skipped with a warning
// (spec.md §4.4).
func DeserializeSystemFontText(text string) (*assets.SystemFont, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewSerializeError("system_font", "", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewSerializeError("system_font", "", err)
	}
	root := tree.Root

	version, ok := bson.GetInt(root, "version")
	if !ok {
		return nil, errs.NewSerializeError("system_font", "version", errMissingField)
	}
	ttfName, ok := bson.GetName(root, "ttf_asset_name")
	if !ok {
		return nil, errs.NewSerializeError("system_font", "ttf_asset_name", errMissingField)
	}
	ttfPkg, ok := bson.GetName(root, "ttf_asset_package_name")
	if !ok {
		return nil, errs.NewSerializeError("system_font", "ttf_asset_package_name", errMissingField)
	}

	facesObj, ok := bson.GetObject(root, "faces")
	if !ok {
		return nil, errs.NewSerializeError("system_font", "faces", errMissingField)
	}
	faces := make([]string, 0, facesObj.Len())
	for i := 0; i < facesObj.Len(); i++ {
		face, ok := bson.GetStringAt(facesObj, i)
		if !ok {
			logx.Warnf("system_font: unable to read face name at index %d, skipping", i)
			continue
		}
		faces = append(faces, face)
	}

	out := &assets.SystemFont{
		Version:             uint32(version),
		TTFAssetName:        ttfName,
		TTFAssetPackageName: ttfPkg,
		Faces:               faces,
	}
	out.Base.Type = assets.TypeSystemFont
	return out, nil
}
