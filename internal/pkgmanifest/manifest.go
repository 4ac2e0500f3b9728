// Package pkgmanifest parses `.bpackage` manifests and builds the
// in-memory package index the VFS resolves assets against (spec.md
// §4.7).
package pkgmanifest

import (
	"strings"

	"github.com/standardbeagle/goassets/internal/bson"
	"github.com/standardbeagle/goassets/internal/errs"
)

// ManifestReference is one entry of a manifest's optional "references"
// array: another package this one depends on.
type ManifestReference struct {
	Name string
	Path string
}

// ManifestAsset is one entry of a manifest's "assets" array.
// SourcePath is optional: the authoring-format file an importer can
// produce Path from when Path doesn't exist yet (spec.md §4.5 step 3,
// §8 Scenario 4).
type ManifestAsset struct {
	Name       string
	Path       string
	Type       string
	SourcePath string
}

// Manifest is the parsed form of a `.bpackage` file, before it's
// folded into a Package's type buckets.
type Manifest struct {
	PackageName string
	References  []ManifestReference
	Assets      []ManifestAsset
}

// ParseManifest parses BSON manifest text into a Manifest. assets is
// expected in practice but, like references, is optional (spec.md §6).
func ParseManifest(text string) (*Manifest, error) {
	toks, err := bson.Tokenize(text)
	if err != nil {
		return nil, errs.NewPackageError("", "parse", err)
	}
	tree, err := bson.Parse(toks)
	if err != nil {
		return nil, errs.NewPackageError("", "parse", err)
	}
	root := tree.Root

	name, ok := bson.GetString(root, "package_name")
	if !ok {
		return nil, errs.NewPackageError("", "parse", errMissingField("package_name"))
	}
	m := &Manifest{PackageName: name}

	if refsObj, ok := bson.GetObject(root, "references"); ok {
		for i := 0; i < refsObj.Len(); i++ {
			refObj, ok := bson.GetObjectAt(refsObj, i)
			if !ok {
				continue
			}
			refName, _ := bson.GetString(refObj, "name")
			refPath, _ := bson.GetString(refObj, "path")
			m.References = append(m.References, ManifestReference{Name: refName, Path: refPath})
		}
	}

	if assetsObj, ok := bson.GetObject(root, "assets"); ok {
		for i := 0; i < assetsObj.Len(); i++ {
			assetObj, ok := bson.GetObjectAt(assetsObj, i)
			if !ok {
				continue
			}
			assetName, _ := bson.GetString(assetObj, "name")
			assetPath, _ := bson.GetString(assetObj, "path")
			assetType, _ := bson.GetString(assetObj, "type")
			sourcePath, _ := bson.GetString(assetObj, "source_path")
			m.Assets = append(m.Assets, ManifestAsset{Name: assetName, Path: assetPath, Type: assetType, SourcePath: sourcePath})
		}
	}

	return m, nil
}

type missingFieldError string

func (e missingFieldError) Error() string { return "required field missing: " + string(e) }

func errMissingField(field string) error { return missingFieldError(field) }

// normalizeKey is the case-insensitive key used for type-bucket and
// entry-name lookups throughout this package (spec.md §4.7).
func normalizeKey(s string) string { return strings.ToLower(s) }
