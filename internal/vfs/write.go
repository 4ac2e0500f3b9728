package vfs

import "github.com/standardbeagle/goassets/internal/errs"

// WriteAsset writes buf to a loaded package's primary path for
// (typeName, assetName), used by the default handler pipeline's
// write-back-after-import step (spec.md §4.5 step 1).
func (v *VFS) WriteAsset(packageName, typeName, assetName string, buf []byte) error {
	pkg, ok := v.packages[packageName]
	if !ok {
		return errs.NewVFSError(packageName, assetName, string(ResultPackageDoesNotExist), nil)
	}
	return pkg.WriteBytes(typeName, assetName, buf)
}
