package handlers

import (
	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/intern"
	"github.com/standardbeagle/goassets/internal/logx"
	"github.com/standardbeagle/goassets/internal/vfs"
)

// systemFontRequestAsset wraps DefaultRequestAsset: after the system
// font's own text body loads successfully, it issues a second,
// synchronous binary VFS request for the referenced TTF asset and
// copies its bytes into FontBinary. Failure of that secondary request
// fails the whole load (spec.md §4.4 "System font").
func systemFontRequestAsset(r *Registry, req Request, callback Callback) {
	r.DefaultRequestAsset(r.mustLookup(assets.TypeSystemFont), req, func(result Result, asset any, listener any) {
		if result != ResultSuccess {
			callback(result, asset, listener)
			return
		}

		font, ok := asset.(*assets.SystemFont)
		if !ok {
			callback(ResultInternalFailure, asset, listener)
			return
		}

		packageName := intern.NameString(font.TTFAssetPackageName)
		assetName := intern.NameString(font.TTFAssetName)

		var ttfResp vfs.Response
		r.vfs.RequestAsset(vfs.Request{
			PackageName: packageName,
			TypeName:    "ttf",
			AssetName:   assetName,
			Binary:      true,
			Source:      false,
		}, func(resp vfs.Response) { ttfResp = resp })

		if ttfResp.Result != vfs.ResultSuccess {
			logx.Warnf("handlers: failed to read system font binary data (package=%q, name=%q), asset load failed", packageName, assetName)
			callback(ResultVFSRequestFailed, asset, listener)
			return
		}

		font.FontBinary = ttfResp.Bytes
		callback(ResultSuccess, font, listener)
	})
}

// mustLookup is a small helper so systemFontRequestAsset can call
// DefaultRequestAsset with the handler the registry already has
// registered for t, rather than threading it through Handler.RequestAsset's
// signature a second time.
func (r *Registry) mustLookup(t assets.Type) *Handler {
	h, ok := r.Lookup(t)
	if !ok {
		panic("handlers: system font handler requested before registration")
	}
	return h
}
