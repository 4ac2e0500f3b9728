package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/goassets/internal/importer"
	"github.com/standardbeagle/goassets/internal/logx"
	"github.com/standardbeagle/goassets/internal/vfs"
)

// Sibling re-exports importer.Sibling for callers of this package
// that don't otherwise need to import internal/importer.
type Sibling = importer.Sibling

// RequestAsset runs h's override if set, else DefaultRequestAsset
// (spec.md §4.5).
func (r *Registry) RequestAsset(h *Handler, req Request, callback Callback) {
	if h.RequestAsset != nil {
		h.RequestAsset(r, req, callback)
		return
	}
	r.DefaultRequestAsset(h, req, callback)
}

// DefaultRequestAsset implements the control flow of spec.md §4.5:
//
//  1. VFS success + from-source: run an importer, write the primary
//     file back (best-effort), report success.
//  2. VFS success + not from-source: deserialize (binary preferred).
//  3. VFS file-does-not-exist: retry with source=true.
//  4. VFS source-file-does-not-exist: fail with vfs-request-failed.
func (r *Registry) DefaultRequestAsset(h *Handler, req Request, callback Callback) {
	r.vfs.RequestAsset(vfs.Request{
		PackageName: req.PackageName,
		TypeName:    req.TypeName,
		AssetName:   req.AssetName,
		Binary:      h.IsBinary,
		Source:      false,
	}, func(resp vfs.Response) {
		r.handleVFSResponse(h, req, resp, callback)
	})
}

func (r *Registry) handleVFSResponse(h *Handler, req Request, resp vfs.Response, callback Callback) {
	switch resp.Result {
	case vfs.ResultSuccess:
		if resp.FromSource {
			r.importFromSource(h, req, resp, callback)
			return
		}
		r.deserializePrimary(h, req, resp, callback)

	case vfs.ResultFileDoesNotExist:
		r.vfs.RequestAsset(vfs.Request{
			PackageName: req.PackageName,
			TypeName:    req.TypeName,
			AssetName:   req.AssetName,
			Binary:      h.IsBinary,
			Source:      true,
		}, func(resp2 vfs.Response) {
			r.handleVFSResponse(h, req, resp2, callback)
		})

	case vfs.ResultSourceFileDoesNotExist:
		logx.Warnf("handlers: source file for %s/%s/%s does not exist", req.PackageName, req.TypeName, req.AssetName)
		callback(ResultVFSRequestFailed, h.New(), req.Listener)

	default:
		callback(ResultInternalFailure, h.New(), req.Listener)
	}
}

func (r *Registry) importFromSource(h *Handler, req Request, resp vfs.Response, callback Callback) {
	ext := strings.TrimPrefix(filepath.Ext(resp.Path), ".")
	if ext == "" {
		logx.Warnf("handlers: no file extension on source asset %s/%s, cannot choose an importer", req.PackageName, req.AssetName)
		callback(ResultNoHandler, h.New(), req.Listener)
		return
	}
	if !r.importer.HasImporter(h.Type, ext) {
		logx.Warnf("handlers: no importer registered for type %s, extension %q", h.TypeName, ext)
		callback(ResultNoHandler, h.New(), req.Listener)
		return
	}

	asset := h.New()
	data := resp.Bytes
	if data == nil {
		data = []byte(resp.Text)
	}
	importCtx := importer.ImportContext{
		SourcePath:  resp.Path,
		ReadSibling: readSiblingFromDisk(resp.Path),
	}
	siblings, err := r.importer.ImportWithContext(importCtx, h.Type, ext, data, asset)
	if err != nil {
		logx.Warnf("handlers: automatic import failed for %s/%s: %v", req.PackageName, req.AssetName, err)
		callback(ResultAutoImportFailed, h.New(), req.Listener)
		return
	}

	r.writeBackPrimary(h, req, asset)
	r.writeBackSiblings(req, siblings)
	callback(ResultSuccess, asset, req.Listener)
}

// readSiblingFromDisk returns a reader that resolves relPath against
// sourcePath's directory and reads it straight off disk, mirroring
// vfs_request_direct_from_disk_sync's use for an OBJ's mtllib file
// (basset_importer_static_mesh_obj.c): the companion file sits next to
// the primary source, outside the package's tracked entries.
func readSiblingFromDisk(sourcePath string) func(relPath string) ([]byte, error) {
	dir := filepath.Dir(sourcePath)
	return func(relPath string) ([]byte, error) {
		return os.ReadFile(filepath.Join(dir, relPath))
	}
}

// writeBackSiblings best-effort persists any sibling assets an
// importer produced (spec.md §4.6), using the sibling's own type
// handler for serialization if one is registered.
func (r *Registry) writeBackSiblings(req Request, siblings []Sibling) {
	for _, sib := range siblings {
		sh, ok := r.LookupByName(sib.TypeName)
		if !ok {
			logx.Warnf("handlers: no handler registered for sibling type %q, skipping write of %q", sib.TypeName, sib.AssetName)
			continue
		}
		sibReq := Request{PackageName: req.PackageName, TypeName: sib.TypeName, AssetName: sib.AssetName}
		r.writeBackPrimary(sh, sibReq, sib.Asset)
	}
}

// writeBackPrimary best-effort serializes and writes asset to its
// primary path after a successful import; failures are logged, not
// fatal (spec.md §4.5 step 1: "No need to boot out if any of this
// fails since the import was successful").
func (r *Registry) writeBackPrimary(h *Handler, req Request, asset any) {
	if h.BinarySerialize != nil {
		buf, err := h.BinarySerialize(asset)
		if err != nil {
			logx.Warnf("handlers: failed to serialize %s/%s after import, primary won't be written: %v", req.PackageName, req.AssetName, err)
			return
		}
		if err := r.vfs.WriteAsset(req.PackageName, req.TypeName, req.AssetName, buf); err != nil {
			logx.Warnf("handlers: failed to write primary asset for %s/%s: %v", req.PackageName, req.AssetName, err)
		}
		return
	}
	if h.TextSerialize != nil {
		text, err := h.TextSerialize(asset)
		if err != nil {
			logx.Warnf("handlers: failed to serialize %s/%s after import, primary won't be written: %v", req.PackageName, req.AssetName, err)
			return
		}
		if err := r.vfs.WriteAsset(req.PackageName, req.TypeName, req.AssetName, []byte(text)); err != nil {
			logx.Warnf("handlers: failed to write primary asset for %s/%s: %v", req.PackageName, req.AssetName, err)
		}
	}
}

func (r *Registry) deserializePrimary(h *Handler, req Request, resp vfs.Response, callback Callback) {
	if h.IsBinary && h.BinaryDeserialize != nil {
		asset, err := h.BinaryDeserialize(resp.Bytes)
		if err != nil {
			logx.Warnf("handlers: binary deserialize failed for %s/%s: %v", req.PackageName, req.AssetName, err)
			callback(ResultParseFailed, h.New(), req.Listener)
			return
		}
		callback(ResultSuccess, asset, req.Listener)
		return
	}
	if h.TextDeserialize != nil {
		asset, err := h.TextDeserialize(resp.Text)
		if err != nil {
			logx.Warnf("handlers: text deserialize failed for %s/%s: %v", req.PackageName, req.AssetName, err)
			callback(ResultParseFailed, h.New(), req.Listener)
			return
		}
		callback(ResultSuccess, asset, req.Listener)
		return
	}
	callback(ResultInternalFailure, h.New(), req.Listener)
}
