// Package importer implements the importer registry and the OBJ
// static-mesh / audio importers (spec.md §4.6, SPEC_FULL.md §3).
package importer

import (
	"errors"
	"strings"
	"sync"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/security"
)

// Sibling is an additional primary asset an importer wants written
// alongside its main output (spec.md §4.6: "an importer may write
// additional sibling assets", e.g. the OBJ importer's companion
// material).
type Sibling struct {
	TypeName  string
	AssetName string
	Asset     any
}

// ImportContext carries the information an ImportFunc needs beyond the
// primary source bytes: the primary file's disk path (so a companion
// file sitting next to it, e.g. an OBJ's mtllib, can be located) and a
// direct-from-disk reader for fetching it (spec.md §4.6,
// basset_importer_static_mesh_obj.c's vfs_request_direct_from_disk_sync
// call for the MTL file).
type ImportContext struct {
	SourcePath  string
	ReadSibling func(relPath string) ([]byte, error)
}

// ImportFunc converts source bytes into a runtime asset value written
// into out, plus any sibling assets to persist alongside it.
type ImportFunc func(ctx ImportContext, data []byte, out any) ([]Sibling, error)

// Importer is one registry entry: the asset type and source-file
// extension it handles, and its conversion function (spec.md §4.6).
type Importer struct {
	Type            assets.Type
	SourceExtension string
	Import          ImportFunc
}

var (
	errMissingSourceType = errors.New("importer registration missing a source extension")
	errMissingImportFunc = errors.New("importer registration missing an import function")
)

type key struct {
	t   assets.Type
	ext string
}

// Registry is indexed by (asset-type, source-file-extension), both
// matched case-insensitively on the extension (spec.md §4.6).
type Registry struct {
	mu        sync.RWMutex
	entries   map[key]Importer
	validator security.SourceValidator
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[key]Importer)}
}

// Register adds imp, rejecting registrations missing a source
// extension or import function (spec.md §4.6).
func (r *Registry) Register(imp Importer) error {
	if imp.SourceExtension == "" {
		return errMissingSourceType
	}
	if imp.Import == nil {
		return errMissingImportFunc
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key{imp.Type, normalizeExt(imp.SourceExtension)}] = imp
	return nil
}

// HasImporter reports whether an importer is registered for
// (assetType, sourceExtension).
func (r *Registry) HasImporter(assetType assets.Type, sourceExtension string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[key{assetType, normalizeExt(sourceExtension)}]
	return ok
}

// Import runs the registered importer for (assetType, sourceExtension)
// against data, writing the result into out.
func (r *Registry) Import(assetType assets.Type, sourceExtension string, data []byte, out any) error {
	_, err := r.ImportWithSiblings(assetType, sourceExtension, data, out)
	return err
}

// ImportWithSiblings is Import but also returns any sibling assets the
// importer wants persisted (spec.md §4.6). It runs the importer with a
// zero ImportContext (no source path, no sibling file reader); use
// ImportWithContext for importers that need one.
func (r *Registry) ImportWithSiblings(assetType assets.Type, sourceExtension string, data []byte, out any) ([]Sibling, error) {
	return r.ImportWithContext(ImportContext{}, assetType, sourceExtension, data, out)
}

// ImportWithContext is ImportWithSiblings but lets the caller supply
// ctx directly (spec.md §4.6).
func (r *Registry) ImportWithContext(ctx ImportContext, assetType assets.Type, sourceExtension string, data []byte, out any) ([]Sibling, error) {
	r.mu.RLock()
	imp, ok := r.entries[key{assetType, normalizeExt(sourceExtension)}]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.New("no importer registered for this (type, extension) pair")
	}
	if err := r.validator.Validate(sourceExtension, data); err != nil {
		return nil, err
	}
	return imp.Import(ctx, data, out)
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
