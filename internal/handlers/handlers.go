// Package handlers implements the per-type asset handler registry and
// the default request pipeline that bridges it to the VFS and importer
// registry (spec.md §4.5).
package handlers

import (
	"strings"
	"sync"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/importer"
	"github.com/standardbeagle/goassets/internal/vfs"
)

// Result is the request-result taxonomy surfaced to callers of
// RequestAsset (spec.md §7).
type Result string

const (
	ResultSuccess          Result = "success"
	ResultInvalidPackage   Result = "invalid-package"
	ResultInvalidAssetType Result = "invalid-asset-type"
	ResultInvalidName      Result = "invalid-name"
	ResultParseFailed      Result = "parse-failed"
	ResultGPUUploadFailed  Result = "gpu-upload-failed"
	ResultInternalFailure  Result = "internal-failure"
	ResultNoHandler        Result = "no-handler"
	ResultVFSRequestFailed Result = "vfs-request-failed"
	ResultAutoImportFailed Result = "auto-import-failed"
)

// Request names the asset a caller wants loaded. Context and Listener
// are opaque values threaded through to the callback, mirroring the
// original's heap-allocated request context (spec.md §9 "Handler
// callbacks").
type Request struct {
	PackageName string
	TypeName    string
	AssetName   string
	Context     any
	Listener    any
}

// Callback receives the request result, the (possibly
// partially-populated) asset value, and the caller-supplied listener
// (spec.md §4.5 "All callbacks receive (result, asset, listener)").
type Callback func(result Result, asset any, listener any)

// Handler is one asset type's registry entry: its type tag, display
// name, binary-vs-text preference, (de)serialize function pairs, and
// optional overrides of the request/release pipeline (spec.md §4.5).
type Handler struct {
	Type     assets.Type
	TypeName string
	IsBinary bool

	// New returns a freshly zeroed asset value of this handler's
	// concrete type, used to give callers a non-nil asset on failure
	// (spec.md §7 "never a null pointer").
	New func() any

	BinarySerialize   func(asset any) ([]byte, error)
	BinaryDeserialize func(buf []byte) (any, error)
	TextSerialize     func(asset any) (string, error)
	TextDeserialize   func(text string) (any, error)

	// RequestAsset overrides the default pipeline entirely when set
	// (e.g. system-font wraps the default to also fetch a TTF binary
	// body). nil uses DefaultRequestAsset.
	RequestAsset func(reg *Registry, req Request, callback Callback)

	// ReleaseAsset runs any per-asset teardown. May be nil.
	ReleaseAsset func(asset any)
}

// Registry maps an asset type tag to its Handler and drives the
// default request pipeline against a VFS and importer registry
// (spec.md §4.5).
type Registry struct {
	mu       sync.RWMutex
	byType   map[assets.Type]*Handler
	byName   map[string]*Handler
	vfs      *vfs.VFS
	importer *importer.Registry
}

// NewRegistry constructs an empty Registry wired to the given VFS and
// importer backends.
func NewRegistry(v *vfs.VFS, imp *importer.Registry) *Registry {
	return &Registry{
		byType:   make(map[assets.Type]*Handler),
		byName:   make(map[string]*Handler),
		vfs:      v,
		importer: imp,
	}
}

// Register adds h, keyed by its Type and case-insensitive TypeName.
func (r *Registry) Register(h *Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byType[h.Type] = h
	r.byName[normalizeTypeName(h.TypeName)] = h
}

// Lookup finds a handler by type tag.
func (r *Registry) Lookup(t assets.Type) (*Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byType[t]
	return h, ok
}

// LookupByName finds a handler by case-insensitive type name.
func (r *Registry) LookupByName(typeName string) (*Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.byName[normalizeTypeName(typeName)]
	return h, ok
}

func normalizeTypeName(s string) string { return strings.ToLower(s) }
