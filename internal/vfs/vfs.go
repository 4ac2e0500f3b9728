// Package vfs is the asset virtual file system: it owns the loaded
// package set, resolves (package, asset) requests against them, and
// tracks filesystem watches on primary asset files (spec.md §4.8).
package vfs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/standardbeagle/goassets/internal/errs"
	"github.com/standardbeagle/goassets/internal/logx"
	"github.com/standardbeagle/goassets/internal/pkgmanifest"
)

// Request describes one asset fetch (spec.md §4.8). TypeName
// disambiguates the type bucket an asset's name is resolved within
// (§4.7's resolve signature); Binary selects the binary vs. text
// accessor; Source requests the entry's source_path instead of its
// primary path (the get_source=true retry of §4.5 step 3).
type Request struct {
	PackageName string
	TypeName    string
	AssetName   string
	Binary      bool
	Source      bool
	Context     any
}

// Response is the filled-in result struct the callback receives
// (spec.md §4.8).
type Response struct {
	AssetName   string
	PackageName string
	Size        int64
	Bytes       []byte
	Text        string
	FromSource  bool
	Result      Result
	Path        string
	Context     any
}

// VFS owns a sequence of packages loaded from a primary manifest and
// its transitive references (spec.md §4.8). The package list is
// mutated only during Initialize/Shutdown; between them it is
// read-only (spec.md §5), so lookups take no lock.
type VFS struct {
	cfg      Config
	packages map[string]*pkgmanifest.Package // keyed by package name, case-sensitive per manifest naming

	watcher   *fsnotify.Watcher
	watchMu   sync.Mutex
	watches   map[uint32]string
	nextWatch uint32

	group singleflight.Group
}

// New constructs a VFS that still requires Initialize before use.
func New() *VFS {
	return &VFS{}
}

// Initialize parses cfg.ManifestPath and recursively loads the
// packages it references, skipping any package name already loaded
// (spec.md §4.8, §8 Scenario 5). Reference loading is concurrent and
// deduplicated via errgroup.
func (v *VFS) Initialize(cfg Config) error {
	v.cfg = cfg

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errs.NewVFSError("", "", string(ResultInternalFailure), err)
	}
	v.watcher = watcher
	v.watches = make(map[uint32]string)

	rootManifest, rootDir, err := loadManifestFile(cfg.ManifestPath)
	if err != nil {
		return errs.NewVFSError("", cfg.ManifestPath, string(ResultInternalFailure), err)
	}

	var mu sync.Mutex
	loaded := map[string]*pkgmanifest.Package{
		rootManifest.PackageName: pkgmanifest.NewPackageFromManifest(rootManifest, rootDir),
	}

	g, _ := errgroup.WithContext(context.Background())
	var loadRefs func(refs []pkgmanifest.ManifestReference, baseDir string)
	loadRefs = func(refs []pkgmanifest.ManifestReference, baseDir string) {
		for _, ref := range refs {
			ref := ref
			g.Go(func() error {
				mu.Lock()
				_, alreadyLoaded := loaded[ref.Name]
				mu.Unlock()
				if alreadyLoaded {
					return nil
				}

				path := ref.Path
				if !filepath.IsAbs(path) {
					path = filepath.Join(baseDir, path)
				}
				m, dir, err := loadManifestFile(path)
				if err != nil {
					return err
				}

				mu.Lock()
				if _, ok := loaded[m.PackageName]; ok {
					mu.Unlock()
					return nil
				}
				loaded[m.PackageName] = pkgmanifest.NewPackageFromManifest(m, dir)
				mu.Unlock()

				loadRefs(m.References, dir)
				return nil
			})
		}
	}
	loadRefs(rootManifest.References, rootDir)

	if err := g.Wait(); err != nil {
		return errs.NewVFSError("", cfg.ManifestPath, string(ResultInternalFailure), err)
	}

	v.packages = loaded
	return nil
}

func loadManifestFile(path string) (*pkgmanifest.Manifest, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	m, err := pkgmanifest.ParseManifest(string(data))
	if err != nil {
		return nil, "", err
	}
	return m, filepath.Dir(path), nil
}

// Shutdown destroys every loaded package and closes the filesystem
// watcher (spec.md §4.8).
func (v *VFS) Shutdown() error {
	v.packages = nil
	v.watchMu.Lock()
	v.watches = nil
	v.watchMu.Unlock()
	if v.watcher != nil {
		return v.watcher.Close()
	}
	return nil
}

// RequestAsset resolves a (package, type, asset) request and invokes
// callback exactly once with the filled Response (spec.md §4.8).
// Currently synchronous, as in the original; concurrent duplicate
// requests for the same (package, type, asset, binary, source) key
// collapse into a single disk read via singleflight.
func (v *VFS) RequestAsset(req Request, callback func(Response)) {
	key := req.PackageName + "\x00" + req.TypeName + "\x00" + req.AssetName + "\x00" +
		boolKey(req.Binary) + boolKey(req.Source)

	iface, _, _ := v.group.Do(key, func() (any, error) {
		return v.resolve(req), nil
	})
	resp := iface.(Response)
	resp.Context = req.Context
	callback(resp)
}

func boolKey(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (v *VFS) resolve(req Request) Response {
	resp := Response{AssetName: req.AssetName, PackageName: req.PackageName, FromSource: req.Source}

	pkg, ok := v.packages[req.PackageName]
	if !ok {
		resp.Result = ResultPackageDoesNotExist
		return resp
	}

	var (
		path string
		size int64
		err  error
	)
	if req.Source {
		path, size, err = pkg.ResolveSource(req.TypeName, req.AssetName)
	} else {
		path, size, err = pkg.Resolve(req.TypeName, req.AssetName)
	}
	if err != nil {
		resp.Result = classifyResolveError(req.Source, err)
		return resp
	}
	resp.Path = path
	resp.Size = size

	buf, err := readBuffer(req.Source, pkg, req.TypeName, req.AssetName)
	if err != nil {
		resp.Result = ResultReadError
		return resp
	}
	if req.Binary {
		resp.Bytes = buf
	} else {
		resp.Text = string(buf)
	}

	resp.Result = ResultSuccess
	return resp
}

func readBuffer(source bool, pkg *pkgmanifest.Package, typeName, assetName string) ([]byte, error) {
	if source {
		return pkg.BytesGetSource(typeName, assetName)
	}
	return pkg.BytesGet(typeName, assetName)
}

func classifyResolveError(source bool, err error) Result {
	if errors.Is(err, fs.ErrNotExist) {
		if source {
			return ResultSourceFileDoesNotExist
		}
		return ResultFileDoesNotExist
	}
	return ResultNotInPackage
}

// RequestDirectFromDisk bypasses the package index entirely and reads
// path directly; the response's PackageName is left empty and
// AssetName is derived from the filename stem (spec.md §4.8).
func (v *VFS) RequestDirectFromDisk(path string, binary bool, context any, callback func(Response)) {
	resp := Response{
		AssetName: stemOf(path),
		Path:      path,
		Context:   context,
	}

	info, err := os.Stat(path)
	if err != nil {
		resp.Result = ResultFileDoesNotExist
		callback(resp)
		return
	}
	resp.Size = info.Size()

	buf, err := os.ReadFile(path)
	if err != nil {
		resp.Result = ResultReadError
		callback(resp)
		return
	}
	if binary {
		resp.Bytes = buf
	} else {
		resp.Text = string(buf)
	}
	resp.Result = ResultSuccess
	callback(resp)
}

func stemOf(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// AddWatch registers a filesystem watch on path and returns a
// non-zero id identifying it (spec.md §3's WatchID field, §6 "hidden
// sidecar files: none" — watches observe primary files only).
func (v *VFS) AddWatch(path string) (uint32, error) {
	v.watchMu.Lock()
	defer v.watchMu.Unlock()

	if v.watcher == nil {
		return 0, errs.NewVFSError("", path, string(ResultInternalFailure), errors.New("vfs not initialized"))
	}
	if err := v.watcher.Add(path); err != nil {
		return 0, errs.NewVFSError("", path, string(ResultInternalFailure), err)
	}
	v.nextWatch++
	id := v.nextWatch
	v.watches[id] = path
	return id, nil
}

// RemoveWatch unregisters a watch previously returned by AddWatch. A
// zero or unknown id is a no-op, matching "WatchID non-zero once
// active" (spec.md §3).
func (v *VFS) RemoveWatch(id uint32) error {
	if id == 0 {
		return nil
	}
	v.watchMu.Lock()
	defer v.watchMu.Unlock()

	path, ok := v.watches[id]
	if !ok {
		return nil
	}
	delete(v.watches, id)
	if v.watcher == nil {
		return nil
	}
	if err := v.watcher.Remove(path); err != nil {
		logx.Warnf("vfs: failed to remove watch on %q: %v", path, err)
		return err
	}
	return nil
}

// Events exposes the underlying fsnotify event channel for callers
// that want to react to watched-file changes (hot-reload beyond a
// watch id is explicitly out of scope per spec.md's Non-goals; this
// just surfaces the raw notification stream).
func (v *VFS) Events() <-chan fsnotify.Event {
	if v.watcher == nil {
		return nil
	}
	return v.watcher.Events
}
