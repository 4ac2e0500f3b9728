package pkgmanifest

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	edlib "github.com/hbollon/go-edlib"

	"github.com/standardbeagle/goassets/internal/errs"
)

// ErrBinaryBlobUnsupported is returned by NewPackageFromBinaryBlob: the
// format is reserved in the original engine but never implemented
// (spec.md §4.7).
var ErrBinaryBlobUnsupported = errors.New("binary blob packages are not supported")

// Entry is one asset's manifest record within a type bucket.
type Entry struct {
	Name       string
	Path       string
	SourcePath string
}

// Package is a named collection of asset type buckets, built from a
// manifest and backed by files on disk (spec.md §4.7). Entry tables
// are immutable after construction (spec.md §5).
type Package struct {
	Name string
	Root string // directory the manifest was loaded from; paths resolve relative to this.

	// buckets maps a lower-cased type-name to a map of lower-cased
	// asset-name to its entry. Binary-blob packages leave this nil.
	buckets map[string]map[string]Entry
	binary  bool
}

// NewPackageFromManifest builds a Package's type buckets from a parsed
// Manifest. root is the directory manifest-relative paths resolve
// against.
func NewPackageFromManifest(m *Manifest, root string) *Package {
	p := &Package{Name: m.PackageName, Root: root, buckets: make(map[string]map[string]Entry)}
	for _, a := range m.Assets {
		typeKey := normalizeKey(a.Type)
		bucket, ok := p.buckets[typeKey]
		if !ok {
			bucket = make(map[string]Entry)
			p.buckets[typeKey] = bucket
		}
		bucket[normalizeKey(a.Name)] = Entry{Name: a.Name, Path: a.Path, SourcePath: a.SourcePath}
	}
	return p
}

// NewPackageFromBinaryBlob is reserved for a single-file packed binary
// format; the original engine never implements it either (spec.md
// §4.7).
func NewPackageFromBinaryBlob(name string, blob []byte) (*Package, error) {
	return nil, errs.NewPackageError(name, "construct-from-blob", ErrBinaryBlobUnsupported)
}

// Resolve finds the type bucket by case-insensitive type-name match,
// then the entry by case-insensitive asset-name match, and for
// manifest packages opens the backing file and reports its size
// (spec.md §4.7). binary packages always fail with
// ErrBinaryBlobUnsupported.
func (p *Package) Resolve(typeName, name string) (diskPath string, size int64, err error) {
	entry, err := p.findEntry(typeName, name)
	if err != nil {
		return "", 0, err
	}
	path, size, statErr := p.statPath(entry.Path)
	if statErr != nil {
		return "", 0, errs.NewPackageError(p.Name, "resolve", statErr)
	}
	return path, size, nil
}

// ResolveSource is Resolve but against the entry's source-file path
// (spec.md §4.5 step 3, §8 Scenario 4). Fails distinctly when the
// entry has no source_path recorded at all, vs. when the source file
// itself is absent from disk.
func (p *Package) ResolveSource(typeName, name string) (diskPath string, size int64, err error) {
	entry, err := p.findEntry(typeName, name)
	if err != nil {
		return "", 0, err
	}
	if entry.SourcePath == "" {
		return "", 0, errs.NewPackageError(p.Name, "resolve-source", errors.New("asset has no source_path"))
	}
	path, size, statErr := p.statPath(entry.SourcePath)
	if statErr != nil {
		return "", 0, errs.NewPackageError(p.Name, "resolve-source", statErr)
	}
	return path, size, nil
}

func (p *Package) findEntry(typeName, name string) (Entry, error) {
	if p.binary {
		return Entry{}, errs.NewPackageError(p.Name, "resolve", ErrBinaryBlobUnsupported)
	}
	bucket, ok := p.buckets[normalizeKey(typeName)]
	if !ok {
		return Entry{}, p.notFoundError(typeName, name, nil)
	}
	entry, ok := bucket[normalizeKey(name)]
	if !ok {
		return Entry{}, p.notFoundError(typeName, name, bucketNames(bucket))
	}
	return entry, nil
}

func (p *Package) statPath(relOrAbs string) (string, int64, error) {
	path := relOrAbs
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Root, path)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		return "", 0, statErr
	}
	return path, info.Size(), nil
}

func bucketNames(bucket map[string]Entry) []string {
	names := make([]string, 0, len(bucket))
	for _, e := range bucket {
		names = append(names, e.Name)
	}
	return names
}

// notFoundError surfaces a case-insensitive lookup miss, decorated
// with a "did you mean" suggestion against the candidate pool when one
// is available (spec.md §4.7, SPEC_FULL.md §2 domain-stack table).
func (p *Package) notFoundError(typeName, name string, candidates []string) error {
	base := errors.New("asset not found: " + typeName + "/" + name)
	if len(candidates) == 0 {
		return errs.NewPackageError(p.Name, "resolve", base)
	}
	suggestion, err := edlib.FuzzySearch(name, candidates, edlib.JaroWinkler)
	if err != nil || suggestion == "" {
		return errs.NewPackageError(p.Name, "resolve", base)
	}
	return errs.NewPackageError(p.Name, "resolve", errors.New(base.Error()+" (did you mean \""+suggestion+"\"?)"))
}

// BytesGet resolves name and reads the whole file into a freshly
// allocated buffer (spec.md §4.7).
func (p *Package) BytesGet(typeName, name string) ([]byte, error) {
	path, size, err := p.Resolve(typeName, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewPackageError(p.Name, "bytes_get", err)
	}
	defer f.Close()

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errs.NewPackageError(p.Name, "bytes_get", err)
	}
	return buf, nil
}

// BytesGetSource is BytesGet against the entry's source_path rather
// than its primary path (spec.md §4.5 step 3).
func (p *Package) BytesGetSource(typeName, name string) ([]byte, error) {
	path, size, err := p.ResolveSource(typeName, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.NewPackageError(p.Name, "bytes_get_source", err)
	}
	defer f.Close()

	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errs.NewPackageError(p.Name, "bytes_get_source", err)
	}
	return buf, nil
}

// WriteBytes writes buf to the entry's primary path, creating it if
// absent (the default handler's write-back after an automatic import,
// spec.md §4.5 step 1).
func (p *Package) WriteBytes(typeName, name string, buf []byte) error {
	entry, err := p.findEntry(typeName, name)
	if err != nil {
		return err
	}
	path := entry.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.Root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errs.NewPackageError(p.Name, "write", err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return errs.NewPackageError(p.Name, "write", err)
	}
	return nil
}

// TextGet is BytesGet with the result converted to a string (spec.md
// §4.7).
func (p *Package) TextGet(typeName, name string) (string, error) {
	buf, err := p.BytesGet(typeName, name)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}
