package pkgmanifest

import "github.com/bmatcuk/doublestar/v4"

// FilterAssets returns a copy of m whose Assets are narrowed by glob
// patterns matched against each entry's Path (SPEC_FULL.md §2: doublestar
// wired into pkgmanifest for "config-driven asset include/exclude
// filters on package construction"). An empty include list keeps
// everything; exclude is applied after include and always wins.
// Malformed patterns are treated as non-matching rather than aborting
// the whole filter.
func FilterAssets(m *Manifest, include, exclude []string) *Manifest {
	out := &Manifest{PackageName: m.PackageName, References: m.References}
	for _, a := range m.Assets {
		if len(include) > 0 && !matchesAny(include, a.Path) {
			continue
		}
		if matchesAny(exclude, a.Path) {
			continue
		}
		out.Assets = append(out.Assets, a)
	}
	return out
}

func matchesAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, path)
		if err == nil && ok {
			return true
		}
	}
	return false
}
