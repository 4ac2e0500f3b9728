package vfs

// Config controls VFS.Initialize (spec.md §4.8, §9 Open Question #3;
// SPEC_FULL.md §1.3). The original engine hard-codes its manifest path;
// here it's a configuration input with that original value only as the
// zero-value fallback DefaultConfig returns.
type Config struct {
	// ManifestPath is the primary manifest file to parse on
	// Initialize. References it names are loaded recursively,
	// skipping package names already loaded (spec.md §4.8).
	ManifestPath string

	// MaxFileSize is a per-read size limit, 0 meaning unbounded. No
	// read in this package consults it: BytesGet/TextGet reads are not
	// capped.
	MaxFileSize int64

	// FollowSourceImportFallback names the default handler's
	// file-does-not-exist -> get_source=true retry (spec.md §4.5
	// step 3). The handler pipeline does not consult it: a missing
	// primary file is always retried from its source_path, whatever
	// this field holds.
	FollowSourceImportFallback bool
}

// DefaultConfig mirrors the original engine's compiled-in manifest
// path as a default value only, not a constant consumed directly by
// Initialize.
func DefaultConfig() Config {
	return Config{
		ManifestPath:               "../testbed.bapp/asset_manifest.bson",
		FollowSourceImportFallback: true,
	}
}
