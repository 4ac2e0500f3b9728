// Package testhelpers provides shared fixtures for package-manifest,
// VFS, and asset-handler level tests (SPEC_FULL.md's ambient test
// tooling section, grounded on the teacher's testhelpers package).
package testhelpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ManifestBuilder is a fluent .bpackage manifest-text builder for
// tests, adapted from the teacher's TestConfigBuilder fluent-API
// pattern (testhelpers/config_builder.go) onto this module's BSON
// manifest grammar instead of the teacher's YAML-ish config struct.
type ManifestBuilder struct {
	packageName string
	references  []manifestRefEntry
	assets      []manifestAssetEntry
}

type manifestRefEntry struct {
	name string
	path string
}

type manifestAssetEntry struct {
	name       string
	typeName   string
	path       string
	sourcePath string
}

// NewManifestBuilder starts a manifest builder for the named package.
func NewManifestBuilder(packageName string) *ManifestBuilder {
	return &ManifestBuilder{packageName: packageName}
}

// WithReference adds a "references" entry pointing at another
// package's manifest file.
func (b *ManifestBuilder) WithReference(name, path string) *ManifestBuilder {
	b.references = append(b.references, manifestRefEntry{name: name, path: path})
	return b
}

// WithAsset adds an "assets" entry. sourcePath may be empty.
func (b *ManifestBuilder) WithAsset(name, typeName, path, sourcePath string) *ManifestBuilder {
	b.assets = append(b.assets, manifestAssetEntry{name: name, typeName: typeName, path: path, sourcePath: sourcePath})
	return b
}

// Build renders the accumulated state to BSON manifest text.
func (b *ManifestBuilder) Build() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "package_name = %q\n", b.packageName)

	if len(b.references) > 0 {
		sb.WriteString("references = [\n")
		for _, r := range b.references {
			fmt.Fprintf(&sb, "    { name = %q path = %q }\n", r.name, r.path)
		}
		sb.WriteString("]\n")
	}

	sb.WriteString("assets = [\n")
	for _, a := range b.assets {
		fmt.Fprintf(&sb, "    { name = %q type = %q path = %q", a.name, a.typeName, a.path)
		if a.sourcePath != "" {
			fmt.Fprintf(&sb, " source_path = %q", a.sourcePath)
		}
		sb.WriteString(" }\n")
	}
	sb.WriteString("]\n")

	return sb.String()
}

// WriteTo renders the manifest and writes it to name within dir,
// returning the full path.
func (b *ManifestBuilder) WriteTo(t *testing.T, dir, name string) string {
	t.Helper()
	return WriteFile(t, dir, name, b.Build())
}

// WriteFile writes body to name within dir, failing the test on error.
// Centralizes the small manifest/fixture-writing helper duplicated
// ad hoc across internal/vfs and internal/handlers' own test files.
func WriteFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
