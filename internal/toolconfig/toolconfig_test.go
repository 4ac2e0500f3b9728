package toolconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.kdl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadParsesSearchRootsAndVerbose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".goassets.kdl")
	require.NoError(t, os.WriteFile(path, []byte(`search_roots {
    "packages/runtime"
    "packages/shared"
}
verbose true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/runtime", "packages/shared"}, cfg.SearchRoots)
	assert.True(t, cfg.Verbose)
}
