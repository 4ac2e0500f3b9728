// Package toolconfig loads the goassets CLI's own tool settings
// (search roots, verbosity) from a .goassets.kdl file, mirroring
// internal/config's KDL-loading pattern (SPEC_FULL.md §2: kdl-go is
// reused for the inspector CLI's own config since the asset pipeline's
// own text format is BSON, not KDL).
package toolconfig

import (
	"fmt"
	"os"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// Config holds the CLI's own settings, as distinct from anything
// describing an asset package (spec.md §4.7-§4.8).
type Config struct {
	SearchRoots []string
	Verbose     bool
}

// Default returns the zero-configuration CLI settings.
func Default() Config {
	return Config{SearchRoots: nil, Verbose: false}
}

// Load reads path if it exists, returning Default() unchanged when the
// file is absent so an unconfigured checkout still runs (spec.md's
// "defaults, then override from file" pattern, carried from
// internal/config.LoadKDL).
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("toolconfig: failed to read %s: %w", path, err)
	}

	doc, err := kdl.Parse(strings.NewReader(string(content)))
	if err != nil {
		return cfg, fmt.Errorf("toolconfig: failed to parse %s: %w", path, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "search_roots":
			for _, cn := range n.Children {
				if s, ok := firstStringArg(cn); ok {
					cfg.SearchRoots = append(cfg.SearchRoots, s)
				}
			}
		case "verbose":
			if b, ok := firstBoolArg(n); ok {
				cfg.Verbose = b
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func firstBoolArg(n *document.Node) (bool, bool) {
	if len(n.Arguments) == 0 {
		return false, false
	}
	if b, ok := n.Arguments[0].Value.(bool); ok {
		return b, true
	}
	return false, false
}
