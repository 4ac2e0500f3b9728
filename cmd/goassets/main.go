// Command goassets is a small inspector CLI over the asset pipeline:
// it can summarize a package manifest's type buckets, and fetch and
// print a single asset by package/type/name (SPEC_FULL.md §2, ground:
// cmd/lci/main.go's cli-based command tree).
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/goassets/internal/handlers"
	"github.com/standardbeagle/goassets/internal/importer"
	"github.com/standardbeagle/goassets/internal/logx"
	"github.com/standardbeagle/goassets/internal/pkgmanifest"
	"github.com/standardbeagle/goassets/internal/toolconfig"
	"github.com/standardbeagle/goassets/internal/version"
	"github.com/standardbeagle/goassets/internal/vfs"
)

func main() {
	app := &cli.App{
		Name:    "goassets",
		Usage:   "inspect and fetch assets from a goassets package manifest",
		Version: version.FullInfo(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "tool config file path",
				Value: ".goassets.kdl",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			tc, err := toolconfig.Load(c.String("config"))
			if err != nil {
				return err
			}
			if tc.Verbose || c.Bool("verbose") {
				logx.SetLevel(logx.LevelDebug)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "summarize a manifest's type buckets and assets",
				ArgsUsage: "<manifest-path>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:  "include",
						Usage: "glob pattern an asset's path must match to be shown (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "exclude",
						Usage: "glob pattern that hides a matching asset's path (repeatable)",
					},
				},
				Action: inspectCommand,
			},
			{
				Name:      "cat",
				Usage:     "fetch one asset and print its text form (or byte count, for binary types)",
				ArgsUsage: "<manifest-path> <package> <type> <name>",
				Action:    catCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "goassets: %v\n", err)
		os.Exit(1)
	}
}

func inspectCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("usage: goassets inspect <manifest-path>")
	}
	path := c.Args().First()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest: %w", err)
	}
	m, err := pkgmanifest.ParseManifest(string(data))
	if err != nil {
		return fmt.Errorf("parsing manifest: %w", err)
	}
	m = pkgmanifest.FilterAssets(m, c.StringSlice("include"), c.StringSlice("exclude"))

	byType := make(map[string][]pkgmanifest.ManifestAsset)
	for _, a := range m.Assets {
		byType[a.Type] = append(byType[a.Type], a)
	}

	fmt.Printf("package %q (%d reference(s), %d asset(s))\n", m.PackageName, len(m.References), len(m.Assets))
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("  %s:\n", t)
		assets := byType[t]
		sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
		for _, a := range assets {
			if a.SourcePath != "" {
				fmt.Printf("    %-24s %s (source: %s)\n", a.Name, a.Path, a.SourcePath)
			} else {
				fmt.Printf("    %-24s %s\n", a.Name, a.Path)
			}
		}
	}
	return nil
}

func catCommand(c *cli.Context) error {
	if c.NArg() < 4 {
		return fmt.Errorf("usage: goassets cat <manifest-path> <package> <type> <name>")
	}
	manifestPath := c.Args().Get(0)
	packageName := c.Args().Get(1)
	typeName := c.Args().Get(2)
	assetName := c.Args().Get(3)

	v := vfs.New()
	if err := v.Initialize(vfs.Config{ManifestPath: manifestPath}); err != nil {
		return fmt.Errorf("initializing vfs: %w", err)
	}
	defer v.Shutdown()

	impReg := importer.NewRegistry()
	if err := importer.RegisterDefaults(impReg); err != nil {
		return fmt.Errorf("registering importers: %w", err)
	}

	reg := handlers.NewRegistry(v, impReg)
	handlers.RegisterDefaults(reg)

	h, ok := reg.LookupByName(typeName)
	if !ok {
		return fmt.Errorf("no handler registered for type %q", typeName)
	}

	var (
		result handlers.Result
		asset  any
	)
	reg.RequestAsset(h, handlers.Request{PackageName: packageName, TypeName: typeName, AssetName: assetName}, func(r handlers.Result, a any, _ any) {
		result, asset = r, a
	})

	if result != handlers.ResultSuccess {
		return fmt.Errorf("request failed: %s", result)
	}

	if h.IsBinary {
		buf, err := h.BinarySerialize(asset)
		if err != nil {
			return fmt.Errorf("re-serializing for display: %w", err)
		}
		fmt.Printf("%s/%s/%s: %d binary bytes\n", packageName, typeName, assetName, len(buf))
		return nil
	}

	text, err := h.TextSerialize(asset)
	if err != nil {
		return fmt.Errorf("re-serializing for display: %w", err)
	}
	fmt.Print(text)
	return nil
}
