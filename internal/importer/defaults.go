package importer

import "github.com/standardbeagle/goassets/internal/assets"

// RegisterDefaults wires the built-in importers into r, mirroring the
// original engine's plugin-time calls to
// basset_importer_registry_register (basset_importer_registry.c).
func RegisterDefaults(r *Registry) error {
	if err := r.Register(Importer{
		Type:            assets.TypeStaticMesh,
		SourceExtension: "obj",
		Import:          ImportStaticMeshOBJ,
	}); err != nil {
		return err
	}
	return r.Register(Importer{
		Type:            assets.TypeAudio,
		SourceExtension: "pcm",
		Import:          ImportAudioPCM,
	})
}
