package serializers

import (
	"errors"
	"math"
)

var (
	errShortBuffer                = errors.New("buffer too short for declared field")
	errNoGlyphs                   = errors.New("bitmap font has no glyphs")
	errNoPages                    = errors.New("bitmap font has no pages")
	errMissingField               = errors.New("required field missing")
	errUnsupportedMaterialVersion = errors.New("unsupported material version, no auto-migration")
	errUnsupportedSceneVersion    = errors.New("scene version is newer than supported")
	errUnknownAttachmentType      = errors.New("unknown scene attachment type")
	errNoStages                   = errors.New("shader requires at least one stage")
)

func float32bits(f float32) uint32 { return math.Float32bits(f) }
func float32frombits(b uint32) float32 { return math.Float32frombits(b) }
