package importer

import "errors"

var (
	errWrongOutType   = errors.New("importer: out value is not the expected asset type")
	errEmptyOBJ       = errors.New("obj file contains no geometry")
	errShortFieldList = errors.New("obj line has fewer fields than required")
	errShortPCMHeader = errors.New("pcm data shorter than the channels/sample_rate header")
)
