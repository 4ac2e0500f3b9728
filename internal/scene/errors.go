package scene

import "errors"

var (
	errMissingField          = errors.New("required field missing")
	errUnsupportedVersion    = errors.New("scene version is newer than supported")
	errUnknownAttachmentType = errors.New("unknown scene attachment type")
	errUnknownVolumeShape    = errors.New("unknown volume shape type")
	errUnsupportedVolumeType = errors.New("unsupported volume type")
)
