package assets

// ImageFormat enumerates the pixel formats the binary image serializer
// supports (spec.md §4.4).
type ImageFormat uint32

const (
	ImageFormatUnknown ImageFormat = iota
	ImageFormatR8
	ImageFormatRG8
	ImageFormatRGB8
	ImageFormatRGBA8
)

// ChannelCount returns the number of channels implied by f, derived on
// deserialize per spec.md §4.4.
func (f ImageFormat) ChannelCount() uint32 {
	switch f {
	case ImageFormatR8:
		return 1
	case ImageFormatRG8:
		return 2
	case ImageFormatRGB8:
		return 3
	case ImageFormatRGBA8:
		return 4
	default:
		return 0
	}
}

// Image is the binary image asset (spec.md §4.4): a header extension
// of {format, width, height, mip_levels, pad[3]} followed by the raw
// pixel block.
type Image struct {
	Base

	Format       ImageFormat
	Width        uint32
	Height       uint32
	MipLevels    uint32
	ChannelCount uint32

	Pixels []byte
}
