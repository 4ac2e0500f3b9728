package assets

// Audio is the binary audio asset (supplemented from original_source's
// audio importer: bismuth.plugin.utils/src/importers/basset_importer_audio.c).
// The payload is always pre-decoded 16-bit PCM; decoding mp3/ogg/wav
// source files is explicitly out of scope and left to the importer
// layer's pre-decode step, not to this package.
type Audio struct {
	Base

	Channels         uint32
	SampleRate       uint32
	TotalSampleCount uint64
	PCMData          []int16
}
