package importer

import (
	"encoding/binary"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/errs"
)

// ImportAudioPCM wraps pre-decoded 16-bit PCM samples into an audio
// asset. Grounded on basset_importer_audio.c: the original switches on
// source file extension (mp3/ogg/wav) and runs a format-specific
// decoder before reaching this exact step -- filling channels,
// sample_rate, total_sample_count and pcm_data. Decoding compressed or
// container formats is explicitly out of scope here, so this importer
// is registered against a raw PCM source extension ("pcm") and expects
// data to already be 16-bit little-endian interleaved samples prefixed
// with a {channels uint32, sample_rate uint32} header; real mp3/ogg/wav
// decoding is left to a future, separately-licensed decoder plugged in
// at this same seam.
func ImportAudioPCM(_ ImportContext, data []byte, out any) ([]Sibling, error) {
	audio, ok := out.(*assets.Audio)
	if !ok {
		return nil, errs.NewSerializeError("audio", "", errWrongOutType)
	}
	if len(data) < 8 {
		return nil, errs.NewSerializeError("audio", "", errShortPCMHeader)
	}
	le := binary.LittleEndian
	channels := le.Uint32(data[0:4])
	sampleRate := le.Uint32(data[4:8])

	payload := data[8:]
	sampleCount := len(payload) / 2
	pcm := make([]int16, sampleCount)
	for i := 0; i < sampleCount; i++ {
		pcm[i] = int16(le.Uint16(payload[i*2 : i*2+2]))
	}

	audio.Channels = channels
	audio.SampleRate = sampleRate
	audio.TotalSampleCount = uint64(sampleCount)
	audio.PCMData = pcm
	return nil, nil
}
