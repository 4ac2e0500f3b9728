package importer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

func TestImportAudioPCM(t *testing.T) {
	buf := make([]byte, 8+6)
	binary.LittleEndian.PutUint32(buf[0:4], 2)     // channels
	binary.LittleEndian.PutUint32(buf[4:8], 44100) // sample_rate
	binary.LittleEndian.PutUint16(buf[8:10], uint16(int16(100)))
	binary.LittleEndian.PutUint16(buf[10:12], uint16(int16(-200)))
	binary.LittleEndian.PutUint16(buf[12:14], uint16(int16(300)))

	audio := &assets.Audio{}
	siblings, err := ImportAudioPCM(ImportContext{}, buf, audio)
	require.NoError(t, err)
	assert.Empty(t, siblings)

	assert.Equal(t, uint32(2), audio.Channels)
	assert.Equal(t, uint32(44100), audio.SampleRate)
	require.Len(t, audio.PCMData, 3)
	assert.Equal(t, []int16{100, -200, 300}, audio.PCMData)
	assert.Equal(t, uint64(3), audio.TotalSampleCount)
}

func TestImportAudioPCMRejectsShortHeader(t *testing.T) {
	_, err := ImportAudioPCM(ImportContext{}, []byte{1, 2, 3}, &assets.Audio{})
	assert.Error(t, err)
}

func TestImportAudioPCMRejectsWrongOutType(t *testing.T) {
	_, err := ImportAudioPCM(ImportContext{}, make([]byte, 8), &assets.StaticMesh{})
	assert.Error(t, err)
}
