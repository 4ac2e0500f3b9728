package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/goassets/internal/assets"
)

func TestImageRoundTrip(t *testing.T) {
	in := &assets.Image{
		Format:    assets.ImageFormatRGBA8,
		Width:     2,
		Height:    2,
		MipLevels: 1,
		Pixels:    []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	}
	buf, err := SerializeImage(in)
	require.NoError(t, err)

	out, err := DeserializeImage(buf)
	require.NoError(t, err)
	assert.Equal(t, in.Format, out.Format)
	assert.Equal(t, in.Width, out.Width)
	assert.Equal(t, in.Height, out.Height)
	assert.Equal(t, in.MipLevels, out.MipLevels)
	assert.Equal(t, uint32(4), out.ChannelCount)
	assert.Equal(t, in.Pixels, out.Pixels)
	assert.Equal(t, assets.TypeImage, out.Type)
}

func TestStaticMeshRoundTrip(t *testing.T) {
	in := &assets.StaticMesh{
		Extents: assets.Extents3D{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}},
		Center:  [3]float32{0, 0, 0},
		Geometries: []assets.StaticMeshGeometry{
			{
				Center:            [3]float32{0, 0, 0},
				Extents:           assets.Extents3D{Min: [3]float32{-1, -1, -1}, Max: [3]float32{1, 1, 1}},
				Name:              "body",
				MaterialAssetName: "skin",
				Indices:           []uint32{0, 1, 2},
				Vertices: []assets.Vertex3D{
					{Position: [3]float32{0, 0, 0}, Normal: [3]float32{0, 1, 0}},
					{Position: [3]float32{1, 0, 0}, Normal: [3]float32{0, 1, 0}},
					{Position: [3]float32{0, 1, 0}, Normal: [3]float32{0, 1, 0}},
				},
			},
			{Name: "", MaterialAssetName: ""},
		},
	}
	buf, err := SerializeStaticMesh(in)
	require.NoError(t, err)

	out, err := DeserializeStaticMesh(buf)
	require.NoError(t, err)
	assert.Equal(t, in.Extents, out.Extents)
	assert.Equal(t, in.Center, out.Center)
	require.Len(t, out.Geometries, 2)
	assert.Equal(t, "body", out.Geometries[0].Name)
	assert.Equal(t, "skin", out.Geometries[0].MaterialAssetName)
	assert.Equal(t, in.Geometries[0].Indices, out.Geometries[0].Indices)
	assert.Equal(t, in.Geometries[0].Vertices, out.Geometries[0].Vertices)
	assert.Equal(t, "", out.Geometries[1].Name)
}

func TestBitmapFontRoundTrip(t *testing.T) {
	in := &assets.BitmapFont{
		FontSize:   16,
		LineHeight: 20,
		Baseline:   14,
		AtlasW:     256,
		AtlasH:     256,
		FaceName:   "Arial",
		Glyphs: []assets.Glyph{
			{Codepoint: 'A', X: 0, Y: 0, Width: 10, Height: 12, XOffset: 1, YOffset: -1, XAdvance: 11, PageID: 0},
		},
		Kernings: []assets.Kerning{
			{CodepointA: 'A', CodepointB: 'V', Amount: -2},
		},
		Pages: []assets.FontPage{
			{Name: "page0.png"},
		},
	}
	buf, err := SerializeBitmapFont(in)
	require.NoError(t, err)

	out, err := DeserializeBitmapFont(buf)
	require.NoError(t, err)
	assert.Equal(t, in.FaceName, out.FaceName)
	assert.Equal(t, in.FontSize, out.FontSize)
	require.Len(t, out.Glyphs, 1)
	assert.Equal(t, in.Glyphs[0], out.Glyphs[0])
	require.Len(t, out.Kernings, 1)
	assert.Equal(t, in.Kernings[0], out.Kernings[0])
	require.Len(t, out.Pages, 1)
	assert.Equal(t, uint32(0), out.Pages[0].ID)
	assert.Equal(t, "page0.png", out.Pages[0].Name)
}

func TestBitmapFontRejectsNoGlyphsOrPages(t *testing.T) {
	_, err := SerializeBitmapFont(&assets.BitmapFont{Pages: []assets.FontPage{{Name: "p"}}})
	assert.Error(t, err)

	_, err = SerializeBitmapFont(&assets.BitmapFont{Glyphs: []assets.Glyph{{}}})
	assert.Error(t, err)
}

func TestAudioRoundTrip(t *testing.T) {
	in := &assets.Audio{
		Channels:         2,
		SampleRate:       44100,
		TotalSampleCount: 4,
		PCMData:          []int16{0, 100, -100, 32767},
	}
	buf, err := SerializeAudio(in)
	require.NoError(t, err)

	out, err := DeserializeAudio(buf)
	require.NoError(t, err)
	assert.Equal(t, in.Channels, out.Channels)
	assert.Equal(t, in.SampleRate, out.SampleRate)
	assert.Equal(t, in.TotalSampleCount, out.TotalSampleCount)
	assert.Equal(t, in.PCMData, out.PCMData)
}

func TestDeserializeImageRejectsBadMagic(t *testing.T) {
	buf, err := SerializeImage(&assets.Image{Format: assets.ImageFormatR8, Width: 1, Height: 1, Pixels: []byte{0}})
	require.NoError(t, err)
	buf[0] ^= 0xFF

	_, err = DeserializeImage(buf)
	assert.Error(t, err)
}

func TestDeserializeImageRejectsTruncatedBuffer(t *testing.T) {
	buf, err := SerializeImage(&assets.Image{Format: assets.ImageFormatR8, Width: 1, Height: 1, Pixels: []byte{9}})
	require.NoError(t, err)

	_, err = DeserializeImage(buf[:len(buf)-1])
	assert.Error(t, err)
}
