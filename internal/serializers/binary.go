// Package serializers implements the per-type binary and text codecs
// named in spec.md §4.4, built on top of internal/binhdr's shared
// header and internal/bson's tree accessors.
package serializers

import (
	"encoding/binary"

	"github.com/standardbeagle/goassets/internal/assets"
	"github.com/standardbeagle/goassets/internal/binhdr"
	"github.com/standardbeagle/goassets/internal/errs"
)

const currentBinaryVersion uint32 = 1

// glyphSize and kerningSize are the fixed raw record sizes written
// and read verbatim for a bitmap font's glyph/kerning arrays.
const glyphSize = 20
const kerningSize = 12

func le() binary.ByteOrder { return binary.LittleEndian }

// writeString writes a u32 length prefix followed by the raw bytes,
// no NUL terminator (spec.md §4.4's "names are stored without NUL").
func writeString(buf []byte, off int, s string) int {
	le().PutUint32(buf[off:off+4], uint32(len(s)))
	off += 4
	off += copy(buf[off:], s)
	return off
}

func stringWireLen(s string) int { return 4 + len(s) }

func readString(buf []byte, off int) (string, int, error) {
	if off+4 > len(buf) {
		return "", off, errs.NewSerializeError("", "", errShortBuffer)
	}
	n := int(le().Uint32(buf[off : off+4]))
	off += 4
	if n < 0 || off+n > len(buf) {
		return "", off, errs.NewSerializeError("", "", errShortBuffer)
	}
	s := string(buf[off : off+n])
	off += n
	return s, off, nil
}

// SerializeImage implements the binary image serializer (spec.md
// §4.4): a header extension of {format, width, height, mip_levels,
// pad[3]} followed by the raw pixel block.
func SerializeImage(a *assets.Image) ([]byte, error) {
	const extSize = 4 + 4 + 4 + 1 + 3
	h := binhdr.Header{
		Magic:         binhdr.Magic,
		Type:          uint32(assets.TypeImage),
		Version:       currentBinaryVersion,
		DataBlockSize: uint32(extSize + len(a.Pixels)),
	}
	buf := make([]byte, binhdr.Size+extSize+len(a.Pixels))
	copy(buf, h.Encode())
	off := binhdr.Size
	le().PutUint32(buf[off:off+4], uint32(a.Format))
	off += 4
	le().PutUint32(buf[off:off+4], a.Width)
	off += 4
	le().PutUint32(buf[off:off+4], a.Height)
	off += 4
	buf[off] = byte(a.MipLevels)
	off += 4 // mip_levels byte + 3 padding bytes
	copy(buf[off:], a.Pixels)
	return buf, nil
}

// DeserializeImage is SerializeImage's inverse.
func DeserializeImage(buf []byte) (*assets.Image, error) {
	const extSize = 4 + 4 + 4 + 1 + 3
	h, err := binhdr.Decode(buf)
	if err != nil {
		return nil, errs.NewSerializeError("image", "", err)
	}
	if err := h.Validate(uint32(assets.TypeImage), len(buf)); err != nil {
		return nil, errs.NewSerializeError("image", "", err)
	}
	off := binhdr.Size
	format := assets.ImageFormat(le().Uint32(buf[off : off+4]))
	off += 4
	width := le().Uint32(buf[off : off+4])
	off += 4
	height := le().Uint32(buf[off : off+4])
	off += 4
	mipLevels := buf[off]
	off += extSize - 12

	pixels := make([]byte, int(h.DataBlockSize)-extSize)
	copy(pixels, buf[binhdr.Size+extSize:])

	out := &assets.Image{
		Format:       format,
		Width:        width,
		Height:       height,
		MipLevels:    uint32(mipLevels),
		ChannelCount: format.ChannelCount(),
		Pixels:       pixels,
	}
	out.Type = assets.TypeImage
	out.Metadata.Version = h.Version
	out.Size = uint64(len(buf))
	return out, nil
}

// SerializeStaticMesh implements the binary static mesh serializer
// (spec.md §4.4).
func SerializeStaticMesh(a *assets.StaticMesh) ([]byte, error) {
	const extHeader = 24 + 12 + 4 // extents(min+max) + center + geometry_count(u16, padded to 4)
	dataSize := 0
	for _, g := range a.Geometries {
		dataSize += 12 + 24 // center + extents
		dataSize += stringWireLen(g.Name)
		dataSize += stringWireLen(g.MaterialAssetName)
		dataSize += 4 + 4*len(g.Indices)
		dataSize += 4 + 48*len(g.Vertices)
	}

	h := binhdr.Header{
		Magic:         binhdr.Magic,
		Type:          uint32(assets.TypeStaticMesh),
		Version:       currentBinaryVersion,
		DataBlockSize: uint32(extHeader + dataSize),
	}
	buf := make([]byte, binhdr.Size+extHeader+dataSize)
	copy(buf, h.Encode())
	off := binhdr.Size
	off = putExtents(buf, off, a.Extents)
	off = putVec3(buf, off, a.Center)
	le().PutUint16(buf[off:off+2], uint16(len(a.Geometries)))
	off += 4 // u16 + 2 padding

	for _, g := range a.Geometries {
		off = putVec3(buf, off, g.Center)
		off = putExtents(buf, off, g.Extents)
		off = writeString(buf, off, g.Name)
		off = writeString(buf, off, g.MaterialAssetName)
		le().PutUint32(buf[off:off+4], uint32(len(g.Indices)))
		off += 4
		for _, idx := range g.Indices {
			le().PutUint32(buf[off:off+4], idx)
			off += 4
		}
		le().PutUint32(buf[off:off+4], uint32(len(g.Vertices)))
		off += 4
		for _, v := range g.Vertices {
			off = putVertex(buf, off, v)
		}
	}
	return buf, nil
}

// DeserializeStaticMesh is SerializeStaticMesh's inverse.
func DeserializeStaticMesh(buf []byte) (*assets.StaticMesh, error) {
	h, err := binhdr.Decode(buf)
	if err != nil {
		return nil, errs.NewSerializeError("static_mesh", "", err)
	}
	if err := h.Validate(uint32(assets.TypeStaticMesh), len(buf)); err != nil {
		return nil, errs.NewSerializeError("static_mesh", "", err)
	}
	off := binhdr.Size
	extents, off2 := getExtents(buf, off)
	off = off2
	center, off2 := getVec3(buf, off)
	off = off2
	geomCount := int(le().Uint16(buf[off : off+2]))
	off += 4

	out := &assets.StaticMesh{Extents: extents, Center: center}
	out.Geometries = make([]assets.StaticMeshGeometry, geomCount)
	for i := 0; i < geomCount; i++ {
		var g assets.StaticMeshGeometry
		g.Center, off = getVec3(buf, off)
		g.Extents, off = getExtents(buf, off)
		g.Name, off, err = readString(buf, off)
		if err != nil {
			return nil, errs.NewSerializeError("static_mesh", "name", err)
		}
		g.MaterialAssetName, off, err = readString(buf, off)
		if err != nil {
			return nil, errs.NewSerializeError("static_mesh", "material_asset_name", err)
		}
		idxCount := int(le().Uint32(buf[off : off+4]))
		off += 4
		g.Indices = make([]uint32, idxCount)
		for j := 0; j < idxCount; j++ {
			g.Indices[j] = le().Uint32(buf[off : off+4])
			off += 4
		}
		vertCount := int(le().Uint32(buf[off : off+4]))
		off += 4
		g.Vertices = make([]assets.Vertex3D, vertCount)
		for j := 0; j < vertCount; j++ {
			g.Vertices[j], off = getVertex(buf, off)
		}
		out.Geometries[i] = g
	}
	out.Type = assets.TypeStaticMesh
	out.Metadata.Version = h.Version
	out.Size = uint64(len(buf))
	return out, nil
}

func putExtents(buf []byte, off int, e assets.Extents3D) int {
	off = putVec3(buf, off, e.Min)
	return putVec3(buf, off, e.Max)
}

func getExtents(buf []byte, off int) (assets.Extents3D, int) {
	var e assets.Extents3D
	e.Min, off = getVec3(buf, off)
	e.Max, off = getVec3(buf, off)
	return e, off
}

func putVec3(buf []byte, off int, v [3]float32) int {
	for _, f := range v {
		le().PutUint32(buf[off:off+4], float32bits(f))
		off += 4
	}
	return off
}

func getVec3(buf []byte, off int) ([3]float32, int) {
	var v [3]float32
	for i := range v {
		v[i] = float32frombits(le().Uint32(buf[off : off+4]))
		off += 4
	}
	return v, off
}

func putVertex(buf []byte, off int, v assets.Vertex3D) int {
	off = putVec3(buf, off, v.Position)
	off = putVec3(buf, off, v.Normal)
	for _, f := range v.Texcoord {
		le().PutUint32(buf[off:off+4], float32bits(f))
		off += 4
	}
	for _, f := range v.Tangent {
		le().PutUint32(buf[off:off+4], float32bits(f))
		off += 4
	}
	return off
}

func getVertex(buf []byte, off int) (assets.Vertex3D, int) {
	var v assets.Vertex3D
	v.Position, off = getVec3(buf, off)
	v.Normal, off = getVec3(buf, off)
	for i := range v.Texcoord {
		v.Texcoord[i] = float32frombits(le().Uint32(buf[off : off+4]))
		off += 4
	}
	for i := range v.Tangent {
		v.Tangent[i] = float32frombits(le().Uint32(buf[off : off+4]))
		off += 4
	}
	return v, off
}

// SerializeBitmapFont implements the binary bitmap font serializer
// (spec.md §4.4): face name, glyphs, kernings, then length-prefixed
// page names.
func SerializeBitmapFont(a *assets.BitmapFont) ([]byte, error) {
	if len(a.Glyphs) == 0 {
		return nil, errs.NewSerializeError("bitmap_font", "glyphs", errNoGlyphs)
	}
	if len(a.Pages) == 0 {
		return nil, errs.NewSerializeError("bitmap_font", "pages", errNoPages)
	}

	const extHeader = 4*4 + 4*4 + 4 // font_size, line_height, baseline, atlas_w/h, glyph/kerning/page/face_name_len counts
	dataSize := len(a.FaceName)
	dataSize += glyphSize * len(a.Glyphs)
	dataSize += kerningSize * len(a.Kernings)
	for _, p := range a.Pages {
		dataSize += stringWireLen(p.Name)
	}

	h := binhdr.Header{
		Magic:         binhdr.Magic,
		Type:          uint32(assets.TypeBitmapFont),
		Version:       currentBinaryVersion,
		DataBlockSize: uint32(extHeader + dataSize),
	}
	buf := make([]byte, binhdr.Size+extHeader+dataSize)
	copy(buf, h.Encode())
	off := binhdr.Size
	le().PutUint32(buf[off:off+4], a.FontSize)
	off += 4
	le().PutUint32(buf[off:off+4], a.LineHeight)
	off += 4
	le().PutUint32(buf[off:off+4], a.Baseline)
	off += 4
	le().PutUint32(buf[off:off+4], a.AtlasW)
	off += 4
	le().PutUint32(buf[off:off+4], a.AtlasH)
	off += 4
	le().PutUint32(buf[off:off+4], uint32(len(a.Glyphs)))
	off += 4
	le().PutUint32(buf[off:off+4], uint32(len(a.Kernings)))
	off += 4
	le().PutUint32(buf[off:off+4], uint32(len(a.Pages)))
	off += 4
	le().PutUint32(buf[off:off+4], uint32(len(a.FaceName)))
	off += 4

	off += copy(buf[off:], a.FaceName)

	for _, g := range a.Glyphs {
		le().PutUint32(buf[off:off+4], uint32(g.Codepoint))
		off += 4
		le().PutUint16(buf[off:off+2], g.X)
		off += 2
		le().PutUint16(buf[off:off+2], g.Y)
		off += 2
		le().PutUint16(buf[off:off+2], g.Width)
		off += 2
		le().PutUint16(buf[off:off+2], g.Height)
		off += 2
		le().PutUint16(buf[off:off+2], uint16(g.XOffset))
		off += 2
		le().PutUint16(buf[off:off+2], uint16(g.YOffset))
		off += 2
		le().PutUint16(buf[off:off+2], uint16(g.XAdvance))
		off += 2
		buf[off] = g.PageID
		off += 2 // 1 byte field + 1 padding byte
	}

	for _, k := range a.Kernings {
		le().PutUint32(buf[off:off+4], uint32(k.CodepointA))
		off += 4
		le().PutUint32(buf[off:off+4], uint32(k.CodepointB))
		off += 4
		le().PutUint16(buf[off:off+2], uint16(k.Amount))
		off += 4 // i16 field + 2 padding bytes
	}

	for _, p := range a.Pages {
		off = writeString(buf, off, p.Name)
	}

	return buf, nil
}

// DeserializeBitmapFont is SerializeBitmapFont's inverse. Page ids are
// assigned positionally, 0..page_count-1 (spec.md §4.4).
func DeserializeBitmapFont(buf []byte) (*assets.BitmapFont, error) {
	h, err := binhdr.Decode(buf)
	if err != nil {
		return nil, errs.NewSerializeError("bitmap_font", "", err)
	}
	if err := h.Validate(uint32(assets.TypeBitmapFont), len(buf)); err != nil {
		return nil, errs.NewSerializeError("bitmap_font", "", err)
	}
	off := binhdr.Size
	fontSize := le().Uint32(buf[off : off+4])
	off += 4
	lineHeight := le().Uint32(buf[off : off+4])
	off += 4
	baseline := le().Uint32(buf[off : off+4])
	off += 4
	atlasW := le().Uint32(buf[off : off+4])
	off += 4
	atlasH := le().Uint32(buf[off : off+4])
	off += 4
	glyphCount := int(le().Uint32(buf[off : off+4]))
	off += 4
	kerningCount := int(le().Uint32(buf[off : off+4]))
	off += 4
	pageCount := int(le().Uint32(buf[off : off+4]))
	off += 4
	faceNameLen := int(le().Uint32(buf[off : off+4]))
	off += 4

	if glyphCount == 0 {
		return nil, errs.NewSerializeError("bitmap_font", "glyphs", errNoGlyphs)
	}
	if pageCount == 0 {
		return nil, errs.NewSerializeError("bitmap_font", "pages", errNoPages)
	}

	faceName := string(buf[off : off+faceNameLen])
	off += faceNameLen

	glyphs := make([]assets.Glyph, glyphCount)
	for i := range glyphs {
		glyphs[i].Codepoint = int32(le().Uint32(buf[off : off+4]))
		off += 4
		glyphs[i].X = le().Uint16(buf[off : off+2])
		off += 2
		glyphs[i].Y = le().Uint16(buf[off : off+2])
		off += 2
		glyphs[i].Width = le().Uint16(buf[off : off+2])
		off += 2
		glyphs[i].Height = le().Uint16(buf[off : off+2])
		off += 2
		glyphs[i].XOffset = int16(le().Uint16(buf[off : off+2]))
		off += 2
		glyphs[i].YOffset = int16(le().Uint16(buf[off : off+2]))
		off += 2
		glyphs[i].XAdvance = int16(le().Uint16(buf[off : off+2]))
		off += 2
		glyphs[i].PageID = buf[off]
		off += 2
	}

	kernings := make([]assets.Kerning, kerningCount)
	for i := range kernings {
		kernings[i].CodepointA = int32(le().Uint32(buf[off : off+4]))
		off += 4
		kernings[i].CodepointB = int32(le().Uint32(buf[off : off+4]))
		off += 4
		kernings[i].Amount = int16(le().Uint16(buf[off : off+2]))
		off += 4
	}

	pages := make([]assets.FontPage, pageCount)
	for i := range pages {
		var name string
		name, off, err = readString(buf, off)
		if err != nil {
			return nil, errs.NewSerializeError("bitmap_font", "page name", err)
		}
		pages[i] = assets.FontPage{ID: uint32(i), Name: name}
	}

	out := &assets.BitmapFont{
		FontSize:   fontSize,
		LineHeight: lineHeight,
		Baseline:   baseline,
		AtlasW:     atlasW,
		AtlasH:     atlasH,
		FaceName:   faceName,
		Glyphs:     glyphs,
		Kernings:   kernings,
		Pages:      pages,
	}
	out.Type = assets.TypeBitmapFont
	out.Metadata.Version = h.Version
	out.Size = uint64(len(buf))
	return out, nil
}

// SerializeAudio writes the PCM audio asset's binary form (supplemented
// feature, grounded on original_source's audio importer).
func SerializeAudio(a *assets.Audio) ([]byte, error) {
	const extHeader = 4 + 4 + 8 // channels, sample_rate, total_sample_count
	dataSize := len(a.PCMData) * 2
	h := binhdr.Header{
		Magic:         binhdr.Magic,
		Type:          uint32(assets.TypeAudio),
		Version:       currentBinaryVersion,
		DataBlockSize: uint32(extHeader + dataSize),
	}
	buf := make([]byte, binhdr.Size+extHeader+dataSize)
	copy(buf, h.Encode())
	off := binhdr.Size
	le().PutUint32(buf[off:off+4], a.Channels)
	off += 4
	le().PutUint32(buf[off:off+4], a.SampleRate)
	off += 4
	le().PutUint64(buf[off:off+8], a.TotalSampleCount)
	off += 8
	for _, s := range a.PCMData {
		le().PutUint16(buf[off:off+2], uint16(s))
		off += 2
	}
	return buf, nil
}

// DeserializeAudio is SerializeAudio's inverse.
func DeserializeAudio(buf []byte) (*assets.Audio, error) {
	const extHeader = 4 + 4 + 8 // channels, sample_rate, total_sample_count
	h, err := binhdr.Decode(buf)
	if err != nil {
		return nil, errs.NewSerializeError("audio", "", err)
	}
	if err := h.Validate(uint32(assets.TypeAudio), len(buf)); err != nil {
		return nil, errs.NewSerializeError("audio", "", err)
	}
	off := binhdr.Size
	channels := le().Uint32(buf[off : off+4])
	off += 4
	sampleRate := le().Uint32(buf[off : off+4])
	off += 4
	totalSamples := le().Uint64(buf[off : off+8])
	off += 8
	sampleCount := (int(h.DataBlockSize) - extHeader) / 2
	pcm := make([]int16, sampleCount)
	for i := range pcm {
		pcm[i] = int16(le().Uint16(buf[off : off+2]))
		off += 2
	}
	out := &assets.Audio{
		Channels:         channels,
		SampleRate:       sampleRate,
		TotalSampleCount: totalSamples,
		PCMData:          pcm,
	}
	out.Type = assets.TypeAudio
	out.Metadata.Version = h.Version
	out.Size = uint64(len(buf))
	return out, nil
}
