package mpegi

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//Reference tables restated from the standard, independent of the tables the
//decoder uses. Index 0 (free) and index 15 carry no value.
var refBitrates = map[string][]int{
	"V1_L1":   {0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, 0},
	"V1_L2":   {0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, 0},
	"V1_L3":   {0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 0},
	"V2_L1":   {0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, 0},
	"V2_L2_3": {0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, 0},
}

var refSamplingRates = map[MPEGVersion][]int{
	MPEGVersion_1:   {44100, 48000, 32000, 0},
	MPEGVersion_2:   {22050, 24000, 16000, 0},
	MPEGVersion_2_5: {11025, 12000, 8000, 0},
}

func refBitrateKey(version MPEGVersion, layer MPEGLayer) string {
	if version == MPEGVersion_1 {
		switch layer {
		case MPEGLayer1:
			return "V1_L1"
		case MPEGLayer2:
			return "V1_L2"
		default:
			return "V1_L3"
		}
	}
	if layer == MPEGLayer1 {
		return "V2_L1"
	}
	return "V2_L2_3"
}

//headerBytes builds a 4-byte frame header from field codes.
func headerBytes(vb, lb, bi, si, cb, eb byte) []byte {
	return []byte{
		0xFF,
		0xE0 | vb<<3 | lb<<1 | 0x01, //not CRC protected
		bi<<4 | si<<2,
		cb<<6 | eb,
	}
}

func TestParseMPEGFrameHeaderAllCombinations(t *testing.T) {
	versions := map[byte]MPEGVersion{0: MPEGVersion_2_5, 2: MPEGVersion_2, 3: MPEGVersion_1}
	layers := map[byte]MPEGLayer{1: MPEGLayer3, 2: MPEGLayer2, 3: MPEGLayer1}

	for vb := byte(0); vb < 4; vb++ {
		for lb := byte(0); lb < 4; lb++ {
			for bi := byte(0); bi < 16; bi++ {
				for si := byte(0); si < 4; si++ {
					version, versionOK := versions[vb]
					layer, layerOK := layers[lb]
					reserved := !versionOK || !layerOK || bi == 0 || bi == 15 || si == 3

					//Layer II restricts some bitrates to certain channel
					//modes; pick a mode that is legal for the bitrate so the
					//table property is tested in isolation.
					cb := byte(0) //stereo
					if layerOK && versionOK && layer == MPEGLayer2 && !reserved {
						br := refBitrates[refBitrateKey(version, layer)][bi]
						for _, single := range mpegLayer2SingleOnly {
							if br == single {
								cb = 3 //mono
							}
						}
					}

					h, err := parseMPEGFrameHeader(headerBytes(vb, lb, bi, si, cb, 0))
					if reserved {
						assert.ErrorIs(t, err, ErrInvalidHeader,
							"vb=%d lb=%d bi=%d si=%d should be reserved", vb, lb, bi, si)
						continue
					}
					require.NoError(t, err, "vb=%d lb=%d bi=%d si=%d", vb, lb, bi, si)
					assert.Equal(t, version, h.Version)
					assert.Equal(t, layer, h.Layer)
					assert.Equal(t, refBitrates[refBitrateKey(version, layer)][bi], h.Bitrate)
					assert.Equal(t, refSamplingRates[version][si], h.SamplingRate)
				}
			}
		}
	}
}

func TestParseMPEGFrameHeaderSync(t *testing.T) {
	tests := [][]byte{
		{0x00, 0x00, 0x00, 0x00},
		{0xFF, 0x00, 0x00, 0x00}, //only 8 sync bits
		{0xFF, 0xC0, 0x00, 0x00}, //only 10 sync bits
		{0xFE, 0xE0, 0x00, 0x00},
	}
	for _, tt := range tests {
		_, err := parseMPEGFrameHeader(tt)
		assert.ErrorIs(t, err, ErrInvalidHeader, "parseMPEGFrameHeader(%v)", tt)
	}
}

func TestParseMPEGFrameHeaderReferenceScenario(t *testing.T) {
	//MPEG1, Layer III, 192 kbps, 44100 Hz, no padding
	h, err := parseMPEGFrameHeader([]byte{0xFF, 0xFB, 0xB0, 0x00})
	require.NoError(t, err)
	assert.Equal(t, MPEGVersion_1, h.Version)
	assert.Equal(t, MPEGLayer3, h.Layer)
	assert.Equal(t, 192, h.Bitrate)
	assert.Equal(t, 44100, h.SamplingRate)
	assert.False(t, h.Padded)
	assert.Equal(t, 626, h.FrameLength)
}

func TestParseMPEGFrameHeaderFields(t *testing.T) {
	//MPEG1 Layer III, CRC protected (protection bit 0), padded, private,
	//joint stereo with MS stereo on, copyright, original, 50/15 emphasis.
	b := []byte{0xFF, 0xFA, 0xB3, 0x0D}
	h, err := parseMPEGFrameHeader(b)
	require.NoError(t, err)
	assert.True(t, h.Protected)
	assert.True(t, h.Padded)
	assert.True(t, h.Private)
	assert.Equal(t, MPEGChannelStereo, h.ChannelMode)
	assert.True(t, h.Copyright)
	assert.True(t, h.Original)
	assert.Equal(t, MPEGEmphasis50_15, h.Emphasis)
	//Padding adds one byte under Layer III
	assert.Equal(t, 627, h.FrameLength)
}

func TestParseMPEGFrameHeaderModeExtension(t *testing.T) {
	//Joint stereo, mode extension bits 10: MS stereo on, intensity off
	h, err := parseMPEGFrameHeader([]byte{0xFF, 0xFB, 0xB0, 0x60})
	require.NoError(t, err)
	assert.Equal(t, MPEGChannelJointStereo, h.ChannelMode)
	assert.Equal(t, byte(2), h.ModeExtension.Raw)
	assert.True(t, h.ModeExtension.MSStereo)
	assert.False(t, h.ModeExtension.IntensityStereo)

	//Same bits under plain stereo stay inert
	h, err = parseMPEGFrameHeader([]byte{0xFF, 0xFB, 0xB0, 0x20})
	require.NoError(t, err)
	assert.Equal(t, MPEGChannelStereo, h.ChannelMode)
	assert.Equal(t, byte(2), h.ModeExtension.Raw)
	assert.False(t, h.ModeExtension.MSStereo)
	assert.False(t, h.ModeExtension.IntensityStereo)
}

func TestParseMPEGFrameHeaderReservedEmphasis(t *testing.T) {
	_, err := parseMPEGFrameHeader([]byte{0xFF, 0xFB, 0xB0, 0x02})
	assert.ErrorIs(t, err, ErrInvalidHeader)
}

func TestParseMPEGFrameHeaderLayer2Combinations(t *testing.T) {
	//MPEG1 Layer II at 32 kbps (index 1) is single channel only
	_, err := parseMPEGFrameHeader(headerBytes(3, 2, 1, 0, 0, 0))
	assert.ErrorIs(t, err, ErrInvalidHeader)
	h, err := parseMPEGFrameHeader(headerBytes(3, 2, 1, 0, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 32, h.Bitrate)

	//MPEG1 Layer II at 384 kbps (index 14) is anything but single channel
	_, err = parseMPEGFrameHeader(headerBytes(3, 2, 14, 0, 3, 0))
	assert.ErrorIs(t, err, ErrInvalidHeader)
	h, err = parseMPEGFrameHeader(headerBytes(3, 2, 14, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, 384, h.Bitrate)
}

func TestFrameLengthLayerI(t *testing.T) {
	//MPEG1 Layer I, 448 kbps (index 14), 44100 Hz, padded:
	//(12*448000/44100 + 1) * 4 = (121 + 1) * 4 = 488
	h, err := parseMPEGFrameHeader([]byte{0xFF, 0xFF, 0xE2, 0x00})
	require.NoError(t, err)
	assert.Equal(t, MPEGLayer1, h.Layer)
	assert.Equal(t, 448, h.Bitrate)
	assert.True(t, h.Padded)
	assert.Equal(t, 488, h.FrameLength)
}

func TestFrameLengthLayerIIIMPEG2(t *testing.T) {
	//MPEG2 Layer III uses the 72 multiplier: 72*64000/22050 = 208
	h, err := parseMPEGFrameHeader(headerBytes(2, 1, 8, 0, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, MPEGVersion_2, h.Version)
	assert.Equal(t, 64, h.Bitrate)
	assert.Equal(t, 22050, h.SamplingRate)
	assert.Equal(t, 208, h.FrameLength)
}

func TestReadMPEGFrameHeaderScansForSync(t *testing.T) {
	//A run of junk before the sync pattern must not prevent the read.
	data := append([]byte{0x00, 0x12, 0x34, 0xAB, 0xCD, 0x00, 0x00}, 0xFF, 0xFB, 0xB0, 0x00)
	h, err := readMPEGFrameHeader(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 192, h.Bitrate)
	assert.Equal(t, 44100, h.SamplingRate)
}
