package mpegi

import (
	"fmt"
	"io"
)

//MPEGFrameHeader represents the information contained in a 4-byte mpeg audio
//frame header. Much of this information is consistent for all frame headers
//in a file, but some can vary from frame to frame. For instance, the version
//and layer will be the same in all frames, but the bitrate could vary in a
//variable bitrate (VBR) file.
//
//Reserved version, layer, bitrate, sample rate, and emphasis codes are never
//materialized here. A header containing one fails to decode instead.
type MPEGFrameHeader struct {
	Version       MPEGVersion
	Layer         MPEGLayer
	Protected     bool //True for 0 bit! Indicates that a CRC follows the header.
	Bitrate       int  //Frame bitrate in kilobits per second (1000 bits/sec)
	SamplingRate  int  //File sampling rate frequency in hertz
	Padded        bool //True for 1 bit. Indicates that this frame is padded with one slot.
	Private       bool //True for 1 bit. So private that no one knows what this is for.
	ChannelMode   MPEGChannelMode
	ModeExtension MPEGModeExtension
	Copyright     bool //True for 1 bit. Indicates that the audio is copyrighted.
	Original      bool //True for 1 bit. Indicates that this is the original media.
	Emphasis      MPEGEmphasis
	FrameLength   int //Total frame length in bytes, header included
}

//MPEGVersion is the audio version ID for the file. For most common MP3 files
//this will almost always be MPEG Version 1.
type MPEGVersion string

//All valid version values
const (
	MPEGVersion_2_5 MPEGVersion = "MPEG Version 2.5"
	MPEGVersion_2   MPEGVersion = "MPEG Version 2"
	MPEGVersion_1   MPEGVersion = "MPEG Version 1"
)

//maps header bits to version value; the reserved code 1 is absent on purpose
var mpegVersionMap = map[byte]MPEGVersion{
	0: MPEGVersion_2_5,
	2: MPEGVersion_2,
	3: MPEGVersion_1,
}

//MPEGLayer is the layer index for the file. For an MP3 this will be Layer III,
//an MP2 would be Layer II, and an MP1 would be Layer I.
type MPEGLayer string

//All valid layer values
const (
	MPEGLayer3 MPEGLayer = "Layer III"
	MPEGLayer2 MPEGLayer = "Layer II"
	MPEGLayer1 MPEGLayer = "Layer I"
)

//maps header bits to layer value; the reserved code 0 is absent on purpose
var mpegLayerMap = map[byte]MPEGLayer{
	1: MPEGLayer3,
	2: MPEGLayer2,
	3: MPEGLayer1,
}

//A bitrate table entry of -1 marks an index that has no defined bitrate for
//that version and layer. Index 0 ("free") and index 15 are always -1 here;
//both fail the decode rather than produce a value.
var badBitrate = -1

//maps version, layer, and index bits to the bitrate in kbps
var mpegBitrateMap = map[MPEGVersion]map[MPEGLayer][]int{
	MPEGVersion_1: {
		MPEGLayer1: {-1, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448, -1},
		MPEGLayer2: {-1, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384, -1},
		MPEGLayer3: {-1, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, -1},
	},
	MPEGVersion_2: {
		MPEGLayer1: {-1, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1},
		MPEGLayer2: {-1, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
		MPEGLayer3: {-1, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
	},
	MPEGVersion_2_5: {
		MPEGLayer1: {-1, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256, -1},
		MPEGLayer2: {-1, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
		MPEGLayer3: {-1, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160, -1},
	},
}

//maps version and index bits to the sampling rate in Hz; index 3 is reserved
var mpegSamplingRateMap = map[MPEGVersion][]int{
	MPEGVersion_1:   {44100, 48000, 32000, -1},
	MPEGVersion_2:   {22050, 24000, 16000, -1},
	MPEGVersion_2_5: {11025, 12000, 8000, -1},
}

//MPEGChannelMode is simply the channel mode for the audio
type MPEGChannelMode string

//All possible channel mode values
const (
	MPEGChannelStereo      MPEGChannelMode = "Stereo"
	MPEGChannelJointStereo MPEGChannelMode = "Joint stereo (Stereo)"
	MPEGChannelDual        MPEGChannelMode = "Dual channel (2 mono channels)"
	MPEGChannelSingle      MPEGChannelMode = "Single channel (Mono)"
)

//maps the header bits to the corresponding channel mode
var mpegChannelModeMap = map[byte]MPEGChannelMode{
	0: MPEGChannelStereo,
	1: MPEGChannelJointStereo,
	2: MPEGChannelDual,
	3: MPEGChannelSingle,
}

//MPEGModeExtension carries the two mode extension bits. The IntensityStereo
//and MSStereo flags are only decoded when the channel mode is joint stereo;
//for any other mode the bits are inert and only Raw is set.
type MPEGModeExtension struct {
	Raw             byte
	IntensityStereo bool
	MSStereo        bool
}

//MPEGEmphasis gives the decoder instructions on how to de-emphasize sound in
//the file. It is rarely used.
type MPEGEmphasis string

//All valid emphasis values
const (
	MPEGEmphasisNone  MPEGEmphasis = "none"
	MPEGEmphasis50_15 MPEGEmphasis = "50/15 ms"
	MPEGEmphasisCCIT  MPEGEmphasis = "CCIT J.17"
)

//maps the header bits to the corresponding emphasis; the reserved code 2 is
//absent on purpose
var mpegEmphasisMap = map[byte]MPEGEmphasis{
	0: MPEGEmphasisNone,
	1: MPEGEmphasis50_15,
	3: MPEGEmphasisCCIT,
}

//For Layer II some bitrate and channel mode combinations are not allowed by
//the standard. These bitrates are legal in single channel mode only.
var mpegLayer2SingleOnly = []int{32, 48, 56, 80}

//These Layer II bitrates are legal in every mode except single channel.
var mpegLayer2NotSingle = []int{224, 256, 320, 384}

//parseMPEGFrameHeader decodes exactly 4 bytes read at a candidate frame
//boundary. The first 11 bits must all be set (the frame sync); after that
//every field is decoded from its fixed position. Any reserved code aborts
//the decode with ErrInvalidHeader and no partial result.
func parseMPEGFrameHeader(b []byte) (MPEGFrameHeader, error) {
	var h MPEGFrameHeader
	if len(b) < 4 {
		return h, fmt.Errorf("%w: expected 4 bytes, got %d", ErrInvalidHeader, len(b))
	}
	if b[0] != 0xFF || b[1]&0xE0 != 0xE0 {
		return h, fmt.Errorf("%w: frame sync not found", ErrInvalidHeader)
	}
	version, ok := mpegVersionMap[(b[1]>>3)&0x03]
	if !ok {
		return h, fmt.Errorf("%w: reserved version", ErrInvalidHeader)
	}
	h.Version = version
	layer, ok := mpegLayerMap[(b[1]>>1)&0x03]
	if !ok {
		return h, fmt.Errorf("%w: reserved layer", ErrInvalidHeader)
	}
	h.Layer = layer
	h.Protected = !getBit(b[1], 0) //The 1 bit means NOT protected
	h.Bitrate = mpegBitrateMap[version][layer][(b[2]>>4)&0x0F]
	if h.Bitrate == badBitrate {
		return h, fmt.Errorf("%w: invalid bitrate index %d", ErrInvalidHeader, (b[2]>>4)&0x0F)
	}
	h.SamplingRate = mpegSamplingRateMap[version][(b[2]>>2)&0x03]
	if h.SamplingRate == -1 {
		return h, fmt.Errorf("%w: reserved sampling rate index", ErrInvalidHeader)
	}
	h.Padded = getBit(b[2], 1)
	h.Private = getBit(b[2], 0)
	h.ChannelMode = mpegChannelModeMap[(b[3]>>6)&0x03]
	h.ModeExtension.Raw = (b[3] >> 4) & 0x03
	if h.ChannelMode == MPEGChannelJointStereo {
		h.ModeExtension.IntensityStereo = getBit(h.ModeExtension.Raw, 0)
		h.ModeExtension.MSStereo = getBit(h.ModeExtension.Raw, 1)
	}
	h.Copyright = getBit(b[3], 3)
	h.Original = getBit(b[3], 2)
	emphasis, ok := mpegEmphasisMap[b[3]&0x03]
	if !ok {
		return h, fmt.Errorf("%w: reserved emphasis", ErrInvalidHeader)
	}
	h.Emphasis = emphasis
	if err := verifyLayer2Bitrate(h); err != nil {
		return h, err
	}
	h.FrameLength = frameLength(h)
	return h, nil
}

//verifyLayer2Bitrate rejects the Layer II bitrate and channel mode
//combinations that the standard does not allow.
func verifyLayer2Bitrate(h MPEGFrameHeader) error {
	if h.Layer != MPEGLayer2 {
		return nil
	}
	single := h.ChannelMode == MPEGChannelSingle
	for _, br := range mpegLayer2SingleOnly {
		if h.Bitrate == br && !single {
			return fmt.Errorf("%w: layer II bitrate %d requires single channel mode", ErrInvalidHeader, br)
		}
	}
	for _, br := range mpegLayer2NotSingle {
		if h.Bitrate == br && single {
			return fmt.Errorf("%w: layer II bitrate %d not allowed in single channel mode", ErrInvalidHeader, br)
		}
	}
	return nil
}

//frameLength computes the total frame size in bytes from bitrate, sampling
//rate, and padding. Layer I frames are made of 4-byte slots; Layers II and
//III use 1-byte slots, with half the samples per frame for Layer III under
//MPEG2 and MPEG2.5.
func frameLength(h MPEGFrameHeader) int {
	bps := h.Bitrate * 1000
	padding := 0
	if h.Padded {
		padding = 1
	}
	switch h.Layer {
	case MPEGLayer1:
		return (12*bps/h.SamplingRate + padding) * 4
	case MPEGLayer3:
		if h.Version != MPEGVersion_1 {
			return 72*bps/h.SamplingRate + padding
		}
		fallthrough
	default:
		return 144*bps/h.SamplingRate + padding
	}
}

//readMPEGFrameHeader searches for the frame sync match (11111111 111xxxxx)
//then decodes the first frame header encountered
func readMPEGFrameHeader(r io.Reader) (MPEGFrameHeader, error) {
	var (
		numBytesToRead uint = 4
		buff           []byte
	)
	for {
		b, err := readBytes(r, numBytesToRead)
		if err != nil {
			return MPEGFrameHeader{}, err
		}
		buff = append(buff, b...)
		if buff[0] == 0xFF && (buff[1]&0xE0 == 0xE0) {
			break
		} else if buff[1] == 0xFF {
			numBytesToRead = 1
			buff = buff[1:]
		} else if buff[2] == 0xFF {
			numBytesToRead = 2
			buff = buff[2:]
		} else if buff[3] == 0xFF {
			numBytesToRead = 3
			buff = buff[3:]
		} else {
			numBytesToRead = 4
			buff = []byte{}
		}
	}
	return parseMPEGFrameHeader(buff)
}
