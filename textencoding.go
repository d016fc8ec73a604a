package mpegi

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

//ID3v2 text frames start with an encoding selector byte that applies to
//every text string in the frame.
const (
	textEncodingISO88591 byte = 0x00
	textEncodingUTF16    byte = 0x01 //UTF-16 with BOM
	textEncodingUTF16BE  byte = 0x02 //UTF-16 big-endian, no BOM
	textEncodingUTF8     byte = 0x03
)

//textDecoder returns a decoder for the given selector byte. Selectors
//outside the defined range are treated as UTF-8.
func textDecoder(enc byte) *encoding.Decoder {
	switch enc {
	case textEncodingISO88591:
		return charmap.ISO8859_1.NewDecoder()
	case textEncodingUTF16:
		//Honor the BOM when present, assume little-endian otherwise.
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	case textEncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	default:
		return unicode.UTF8.NewDecoder()
	}
}

//decodeText decodes b according to the encoding selector and trims null and
//whitespace padding. Undecodable input falls back to the raw bytes rather
//than failing; text content problems never abort a structural parse.
func decodeText(enc byte, b []byte) string {
	if len(b) == 0 {
		return ""
	}
	decoded, err := textDecoder(enc).Bytes(b)
	if err != nil {
		return trimString(string(b))
	}
	return trimString(string(decoded))
}

//terminatorLength is the width of the null terminator for the encoding:
//two bytes for the UTF-16 family, one byte otherwise.
func terminatorLength(enc byte) int {
	if enc == textEncodingUTF16 || enc == textEncodingUTF16BE {
		return 2
	}
	return 1
}

//splitNullTerminated splits b at the first null terminator of the given
//encoding, returning the bytes before it and the bytes after it. UTF-16
//terminators are only recognized on even offsets so that code units
//containing a zero byte are not cut in half. If no terminator exists the
//whole input is the head.
func splitNullTerminated(enc byte, b []byte) (head, rest []byte) {
	if terminatorLength(enc) == 2 {
		for i := 0; i+1 < len(b); i += 2 {
			if b[i] == 0 && b[i+1] == 0 {
				return b[:i], b[i+2:]
			}
		}
		return b, nil
	}
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return b, nil
	}
	return b[:i], b[i+1:]
}
