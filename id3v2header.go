package mpegi

import "fmt"

// id3v2HeaderLength is the fixed length of the tag header (and of the
// optional footer).
const id3v2HeaderLength = 10

// ID3v2Header represents an ID3v2 tag header, the first 10 bytes of the tag
// space at the start of the file.
type ID3v2Header struct {
	Version           Format
	VersionMajor      byte
	VersionMinor      byte
	Unsynchronization bool
	ExtendedHeader    bool
	Experimental      bool
	Footer            bool
	//UndefinedFlags records that one of flag bits 3-0 was set. The
	//specification requires them to be cleared, but a violation is an
	//anomaly worth surfacing, not a parse failure.
	UndefinedFlags bool
	//Size is the declared size of the tag body, excluding this header and
	//any trailing footer. It is always stored synchsafe.
	Size int
}

// parseID3v2Header decodes the 10 header bytes. If the first three bytes are
// not "ID3" there is no tag and the rest of the block is not inspected.
func parseID3v2Header(b []byte) (*ID3v2Header, error) {
	if len(b) < id3v2HeaderLength {
		return nil, fmt.Errorf("%w: ID3v2 header is %d bytes, expected %d", ErrTagAbsent, len(b), id3v2HeaderLength)
	}
	if string(b[0:3]) != "ID3" {
		return nil, ErrTagAbsent
	}
	h := &ID3v2Header{
		VersionMajor: b[3],
		VersionMinor: b[4],
	}
	switch h.VersionMajor {
	case 2:
		h.Version = ID3v2_2
	case 3:
		h.Version = ID3v2_3
	case 4:
		h.Version = ID3v2_4
	default:
		//Only up to 2.4.0 is backwards compatible; higher versions must be
		//ignored by software that does not know them.
		return nil, fmt.Errorf("%w: ID3v2.%d.%d", ErrUnsupportedVersion, h.VersionMajor, h.VersionMinor)
	}
	h.Unsynchronization = getBit(b[5], 7)
	h.ExtendedHeader = getBit(b[5], 6)
	h.Experimental = getBit(b[5], 5)
	h.Footer = getBit(b[5], 4)
	h.UndefinedFlags = b[5]&0x0F != 0
	size, err := decodeSynchsafe(b[6:10])
	if err != nil {
		return nil, err
	}
	h.Size = int(size)
	return h, nil
}
