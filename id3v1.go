package mpegi

import (
	"fmt"
	"io"
)

//ID3v1Tag holds metadata from an ID3v1 (or ID3v1.1) tag, which is sometimes
//found in the final 128 bytes of an mp3 file. It may be present even when an
//ID3v2 tag is included separately at the front of the file.
//http://id3.org/ID3v1
//
//The tag is an immutable snapshot of the block it was parsed from. Text
//fields have their trailing null and space padding removed. Comment is the
//exception: all 30 comment bytes are kept verbatim, because the ID3v1.1
//convention of repurposing the next-to-last comment byte as a track number
//is deliberately left uninterpreted.
type ID3v1Tag struct {
	Title   string
	Artist  string
	Album   string
	Year    string
	Comment [30]byte
	Genre   byte
}

//parseID3v1Tag decodes a 128-byte ID3v1 block. If the first three bytes are
//not "TAG" the block is not a tag and the rest of it is not inspected.
func parseID3v1Tag(b []byte) (*ID3v1Tag, error) {
	if len(b) < 128 {
		return nil, fmt.Errorf("%w: ID3v1 block is %d bytes, expected 128", ErrTagAbsent, len(b))
	}
	if string(b[0:3]) != "TAG" {
		return nil, ErrTagAbsent
	}
	t := &ID3v1Tag{
		Title:  getString(b[3:33]),
		Artist: getString(b[33:63]),
		Album:  getString(b[63:93]),
		Year:   getString(b[93:97]),
		Genre:  b[127],
	}
	copy(t.Comment[:], b[97:127])
	return t, nil
}

//ReadID3v1Tag reads an ID3v1 tag from the io.ReadSeeker. An ID3v1 tag is
//always the last 128 bytes of the file, if present at all.
func ReadID3v1Tag(r io.ReadSeeker) (*ID3v1Tag, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, err
	}
	if size < 128 {
		return nil, fmt.Errorf("%w: file is %d bytes, shorter than an ID3v1 block", ErrTagAbsent, size)
	}
	if _, err := r.Seek(-128, io.SeekEnd); err != nil {
		return nil, err
	}
	b, err := readBytes(r, 128)
	if err != nil {
		return nil, err
	}
	return parseID3v1Tag(b)
}

//GenreName returns the name for the tag's genre code, or "Unknown" for
//codes with no defined mapping.
func (t ID3v1Tag) GenreName() string {
	return genreName(t.Genre)
}

//CommentString returns the comment bytes as a padding-trimmed string. The
//underlying bytes are unaffected.
func (t ID3v1Tag) CommentString() string {
	return getString(t.Comment[:])
}
