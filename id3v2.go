package mpegi

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

//id3v2FrameHeaderLength is the length of a frame header: 4-byte id, 4-byte
//size, 2 flag bytes.
const id3v2FrameHeaderLength = 10

//ID3v2Document holds everything parsed out of an ID3v2 tag space: the tag
//header and the frames in file order. Duplicate frame identifiers are
//preserved, not merged.
type ID3v2Document struct {
	Header ID3v2Header
	Frames []ID3v2Frame
}

//ReadID3v2Document reads an ID3v2 tag from the io.ReadSeeker. The method
//assumes the reader is positioned at the start of the tag space, which is
//the start of the file.
func ReadID3v2Document(r io.ReadSeeker) (*ID3v2Document, error) {
	b, err := readBytes(r, id3v2HeaderLength)
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			//File is not long enough to hold a tag
			return nil, fmt.Errorf("%w: file shorter than an ID3v2 header", ErrTagAbsent)
		}
		return nil, err
	}
	h, err := parseID3v2Header(b)
	if err != nil {
		return nil, err
	}
	body, err := readBytes(r, uint(h.Size))
	if err != nil {
		return nil, fmt.Errorf("expected %d bytes of ID3v2 tag body: %w", h.Size, err)
	}
	frames, err := parseID3v2Frames(body, h)
	if err != nil {
		return nil, err
	}
	return &ID3v2Document{Header: *h, Frames: frames}, nil
}

//removeUnsynchronization reverses the unsynchronization scheme by collapsing
//every FF 00 byte pair back to FF.
func removeUnsynchronization(body []byte) []byte {
	return bytes.ReplaceAll(body, []byte{0xFF, 0x00}, []byte{0xFF})
}

//parseID3v2Frames iterates the declared tag body and decodes each frame.
//Iteration stops when fewer bytes remain than a frame header needs, or when
//the next identifier is four zero bytes, which marks the start of padding.
//A frame whose declared size would read past the end of the body fails the
//entire parse; clamping it would silently corrupt the byte accounting every
//later frame depends on.
func parseID3v2Frames(body []byte, h *ID3v2Header) ([]ID3v2Frame, error) {
	if h.Version == ID3v2_2 {
		//v2.2 frames use 3-character identifiers and a different header
		//layout, which this parser does not handle.
		return nil, fmt.Errorf("%w: ID3v2.2 frames", ErrUnsupportedVersion)
	}
	if h.Unsynchronization {
		body = removeUnsynchronization(body)
	}
	if h.ExtendedHeader {
		skip, err := extendedHeaderLength(body, h)
		if err != nil {
			return nil, err
		}
		body = body[skip:]
	}
	var frames []ID3v2Frame
	for len(body) >= id3v2FrameHeaderLength {
		if areZero(body[0:4]) {
			//Padding runs to the end of the tag body.
			break
		}
		id := string(body[0:4])
		size, err := frameSize(body[4:8], h)
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", id, err)
		}
		if size > len(body)-id3v2FrameHeaderLength {
			return nil, fmt.Errorf("frame %q declares %d bytes with %d remaining in tag: %w",
				id, size, len(body)-id3v2FrameHeaderLength, ErrTruncatedTag)
		}
		frames = append(frames, ID3v2Frame{
			ID:      id,
			Size:    size,
			Flags:   binary.BigEndian.Uint16(body[8:10]),
			Payload: decodeFramePayload(id, body[id3v2FrameHeaderLength:id3v2FrameHeaderLength+size]),
		})
		body = body[id3v2FrameHeaderLength+size:]
	}
	return frames, nil
}

//frameSize decodes the 4 size bytes of a frame header. From v2.4 on the
//size is synchsafe; v2.3 and below store a plain big-endian integer. The
//two rules must stay separate: conflating them silently produces wrong
//offsets for one version family.
func frameSize(b []byte, h *ID3v2Header) (int, error) {
	if h.VersionMajor >= 4 {
		size, err := decodeSynchsafe(b)
		return int(size), err
	}
	return getInt(b[:4]), nil
}

//extendedHeaderLength returns the number of tag body bytes occupied by the
//extended header. Its length field is synchsafe; under v2.4 the length
//includes the field itself, under v2.3 it does not.
func extendedHeaderLength(body []byte, h *ID3v2Header) (int, error) {
	if len(body) < 4 {
		return 0, fmt.Errorf("tag body shorter than extended header length field: %w", ErrTruncatedTag)
	}
	n, err := decodeSynchsafe(body[0:4])
	if err != nil {
		return 0, fmt.Errorf("extended header length: %w", err)
	}
	skip := int(n)
	if h.VersionMajor < 4 {
		skip += 4
	} else if skip < 4 {
		return 0, fmt.Errorf("extended header length %d shorter than its own field: %w", skip, ErrTruncatedTag)
	}
	if skip > len(body) {
		return 0, fmt.Errorf("extended header length %d exceeds tag body: %w", skip, ErrTruncatedTag)
	}
	return skip, nil
}

//Lookup returns the first frame with the given identifier, or nil. Every
//frame stays available in Frames when an identifier repeats.
func (d *ID3v2Document) Lookup(id string) *ID3v2Frame {
	for i := range d.Frames {
		if d.Frames[i].ID == id {
			return &d.Frames[i]
		}
	}
	return nil
}

//Text returns the text of the first PlainText frame with the given
//identifier, or the empty string.
func (d *ID3v2Document) Text(id string) string {
	f := d.Lookup(id)
	if f == nil {
		return ""
	}
	if t, ok := f.Payload.(PlainText); ok {
		return t.Text
	}
	return ""
}
