package mpegi

import "errors"

//Sentinel errors for the parsing layer. Callers are expected to test for
//these with errors.Is since most parse failures wrap one of them with
//positional context.
var (
	//ErrTagAbsent is returned when the identifier bytes at a tag boundary
	//("TAG" for ID3v1, "ID3" for ID3v2) do not match. The absence of one tag
	//space says nothing about the other.
	ErrTagAbsent = errors.New("tag absent")

	//ErrInvalidHeader is returned when an audio frame header fails the sync
	//check or decodes to a reserved version, layer, bitrate, sample rate, or
	//emphasis combination.
	ErrInvalidHeader = errors.New("invalid frame header")

	//ErrInvalidEncoding is returned when a byte in a synchsafe integer has
	//its high bit set, or when a value cannot be represented in 28 bits.
	ErrInvalidEncoding = errors.New("invalid synchsafe encoding")

	//ErrTruncatedTag is returned when an ID3v2 frame declares a size that
	//reads past the remaining declared tag range. The whole tag parse fails;
	//sizes are never clamped.
	ErrTruncatedTag = errors.New("truncated tag")

	//ErrUnsupportedVersion is returned for ID3v2 tags with a major version
	//above 4, which are not backwards compatible, and for v2.2 tag bodies,
	//whose frame layout this package does not parse.
	ErrUnsupportedVersion = errors.New("unsupported tag version")
)
