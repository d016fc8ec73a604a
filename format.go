package mpegi

// Format is an enumeration of tag formats supported by this package.
type Format string

// Supported tag formats.
const (
	UnknownFormat Format = ""        // Unknown Format.
	ID3v1         Format = "ID3v1"   // ID3v1 tag format.
	ID3v2_2       Format = "ID3v2.2" // ID3v2.2 tag format.
	ID3v2_3       Format = "ID3v2.3" // ID3v2.3 tag format (most common).
	ID3v2_4       Format = "ID3v2.4" // ID3v2.4 tag format.
)

// FileType is an enumeration of the mpeg audio file types supported by this
// package. The layer index of the first audio frame determines the type.
type FileType string

// Supported file types.
const (
	UnknownFileType FileType = ""    // Unknown FileType.
	MP1             FileType = "MP1" // MP1 file (Layer I)
	MP2             FileType = "MP2" // MP2 file (Layer II)
	MP3             FileType = "MP3" // MP3 file (Layer III)
)
