package mpegi

import (
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
)

//MP3Metadata aggregates the three independent parse results for one file:
//the first audio frame header, the leading ID3v2 tag space, and the
//trailing ID3v1 tag space. The regions are disjoint byte ranges and each is
//parsed on its own; a missing or broken tag in one region never aborts the
//others, so every region carries its own error.
type MP3Metadata struct {
	FrameHeader    *MPEGFrameHeader
	FrameHeaderErr error
	ID3v2          *ID3v2Document
	ID3v2Err       error
	ID3v1          *ID3v1Tag
	ID3v1Err       error
}

//ReadFromMP3 reads all structural metadata from an open mp3 file.
func ReadFromMP3(file *os.File) (*MP3Metadata, error) {
	return ReadFrom(file)
}

//ReadFrom reads all structural metadata from the io.ReadSeeker. The
//returned error reports seek failures on the underlying reader only; parse
//failures land in the per-region error fields.
func ReadFrom(r io.ReadSeeker) (*MP3Metadata, error) {
	var m MP3Metadata
	//Extract the ID3v2 tag space, if any
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	m.ID3v2, m.ID3v2Err = ReadID3v2Document(r)
	//Seek to the end of the ID3v2 tag space, or the beginning of the file
	//if there is none, then scan for the first frame header.
	audioStart := int64(0)
	if m.ID3v2 != nil {
		audioStart = int64(id3v2HeaderLength + m.ID3v2.Header.Size)
	}
	if _, err := r.Seek(audioStart, io.SeekStart); err != nil {
		return nil, err
	}
	h, err := readMPEGFrameHeader(r)
	if err != nil {
		m.FrameHeaderErr = err
	} else {
		m.FrameHeader = &h
	}
	//Look for an ID3v1 tag at the end of the file
	m.ID3v1, m.ID3v1Err = ReadID3v1Tag(r)
	return &m, nil
}

//Format reports the tag format of the file, preferring ID3v2 over ID3v1.
func (m MP3Metadata) Format() Format {
	if m.ID3v2 != nil {
		return m.ID3v2.Header.Version
	} else if m.ID3v1 != nil {
		return ID3v1
	}
	return UnknownFormat
}

//FileType reports the audio file type derived from the layer index of the
//first frame header.
func (m MP3Metadata) FileType() FileType {
	if m.FrameHeader == nil {
		return UnknownFileType
	}
	switch m.FrameHeader.Layer {
	case MPEGLayer3:
		return MP3
	case MPEGLayer2:
		return MP2
	case MPEGLayer1:
		return MP1
	}
	return UnknownFileType
}

func (m MP3Metadata) Title() string {
	if m.ID3v2 != nil {
		return m.ID3v2.Text("TIT2")
	} else if m.ID3v1 != nil {
		return m.ID3v1.Title
	}
	return ""
}

func (m MP3Metadata) Artist() string {
	if m.ID3v2 != nil {
		return m.ID3v2.Text("TPE1")
	} else if m.ID3v1 != nil {
		return m.ID3v1.Artist
	}
	return ""
}

func (m MP3Metadata) Album() string {
	if m.ID3v2 != nil {
		return m.ID3v2.Text("TALB")
	} else if m.ID3v1 != nil {
		return m.ID3v1.Album
	}
	return ""
}

func (m MP3Metadata) Year() int {
	var y string
	if m.ID3v2 != nil {
		//TYER under v2.3, TDRC under v2.4
		y = m.ID3v2.Text("TYER")
		if y == "" {
			y = m.ID3v2.Text("TDRC")
		}
	} else if m.ID3v1 != nil {
		y = m.ID3v1.Year
	}
	n, err := strconv.Atoi(y)
	if err != nil {
		return 0
	}
	return n
}

func (m MP3Metadata) Genre() string {
	if m.ID3v2 != nil {
		return id3v2genre(m.ID3v2.Text("TCON"))
	} else if m.ID3v1 != nil {
		return m.ID3v1.GenreName()
	}
	return ""
}

func (m MP3Metadata) Comment() string {
	if m.ID3v2 != nil {
		if f := m.ID3v2.Lookup("COMM"); f != nil {
			if c, ok := f.Payload.(DescribedText); ok {
				return c.Text
			}
		}
		return ""
	} else if m.ID3v1 != nil {
		return m.ID3v1.CommentString()
	}
	return ""
}

//Picture returns the first embedded picture, or nil. Saving the image
//bytes anywhere is up to the caller.
func (m MP3Metadata) Picture() *Picture {
	if m.ID3v2 == nil {
		return nil
	}
	f := m.ID3v2.Lookup("APIC")
	if f == nil {
		return nil
	}
	if p, ok := f.Payload.(Picture); ok {
		return &p
	}
	return nil
}

//Track returns the track number and total tracks from the TRCK frame, or
//zero values. The ID3v1.1 track convention is left uninterpreted, so there
//is no v1 fallback.
func (m MP3Metadata) Track() (int, int) {
	if m.ID3v2 == nil {
		return 0, 0
	}
	return parseXofN(m.ID3v2.Text("TRCK"))
}

func parseXofN(s string) (x, n int) {
	xn := strings.Split(s, "/")
	if len(xn) != 2 {
		x, _ = strconv.Atoi(s)
		return x, 0
	}
	x, _ = strconv.Atoi(strings.TrimSpace(xn[0]))
	n, _ = strconv.Atoi(strings.TrimSpace(xn[1]))
	return x, n
}

var id3v2genreRe = regexp.MustCompile(`(.*[^(]|.* |^)\(([0-9]+)\) *(.*)$`)

//id3v2genre parses a TCON value and expands the parenthesized numeric
//genre references left over from ID3v1.
func id3v2genre(genre string) string {
	c := true
	for c {
		orig := genre
		if match := id3v2genreRe.FindStringSubmatch(genre); len(match) > 0 {
			if genreID, err := strconv.Atoi(match[2]); err == nil {
				if genreID < len(id3v1Genres) {
					genre = id3v1Genres[genreID]
					if match[1] != "" {
						genre = strings.TrimSpace(match[1]) + " " + genre
					}
					if match[3] != "" {
						genre = genre + " " + match[3]
					}
				}
			}
		}
		c = (orig != genre)
	}
	return strings.Replace(genre, "((", "(", -1)
}
