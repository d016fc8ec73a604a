package mpegi

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

//rfcMPEGAudio is the RFC that registered the audio/mpeg media type.
const rfcMPEGAudio = 3003

//FileInfo is basic information about an mp3 file on disk, gathered outside
//of the parsing layer proper.
type FileInfo struct {
	Name      string
	Extension string
	MIMEType  string
	Size      int64
	SizeMB    float64
	RFC       int
}

//ReadFileInfo stats the file and sniffs its MIME type from content.
func ReadFileInfo(path string) (*FileInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}
	return &FileInfo{
		Name:      filepath.Base(path),
		Extension: mtype.Extension(),
		MIMEType:  mtype.String(),
		Size:      stat.Size(),
		SizeMB:    math.Round(float64(stat.Size())/(1<<20)*100) / 100,
		RFC:       rfcMPEGAudio,
	}, nil
}

//mp3Signatures are the byte sequences an mp3 file may begin with: an ID3v2
//tag, or a frame sync for the common layer III header variants.
var mp3Signatures = [][]byte{
	{0x49, 0x44, 0x33}, //ID3
	{0xFF, 0xFB},
	{0xFF, 0xF3},
	{0xFF, 0xF2},
}

//CheckSignature reports whether the reader begins with a known mp3
//signature.
func CheckSignature(r io.ReadSeeker) (bool, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	b, err := readBytes(r, 3)
	if err != nil {
		return false, err
	}
	for _, sig := range mp3Signatures {
		match := true
		for i, x := range sig {
			if b[i] != x {
				match = false
				break
			}
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
