// Package mpegi extracts structural metadata from MP3 containers: the
// 4-byte MPEG audio frame header and the two independent tag spaces, the
// fixed 128-byte ID3v1 trailer and the variable-length frame-based ID3v2
// block at the front of the file.
//
// Parse everything at once from an io.ReadSeeker (i.e. an *os.File):
//
//	m, err := mpegi.ReadFrom(f)
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Print(m.Format()) // The detected tag format.
//	log.Print(m.Title())  // The title of the track.
//
// The three regions are parsed independently and each reports its own
// error, so a file with a damaged ID3v2 tag still yields its frame header
// and ID3v1 tag. All parsing is synchronous and purely computational;
// independent parses are safe to run concurrently.
package mpegi
