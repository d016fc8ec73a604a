package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin"
	"github.com/sirupsen/logrus"

	"github.com/yaeso/mpegi"
)

var (
	app = kingpin.New("mpegi", "Inspect the structural metadata of MP3 files.")

	debug   = app.Flag("debug", "Enable debug output.").Bool()
	saveArt = app.Flag("save-art", "Save embedded pictures next to the audio file.").Bool()
	files   = app.Arg("files", "MP3 files to inspect.").Required().ExistingFiles()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	for _, path := range *files {
		if err := inspect(path); err != nil {
			logrus.WithField("file", path).WithError(err).Error("inspect failed")
		}
	}
}

func inspect(path string) error {
	info, err := mpegi.ReadFileInfo(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ok, err := mpegi.CheckSignature(f)
	if err != nil {
		return err
	}
	if !ok {
		logrus.WithField("file", path).Warn("no mp3 signature at start of file")
	}

	m, err := mpegi.ReadFrom(f)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s, %.2f MB)\n", info.Name, info.MIMEType, info.SizeMB)
	printFrameHeader(m)
	printID3v2(m)
	printID3v1(m)

	if *saveArt {
		if err := savePicture(path, m.Picture()); err != nil {
			return err
		}
	}
	return nil
}

func printFrameHeader(m *mpegi.MP3Metadata) {
	if m.FrameHeaderErr != nil {
		logrus.WithError(m.FrameHeaderErr).Debug("no audio frame header")
		fmt.Println("  no audio frame header found")
		return
	}
	h := m.FrameHeader
	fmt.Printf("  %s %s, %d kbps, %d Hz, %s\n", h.Version, h.Layer, h.Bitrate, h.SamplingRate, h.ChannelMode)
	fmt.Printf("  frame length %d bytes, emphasis %s", h.FrameLength, h.Emphasis)
	if h.Protected {
		fmt.Print(", CRC protected")
	}
	fmt.Println()
}

func printID3v2(m *mpegi.MP3Metadata) {
	if m.ID3v2Err != nil {
		logrus.WithError(m.ID3v2Err).Debug("ID3v2 parse")
		fmt.Printf("  ID3v2: %v\n", m.ID3v2Err)
		return
	}
	d := m.ID3v2
	fmt.Printf("  %s, %d frames\n", d.Header.Version, len(d.Frames))
	for _, fr := range d.Frames {
		switch p := fr.Payload.(type) {
		case mpegi.PlainText:
			fmt.Printf("    %s  %s\n", fr.ID, p.Text)
		case mpegi.DescribedText:
			fmt.Printf("    %s  [%s] %s: %s\n", fr.ID, p.Language, p.Description, p.Text)
		case mpegi.KeyedText:
			fmt.Printf("    %s  %s=%s\n", fr.ID, p.Description, p.Value)
		case mpegi.Picture:
			fmt.Printf("    %s  %s (%s), %d bytes\n", fr.ID, p.MIMEType, p.TypeName, len(p.Data))
		default:
			fmt.Printf("    %s  (unsupported, %d bytes)\n", fr.ID, fr.Size)
		}
	}
}

func printID3v1(m *mpegi.MP3Metadata) {
	if m.ID3v1Err != nil {
		logrus.WithError(m.ID3v1Err).Debug("ID3v1 parse")
		fmt.Printf("  ID3v1: %v\n", m.ID3v1Err)
		return
	}
	t := m.ID3v1
	fmt.Printf("  ID3v1: %s / %s / %s (%s) %s\n", t.Title, t.Artist, t.Album, t.Year, t.GenreName())
}

//savePicture writes the embedded image bytes next to the audio file. The
//parser never touches disk itself; persistence belongs out here.
func savePicture(path string, p *mpegi.Picture) error {
	if p == nil || len(p.Data) == 0 {
		return nil
	}
	ext := ".jpg"
	if strings.Contains(p.MIMEType, "png") {
		ext = ".png"
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ext
	if err := os.WriteFile(out, p.Data, 0o644); err != nil {
		return err
	}
	logrus.WithField("file", out).Info("saved picture")
	return nil
}
