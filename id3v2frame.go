package mpegi

//ID3v2Frame is a single frame from the tag body: a 4-character identifier,
//the size its header declared, the two flag bytes, and a decoded payload.
//Frames appear in the document in file order; duplicate identifiers are
//legal and preserved.
type ID3v2Frame struct {
	ID      string
	Size    int
	Flags   uint16
	Payload FramePayload
}

//FramePayload is the closed set of payload shapes a frame decodes to. The
//set of known frame kinds is fixed, so payloads are a tagged variant with
//Unsupported as the fallback rather than an open type hierarchy.
type FramePayload interface {
	framePayload()
}

//PlainText is the payload of the T-series information frames (TIT2, TPE1,
//TALB, ...): an encoding selector byte followed by encoded text.
type PlainText struct {
	Text string
}

//DescribedText is the payload of COMM and USLT frames: a 3-character
//language code, a short null-terminated description, and the remaining
//bytes as the long text.
type DescribedText struct {
	Language    string
	Description string
	Text        string
}

//KeyedText is the payload of the user-defined TXXX frame: a null-terminated
//description acting as the key, then the value.
type KeyedText struct {
	Description string
	Value       string
}

//Picture is the payload of an APIC frame. Data holds the raw image bytes;
//writing them anywhere is the caller's concern. PictureType outside the
//enumerated 0-20 range is preserved as the raw byte with an empty type name.
type Picture struct {
	MIMEType    string
	PictureType byte
	TypeName    string
	Description string
	Data        []byte
}

//Unsupported marks a frame whose identifier has no payload decoder. The
//frame's declared size was still consumed so iteration stays in sync.
type Unsupported struct{}

func (PlainText) framePayload()     {}
func (DescribedText) framePayload() {}
func (KeyedText) framePayload()     {}
func (Picture) framePayload()       {}
func (Unsupported) framePayload()   {}

//pictureTypes names the APIC picture type bytes defined by the
//specification.
var pictureTypes = [...]string{
	"Other",
	"32x32 pixels 'file icon' (PNG only)",
	"Other file icon",
	"Cover (front)",
	"Cover (back)",
	"Leaflet page",
	"Media (e.g. label side of CD)",
	"Lead artist/lead performer/soloist",
	"Artist/performer",
	"Conductor",
	"Band/Orchestra",
	"Composer",
	"Lyricist/text writer",
	"Recording Location",
	"During recording",
	"During performance",
	"Movie/video screen capture",
	"A bright coloured fish",
	"Illustration",
	"Band/artist logotype",
	"Publisher/Studio logotype",
}

//framePayloadDecoders maps the non-text-series frame identifiers that have
//a dedicated payload shape. The T-series rule and the Unsupported fallback
//live in decodeFramePayload.
var framePayloadDecoders = map[string]func(body []byte) FramePayload{
	"COMM": decodeDescribedText,
	"USLT": decodeDescribedText,
	"TXXX": decodeKeyedText,
	"APIC": decodePicture,
}

//decodeFramePayload dispatches a frame body to its payload decoder by
//identifier. Unrecognized identifiers decode to Unsupported; they are not
//an error.
func decodeFramePayload(id string, body []byte) FramePayload {
	if decode, ok := framePayloadDecoders[id]; ok {
		return decode(body)
	}
	if len(id) == 4 && id[0] == 'T' {
		return decodePlainText(body)
	}
	return Unsupported{}
}

func decodePlainText(body []byte) FramePayload {
	if len(body) == 0 {
		return PlainText{}
	}
	return PlainText{Text: decodeText(body[0], body[1:])}
}

func decodeDescribedText(body []byte) FramePayload {
	var d DescribedText
	if len(body) < 4 {
		return d
	}
	enc := body[0]
	//The language code is always ISO-8859-1 regardless of the selector.
	d.Language = decodeText(textEncodingISO88591, body[1:4])
	desc, text := splitNullTerminated(enc, body[4:])
	d.Description = decodeText(enc, desc)
	d.Text = decodeText(enc, text)
	return d
}

func decodeKeyedText(body []byte) FramePayload {
	var k KeyedText
	if len(body) == 0 {
		return k
	}
	enc := body[0]
	desc, value := splitNullTerminated(enc, body[1:])
	k.Description = decodeText(enc, desc)
	k.Value = decodeText(enc, value)
	return k
}

func decodePicture(body []byte) FramePayload {
	var p Picture
	if len(body) < 2 {
		return p
	}
	enc := body[0]
	//The MIME type is ISO-8859-1 with a single-byte terminator whatever the
	//selector says.
	mime, rest := splitNullTerminated(textEncodingISO88591, body[1:])
	p.MIMEType = string(mime)
	if len(rest) == 0 {
		return p
	}
	p.PictureType = rest[0]
	if int(p.PictureType) < len(pictureTypes) {
		p.TypeName = pictureTypes[p.PictureType]
	}
	desc, data := splitNullTerminated(enc, rest[1:])
	p.Description = decodeText(enc, desc)
	p.Data = data
	return p
}
