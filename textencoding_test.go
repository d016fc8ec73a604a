package mpegi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name   string
		enc    byte
		input  []byte
		output string
	}{
		{"empty", textEncodingISO88591, nil, ""},
		{"iso ascii", textEncodingISO88591, []byte("Basshunter\x00"), "Basshunter"},
		{"iso high byte", textEncodingISO88591, []byte{'n', 0xE4, 'r'}, "när"},
		{"utf16 le bom", textEncodingUTF16, []byte{0xFF, 0xFE, '2', 0, '0', 0, '0', 0, '7', 0}, "2007"},
		{"utf16 be bom", textEncodingUTF16, []byte{0xFE, 0xFF, 0, '2', 0, '0', 0, '0', 0, '7'}, "2007"},
		{"utf16 bom only", textEncodingUTF16, []byte{0xFF, 0xFE}, ""},
		{"utf16be", textEncodingUTF16BE, []byte{0, 'h', 0, 'i'}, "hi"},
		{"utf8", textEncodingUTF8, []byte("träck\x00"), "träck"},
		{"unknown selector treated as utf8", 0x07, []byte("text"), "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.output, decodeText(tt.enc, tt.input))
		})
	}
}

func TestSplitNullTerminated(t *testing.T) {
	//Single-byte terminator
	head, rest := splitNullTerminated(textEncodingISO88591, []byte("key\x00value"))
	assert.Equal(t, []byte("key"), head)
	assert.Equal(t, []byte("value"), rest)

	//No terminator: the whole input is the head
	head, rest = splitNullTerminated(textEncodingISO88591, []byte("key"))
	assert.Equal(t, []byte("key"), head)
	assert.Nil(t, rest)

	//Two-byte terminator on an even boundary
	head, rest = splitNullTerminated(textEncodingUTF16, []byte{'a', 0, 0, 0, 'b', 0})
	assert.Equal(t, []byte{'a', 0}, head)
	assert.Equal(t, []byte{'b', 0}, rest)

	//A zero byte shared by two adjacent code units is not a terminator:
	//"Ā" (0x0100 LE: 00 01) followed by "Ā" again must stay intact.
	head, rest = splitNullTerminated(textEncodingUTF16, []byte{0x00, 0x01, 0x00, 0x01, 0x00, 0x00, 'x', 0})
	assert.Equal(t, []byte{0x00, 0x01, 0x00, 0x01}, head)
	assert.Equal(t, []byte{'x', 0}, rest)
}

func TestTerminatorLength(t *testing.T) {
	assert.Equal(t, 1, terminatorLength(textEncodingISO88591))
	assert.Equal(t, 2, terminatorLength(textEncodingUTF16))
	assert.Equal(t, 2, terminatorLength(textEncodingUTF16BE))
	assert.Equal(t, 1, terminatorLength(textEncodingUTF8))
}
