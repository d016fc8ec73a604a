package mpegi

import "fmt"

//Synchsafe integers keep the most significant bit of every byte clear so
//that tag data can never contain the 0xFF byte runs that mark an audio frame
//sync. Four such bytes carry 28 significant bits, most significant byte
//first. They are used for the ID3v2 tag size and, from v2.4 on, for frame
//sizes.

const maxSynchsafe = 1<<28 - 1

//decodeSynchsafe decodes a 4-byte synchsafe integer. A set high bit in any
//input byte fails with ErrInvalidEncoding; contexts that mandate synchsafe
//encoding treat such bytes as corruption, not as data.
func decodeSynchsafe(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, fmt.Errorf("%w: expected 4 bytes, got %d", ErrInvalidEncoding, len(b))
	}
	var n uint32
	for _, x := range b[:4] {
		if x&0x80 != 0 {
			return 0, fmt.Errorf("%w: byte %#02x has high bit set", ErrInvalidEncoding, x)
		}
		n = n<<7 | uint32(x&0x7F)
	}
	return n, nil
}

//encodeSynchsafe encodes n into 4 bytes of 7 significant bits each. Values
//that do not fit in 28 bits fail with ErrInvalidEncoding.
func encodeSynchsafe(n uint32) ([4]byte, error) {
	var b [4]byte
	if n > maxSynchsafe {
		return b, fmt.Errorf("%w: %d exceeds 28 bits", ErrInvalidEncoding, n)
	}
	b[0] = byte(n >> 21 & 0x7F)
	b[1] = byte(n >> 14 & 0x7F)
	b[2] = byte(n >> 7 & 0x7F)
	b[3] = byte(n & 0x7F)
	return b, nil
}
