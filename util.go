package mpegi

import (
	"io"
	"strings"
)

//Checks to see if all bytes in a slice are 0
func areZero(b []byte) bool {
	for _, byte := range b {
		if byte != 0 {
			return false
		}
	}
	return true
}

func getBit(b byte, n uint) bool {
	if n > 7 {
		return false
	}
	x := byte(1 << n)
	return (b & x) == x
}

//treats an unknown number of bytes as a big-endian uint and returns as an int
func getInt(b []byte) int {
	var n int
	for _, x := range b {
		n = n << 8
		n |= int(x)
	}
	return n
}

func getString(b []byte) string {
	return trimString(string(b))
}

func readBytes(r io.Reader, n uint) ([]byte, error) {
	b := make([]byte, n)
	_, err := io.ReadFull(r, b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func trimString(x string) string {
	return strings.TrimSpace(strings.Trim(x, "\x00"))
}
