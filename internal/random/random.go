// Package random generates random identifiers from the system entropy source.
package random

import (
	"crypto/rand"
	"strings"
)

// AlnumLength is the length of the identifiers produced by Alnum.
const AlnumLength = 32

// Alnum draws bytes from the system entropy source, keeps the ones that fall
// in [a-zA-Z0-9], and returns the first 32 such characters. The result is an
// identifier, not a cryptographic secret.
func Alnum() (string, error) {
	var b strings.Builder
	b.Grow(AlnumLength)

	buf := make([]byte, 64)
	for b.Len() < AlnumLength {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, c := range buf {
			if isAlnum(c) {
				b.WriteByte(c)
				if b.Len() == AlnumLength {
					break
				}
			}
		}
	}

	return b.String(), nil
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
