package pdfbookmark

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

const unicodeMarkPrefix = "<FEFF"

var markEscaper = strings.NewReplacer(
	`\`, `\\`,
	`(`, `\(`,
	`)`, `\)`,
	"\n", `\n`,
	"\t", `\t`,
)

// EncodeMarkString renders text as a pdfmark string token. ASCII text becomes
// an escaped literal string "(...)"; anything else becomes a UTF-16BE hex
// string with a byte order mark, "<FEFF...>".
func EncodeMarkString(text string) string {
	if isASCII(text) {
		return "(" + markEscaper.Replace(text) + ")"
	}

	// UTF-16 encoding of valid UTF-8 cannot fail.
	encoded, _ := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().
		Bytes([]byte(strings.ToValidUTF8(text, "�")))
	return "<" + strings.ToUpper(hex.EncodeToString(encoded)) + ">"
}

// DecodeMarkString decodes a "<FEFF...>" token produced by EncodeMarkString.
func DecodeMarkString(token string) (string, error) {
	if !strings.HasPrefix(token, unicodeMarkPrefix) || !strings.HasSuffix(token, ">") {
		return "", fmt.Errorf("%w: %q must start with %s and end with >", ErrInvalidUnicodeMarkToken, token, unicodeMarkPrefix)
	}

	raw, err := hex.DecodeString(token[1 : len(token)-1])
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidUnicodeMarkToken, token, err)
	}
	if len(raw)%2 != 0 {
		return "", fmt.Errorf("%w: %q has an odd number of bytes", ErrInvalidUnicodeMarkToken, token)
	}

	if i := unpairedSurrogate(raw); i >= 0 {
		return "", fmt.Errorf("%w: %q has an unpaired surrogate at code unit %d", ErrInvalidUnicodeMarkToken, token, i)
	}

	decoded, err := unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidUnicodeMarkToken, token, err)
	}
	return string(decoded), nil
}

// unpairedSurrogate returns the index of the first UTF-16BE code unit that
// is a surrogate without its partner, or -1.
func unpairedSurrogate(raw []byte) int {
	n := len(raw) / 2
	for i := 0; i < n; i++ {
		u := uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
		switch {
		case u >= 0xDC00 && u <= 0xDFFF:
			return i
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= n {
				return i
			}
			next := uint16(raw[2*i+2])<<8 | uint16(raw[2*i+3])
			if next < 0xDC00 || next > 0xDFFF {
				return i
			}
			i++
		}
	}
	return -1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
