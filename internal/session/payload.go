package session

import (
	"strings"
	"unicode/utf8"
)

// ExpandEscapes converts SendOnce content into the bytes put on the wire.
// Every "0xHH" or "0XHH" (two hex digits, either case) becomes the byte 0xHH;
// everything else is copied as UTF-8.
func ExpandEscapes(content string) []byte {
	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); {
		if i+4 <= len(content) && content[i] == '0' && (content[i+1] == 'x' || content[i+1] == 'X') {
			hi, okHi := unhex(content[i+2])
			lo, okLo := unhex(content[i+3])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 4
				continue
			}
		}
		out = append(out, content[i])
		i++
	}
	return out
}

// Escape is the inverse of ExpandEscapes for raw byte payloads: each byte is
// written as an upper-case 0xHH escape.
func Escape(data []byte) string {
	const digits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(data) * 4)
	for _, c := range data {
		b.WriteString("0x")
		b.WriteByte(digits[c>>4])
		b.WriteByte(digits[c&0x0f])
	}
	return b.String()
}

// decodeText turns bytes read from the port into a valid UTF-8 string. Each
// ill-formed sequence becomes its own U+FFFD, so a burst of n stray bytes
// shows as n replacement characters.
func decodeText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var b strings.Builder
	b.Grow(len(data) * utf8.UTFMax)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			data = data[invalidPrefix(data):]
			continue
		}
		b.Write(data[:size])
		data = data[size:]
	}
	return b.String()
}

// invalidPrefix returns the length of the ill-formed sequence at the start of
// p: a lead byte plus the continuation bytes that still fit it.
func invalidPrefix(p []byte) int {
	lo, hi, need := byte(0x80), byte(0xBF), 0
	switch c := p[0]; {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		lo, need = 0xA0, 2
	case c == 0xED:
		hi, need = 0x9F, 2
	case c >= 0xE1 && c <= 0xEF:
		need = 2
	case c == 0xF0:
		lo, need = 0x90, 3
	case c == 0xF4:
		hi, need = 0x8F, 3
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	}

	n := 1
	for n <= need && n < len(p) && p[n] >= lo && p[n] <= hi {
		lo, hi = 0x80, 0xBF
		n++
	}
	return n
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
