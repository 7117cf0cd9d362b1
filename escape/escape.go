// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package escape

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Marker starts every escape sequence.
const Marker = '%'

// hexDigits is the number of hex digits following Marker. Unicode code points
// fit in 21 bits.
const hexDigits = 6

// escapeLen is the length in bytes of an escape sequence.
const escapeLen = 1 + hexDigits

const lowerHex = "0123456789abcdef"

// ErrMalformed indicates that an escaped token could not be decoded.
var ErrMalformed = errors.New("malformed escape sequence")

// isFileNameRune reports whether r may appear unescaped in a file name.
func isFileNameRune(r rune) bool {
	switch {
	case '0' <= r && r <= '9':
		return true
	case 'A' <= r && r <= 'Z':
		return true
	case 'a' <= r && r <= 'z':
		return true
	}
	return r == '_'
}

// Encoder escapes every code point that is not an ASCII letter, ASCII digit
// or underscore.
type Encoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (Encoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if isFileNameRune(c) {
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = byte(c)
			nDst++
			nSrc += size
			continue
		}

		// NOTE: invalid UTF-8 decodes as utf8.RuneError and is escaped as
		// U+FFFD.
		if nDst+escapeLen > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = Marker
		v := uint32(c)
		for i := hexDigits; i > 0; i-- {
			dst[nDst+i] = lowerHex[v&0xf]
			v >>= 4
		}
		nDst += escapeLen
		nSrc += size
	}

	return nDst, nSrc, nil
}

// Decoder reverses the escaping done by Encoder. Bytes other than Marker are
// copied as is.
type Decoder struct {
	transform.NopResetter
}

// Transform implements [transform.Transformer.Transform].
func (Decoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if src[nSrc] != Marker {
			c, size := utf8.DecodeRune(src[nSrc:])
			if c == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			if nDst+size > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
			nSrc += size
			continue
		}

		if len(src)-nSrc < escapeLen {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, fmt.Errorf("%w: truncated %q", ErrMalformed, src[nSrc:])
		}

		seq := src[nSrc : nSrc+escapeLen]
		v, err := strconv.ParseUint(string(seq[1:]), 16, 32)
		if err != nil {
			return nDst, nSrc, fmt.Errorf("%w: %q", ErrMalformed, seq)
		}
		r := rune(v)
		if !utf8.ValidRune(r) {
			return nDst, nSrc, fmt.Errorf("%w: %q is not a valid code point", ErrMalformed, seq)
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += escapeLen
	}

	return nDst, nSrc, nil
}

// Encode returns s with all characters that are unsafe in file names escaped.
func Encode(s string) string {
	//nolint:errcheck // Encoder never returns an error for complete input.
	t, _, _ := transform.String(Encoder{}, s)
	return t
}

// Decode reverses Encode. It returns an error wrapping ErrMalformed if t
// contains an invalid escape sequence.
func Decode(t string) (string, error) {
	s, _, err := transform.String(Decoder{}, t)
	if err != nil {
		return "", fmt.Errorf("decoding %q: %w", t, err)
	}
	return s, nil
}
