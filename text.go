// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "fmt"

// decodeString converts source to UTF-8 using the file's chosen
// encoding (Windows-1252 for JET3, UTF-16LE for every newer variant),
// first reversing the "Unicode compression" scheme when the source
// carries its 0xff 0xfe marker.
func (f *File) decodeString(source []byte) (string, error) {
	if f.variant != VariantJET3 && len(source) >= 2 && source[0] == 0xff && source[1] == 0xfe {
		decompressed := decompressUnicode(source[2:])
		out, err := f.encoding.NewDecoder().Bytes(decompressed)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStringDecode, err)
		}
		return string(out), nil
	}

	out, err := f.encoding.NewDecoder().Bytes(source)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStringDecode, err)
	}
	return string(out), nil
}

// decompressUnicode reverses JET/ACE's "Unicode compression": runs of
// single-byte characters are stored as one byte each (the decoder
// pads them back out to UTF-16LE with a zero high byte), with a
// literal 0x00 toggling in and out of compression.
func decompressUnicode(src []byte) []byte {
	res := make([]byte, 0, len(src)*2)
	compress := true
	cur := 0
	for cur < len(src) {
		switch {
		case src[cur] == 0:
			compress = !compress
			cur++
		case compress:
			res = append(res, src[cur], 0)
			cur++
		case len(src)-cur >= 2:
			res = append(res, src[cur], src[cur+1])
			cur += 2
		default:
			// Odd trailing byte: nothing more to pair it with.
			cur = len(src)
		}
	}
	return res
}
