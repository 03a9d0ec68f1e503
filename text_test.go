// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecompressUnicode(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "fully compressed run",
			src:  []byte{'A', 'B', 'C'},
			want: []byte{'A', 0, 'B', 0, 'C', 0},
		},
		{
			name: "toggle to uncompressed pairs",
			src:  []byte{0x00, 0x41, 0x00, 0x42, 0x00},
			want: []byte{0x41, 0x00, 0x42, 0x00},
		},
		{
			name: "odd trailing byte after toggle is dropped",
			src:  []byte{0x00, 0x41},
			want: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decompressUnicode(tt.src)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("decompressUnicode(%v) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestDecodeStringWindows1252(t *testing.T) {
	f := &File{variant: VariantJET3, encoding: charmap.Windows1252}

	got, err := f.decodeString([]byte("hello"))
	if err != nil {
		t.Fatalf("decodeString: unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("decodeString = %q, want %q", got, "hello")
	}
}

func TestDecodeStringUTF16LE(t *testing.T) {
	f := &File{variant: VariantJET4, encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}

	// "Hi" as raw UTF-16LE, no compression marker.
	got, err := f.decodeString([]byte{'H', 0, 'i', 0})
	if err != nil {
		t.Fatalf("decodeString: unexpected error: %v", err)
	}
	if got != "Hi" {
		t.Errorf("decodeString = %q, want %q", got, "Hi")
	}
}

func TestDecodeStringCompressedMarker(t *testing.T) {
	f := &File{variant: VariantJET4, encoding: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}

	// 0xff 0xfe marker followed by a fully compressed "Hi" run.
	got, err := f.decodeString([]byte{0xff, 0xfe, 'H', 'i'})
	if err != nil {
		t.Fatalf("decodeString: unexpected error: %v", err)
	}
	if got != "Hi" {
		t.Errorf("decodeString(compressed) = %q, want %q", got, "Hi")
	}
}
