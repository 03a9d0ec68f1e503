// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

// numericBuf builds the 17-byte NUMERIC encoding for a base-256
// magnitude whose bytes (least significant first) are mag, per the
// buf[1+12-4*(i/4)+i%4] layout formatNumeric reads from.
func numericBuf(negative bool, mag ...byte) []byte {
	var buf [17]byte
	if negative {
		buf[0] = 0x80
	}
	for i := 0; i < len(mag) && i < 16; i++ {
		buf[1+12-4*(i/4)+i%4] = mag[i]
	}
	return buf[:]
}

func TestFormatNumeric(t *testing.T) {
	tests := []struct {
		name      string
		negative  bool
		mag       []byte
		precision uint8
		want      string
	}{
		// -123.4500, scale 4: magnitude 1234500 = 0x12D644.
		{"negative scaled", true, []byte{0x44, 0xD6, 0x12}, 4, "-123.4500"},
		{"zero scale integer", false, []byte{0x05}, 0, "5"},
		{"positive scaled", false, []byte{0x44, 0xD6, 0x12}, 4, "123.4500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatNumeric(numericBuf(tt.negative, tt.mag...), tt.precision)
			if err != nil {
				t.Fatalf("formatNumeric: unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("formatNumeric(%v, scale=%d) = %q, want %q", tt.mag, tt.precision, got, tt.want)
			}
		})
	}
}

func TestFormatNumericWrongLength(t *testing.T) {
	got, err := formatNumeric([]byte{1, 2, 3}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("formatNumeric(short buffer) = %q, want empty string", got)
	}
}
