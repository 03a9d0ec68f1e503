// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"math"
	"testing"
)

func putF64LE(v float64) []byte {
	return putI64LE(int64(math.Float64bits(v)))
}

func TestFormatDatetimeBoundaries(t *testing.T) {
	tests := []struct {
		raw  float64
		want string
	}{
		{0.0, "12/30/1899 00:00:00"},
		{1.0, "12/31/1899 00:00:00"},
		{2.5, "01/01/1900 12:00:00"},
	}

	for _, tt := range tests {
		got, err := formatDatetime(putF64LE(tt.raw))
		if err != nil {
			t.Fatalf("formatDatetime(%v): unexpected error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("formatDatetime(%v) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestFormatDatetimeShortBuffer(t *testing.T) {
	if _, err := formatDatetime([]byte{1, 2, 3}); err != ErrInvalidDataLocation {
		t.Errorf("formatDatetime(short buffer) err = %v, want ErrInvalidDataLocation", err)
	}
}

func TestAsciiDigitsToInt64(t *testing.T) {
	if got := asciiDigitsToInt64([]byte("0001234")); got != 1234 {
		t.Errorf("asciiDigitsToInt64 = %d, want 1234", got)
	}
}

func TestFormatExtendedDatetimeShortBuffer(t *testing.T) {
	if _, err := formatExtendedDatetime(make([]byte, 10)); err != ErrInvalidDataLocation {
		t.Errorf("formatExtendedDatetime(short buffer) err = %v, want ErrInvalidDataLocation", err)
	}
}
