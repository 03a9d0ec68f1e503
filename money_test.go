// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

func putI64LE(v int64) []byte {
	u := uint64(v)
	return []byte{
		byte(u), byte(u >> 8), byte(u >> 16), byte(u >> 24),
		byte(u >> 32), byte(u >> 40), byte(u >> 48), byte(u >> 56),
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name string
		val  int64
		want string
	}{
		{"positive, 4 fraction digits", 1234500, "123.4500"},
		{"negative", -52500, "-5.2500"},
		{"zero", 0, "0.0"},
		{"whole number", 70000, "7.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatMoney(putI64LE(tt.val))
			if err != nil {
				t.Fatalf("formatMoney: unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("formatMoney(%d) = %q, want %q", tt.val, got, tt.want)
			}
		})
	}
}

func TestFormatMoneyShortBuffer(t *testing.T) {
	if _, err := formatMoney([]byte{1, 2, 3}); err != ErrInvalidDataLocation {
		t.Errorf("formatMoney(short buffer) err = %v, want ErrInvalidDataLocation", err)
	}
}
