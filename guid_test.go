// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

func TestFormatReplicationID(t *testing.T) {
	// On-disk bytes in mixed-endian order; guidByteOrder reorders them
	// into canonical big-endian GUID byte order
	// 00112233-4455-6677-8899-aabbccddeeff.
	raw := []byte{
		0x33, 0x22, 0x11, 0x00,
		0x55, 0x44,
		0x77, 0x66,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}

	got, err := formatReplicationID(raw)
	if err != nil {
		t.Fatalf("formatReplicationID: unexpected error: %v", err)
	}
	want := "{00112233-4455-6677-8899-AABBCCDDEEFF}"
	if got != want {
		t.Errorf("formatReplicationID = %q, want %q", got, want)
	}
}

func TestFormatReplicationIDShortBuffer(t *testing.T) {
	if _, err := formatReplicationID(make([]byte, 10)); err != ErrInvalidDataLocation {
		t.Errorf("formatReplicationID(short buffer) err = %v, want ErrInvalidDataLocation", err)
	}
}
