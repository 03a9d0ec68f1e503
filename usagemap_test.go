// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

func TestBitsFromBytesLSB(t *testing.T) {
	bits := bitsFromBytesLSB([]byte{0b00000101})
	want := []bool{true, false, true, false, false, false, false, false}
	if len(bits) != len(want) {
		t.Fatalf("len(bits) = %d, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d = %v, want %v", i, bits[i], want[i])
		}
	}
}

func TestLoadUsageMapInline(t *testing.T) {
	buf := []byte{0x00, 0x05, 0x00, 0x00, 0x00, 0b00000101}

	m, err := loadUsageMap(nil, buf)
	if err != nil {
		t.Fatalf("loadUsageMap: %v", err)
	}
	if m.startPage != 5 {
		t.Errorf("startPage = %d, want 5", m.startPage)
	}

	if next, err := m.nextAllocatedPageAfter(4); err != nil || next != 5 {
		t.Errorf("nextAllocatedPageAfter(4) = (%d, %v), want (5, nil)", next, err)
	}
	if next, err := m.nextAllocatedPageAfter(5); err != nil || next != 7 {
		t.Errorf("nextAllocatedPageAfter(5) = (%d, %v), want (7, nil)", next, err)
	}
	if _, err := m.nextAllocatedPageAfter(7); err != ErrNoFreePages {
		t.Errorf("nextAllocatedPageAfter(7) err = %v, want ErrNoFreePages", err)
	}
}

func TestLoadUsageMapEmpty(t *testing.T) {
	if _, err := loadUsageMap(nil, nil); err != ErrUsageMapEmpty {
		t.Errorf("loadUsageMap(nil) err = %v, want ErrUsageMapEmpty", err)
	}
}

func TestLoadUsageMapUnknownType(t *testing.T) {
	if _, err := loadUsageMap(nil, []byte{0x02}); err != ErrUnknownMapType {
		t.Errorf("loadUsageMap(type 2) err = %v, want ErrUnknownMapType", err)
	}
}

func TestLoadUsageMapPartitionUnsupported(t *testing.T) {
	if _, err := loadUsageMap(nil, []byte{0x05}); err != ErrUnsupportedPartitionMap {
		t.Errorf("loadUsageMap(type 5) err = %v, want ErrUnsupportedPartitionMap", err)
	}
}
