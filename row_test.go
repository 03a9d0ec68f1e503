// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

func putU16At(buf []byte, offset int, v uint16) {
	buf[offset] = byte(v)
	buf[offset+1] = byte(v >> 8)
}

// newRowSlotPage builds a JET4-sized page whose row-slot table (at
// usageRowCountOffset+2) holds the given raw slot values, in
// placement order, matching the forward-growing layout findRow reads.
func newRowSlotPage(slots ...uint16) []byte {
	c := &jet4Constants
	buf := make([]byte, c.pageSize)
	for i, v := range slots {
		putU16At(buf, c.usageRowCountOffset+2+i*2, v)
	}
	return buf
}

func TestFindRow(t *testing.T) {
	buf := newRowSlotPage(4080, 4000, 3900|rowDeletedFlag)
	f := &File{constants: &jet4Constants, pageBuffer: buf}

	r0, err := f.findRow(0)
	if err != nil {
		t.Fatalf("findRow(0): %v", err)
	}
	if r0.start() != 4080 || r0.length != 16 {
		t.Errorf("findRow(0) = {start:%d len:%d}, want {4080 16}", r0.start(), r0.length)
	}
	if r0.deleted() {
		t.Errorf("findRow(0).deleted() = true, want false")
	}

	r1, err := f.findRow(1)
	if err != nil {
		t.Fatalf("findRow(1): %v", err)
	}
	if r1.start() != 4000 || r1.length != 80 {
		t.Errorf("findRow(1) = {start:%d len:%d}, want {4000 80}", r1.start(), r1.length)
	}

	r2, err := f.findRow(2)
	if err != nil {
		t.Fatalf("findRow(2): %v", err)
	}
	if r2.start() != 3900 || r2.length != 100 {
		t.Errorf("findRow(2) = {start:%d len:%d}, want {3900 100}", r2.start(), r2.length)
	}
	if !r2.deleted() {
		t.Errorf("findRow(2).deleted() = false, want true")
	}
}

func TestFindRowOutOfRange(t *testing.T) {
	f := &File{constants: &jet4Constants, pageBuffer: newRowSlotPage(4080)}
	if _, err := f.findRow(uint16(f.maxRowScan() + 1)); err != ErrRowOutOfRange {
		t.Errorf("findRow(out of range) err = %v, want ErrRowOutOfRange", err)
	}
}

func TestFindRowRespectsConfiguredMaxRowScan(t *testing.T) {
	f := &File{
		constants:  &jet4Constants,
		pageBuffer: newRowSlotPage(4080),
		opts:       Options{MaxRowScan: 5},
	}
	if _, err := f.findRow(6); err != ErrRowOutOfRange {
		t.Errorf("findRow(6) err = %v, want ErrRowOutOfRange", err)
	}
	// Index 0 is still within the lowered ceiling and within the
	// page's actual slot table, so it must resolve normally.
	if _, err := f.findRow(0); err != nil {
		t.Errorf("findRow(0) err = %v, want nil", err)
	}
}

func TestFindRowInvalidBounds(t *testing.T) {
	// A row-0 start offset whose masked value equals the page size
	// itself is out of bounds (valid offsets are strictly < pageSize).
	c := &jet4Constants
	buf := newRowSlotPage(uint16(c.pageSize) & rowOffsetMask)
	f := &File{constants: c, pageBuffer: buf}

	if _, err := f.findRow(0); err != ErrInvalidRowBounds {
		t.Errorf("findRow(invalid) err = %v, want ErrInvalidRowBounds", err)
	}
}
