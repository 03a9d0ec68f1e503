// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// Row-slot table layout: immediately after the per-page row count field
// (at usageRowCountOffset) comes a forward-growing array of 2-byte
// slot entries, one per row, in the order rows were added to the page.
// A slot's low 13 bits give the row's starting byte offset; the top
// two bits are the lookup (0x8000) and deleted (0x4000) flags. Because
// rows themselves are allocated back-to-front from the end of the
// page, slot 0 holds the highest starting offset and each later slot's
// record ends where the previous slot's record begins.
const (
	rowOffsetMask  = 0x1fff
	rowLookupFlag  = 0x8000
	rowDeletedFlag = 0x4000
)

// row is a located record: its raw (flag-bearing) start slot value and
// its byte length on the current page.
type row struct {
	rawStart uint16
	length   uint16
}

func (r row) start() uint16   { return r.rawStart & rowOffsetMask }
func (r row) deleted() bool   { return r.rawStart&rowDeletedFlag != 0 }
func (r row) isLookup() bool  { return r.rawStart&rowLookupFlag != 0 }

// findRow locates rowIndex on the currently loaded page, rejecting any
// index beyond the configured Options.MaxRowScan ceiling.
func (f *File) findRow(rowIndex uint16) (row, error) {
	if int(rowIndex) > f.maxRowScan() {
		return row{}, ErrRowOutOfRange
	}

	pageSize := uint16(f.constants.pageSize)
	base := f.constants.usageRowCountOffset

	start := f.getU16(base + 2 + int(rowIndex)*2)

	var nextStart uint16
	if rowIndex == 0 {
		nextStart = pageSize
	} else {
		nextStart = f.getU16(base+int(rowIndex)*2) & rowOffsetMask
	}

	maskedStart := start & rowOffsetMask
	if maskedStart >= pageSize || maskedStart > nextStart || nextStart > pageSize {
		return row{}, ErrInvalidRowBounds
	}

	return row{rawStart: start, length: nextStart - maskedStart}, nil
}

// findPageRow loads page and locates rowIndex on it.
func (f *File) findPageRow(page uint32, rowIndex uint8) (row, error) {
	if err := f.ReadPage(page); err != nil {
		return row{}, err
	}
	return f.findRow(uint16(rowIndex))
}

