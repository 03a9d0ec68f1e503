// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// crackRow splits one row's raw bytes, already loaded into the table's
// current page buffer at [rowStart, rowStart+rowSize), across its
// columns: every column's presence bit in the trailing null bitmap,
// every fixed column's byte range from its declared offset, and every
// variable column's byte range from the variable-offset table that
// crackJet3Row/crackJet4Row recovers.
func crackRow(table *Table, rowStart, rowSize uint16) error {
	mdb := table.mdb
	rowStartI, rowSizeI := int(rowStart), int(rowSize)
	rowEnd := rowStartI + rowSizeI - 1

	var rowCols, colCountSize int
	if mdb.variant == VariantJET3 {
		rowCols = int(mdb.getU8(rowStartI))
		colCountSize = 1
	} else {
		rowCols = int(mdb.getU16(rowStartI))
		colCountSize = 2
	}

	bitmaskSize := (rowCols + 7) / 8
	extra := 0
	if mdb.variant != VariantJET3 {
		extra = 1
	}
	if bitmaskSize+extra >= rowEnd {
		return ErrInvalidRowBuffer
	}

	nullmaskStart := rowEnd - bitmaskSize + 1
	nullmask := mdb.pageBuffer[nullmaskStart:]

	rowVarCols := 0
	var varColOffsets []uint32
	if table.VariableColumnCount > 0 {
		if mdb.variant == VariantJET3 {
			rowVarCols = int(mdb.getU8(rowEnd - bitmaskSize))
		} else {
			rowVarCols = int(mdb.getU16(rowEnd - bitmaskSize - 1))
		}
		varColOffsets = make([]uint32, rowVarCols+1)

		var err error
		if mdb.variant == VariantJET3 {
			err = crackJet3Row(mdb, rowStartI, rowEnd, bitmaskSize, rowVarCols, varColOffsets)
		} else {
			err = crackJet4Row(mdb, rowEnd, bitmaskSize, rowVarCols, varColOffsets)
		}
		if err != nil {
			return ErrInvalidRowBuffer
		}
	}

	rowFixedCols := rowCols - rowVarCols
	fixedColumnsFound := 0

	for i := range table.Columns {
		col := &table.Columns[i]
		byteNum := int(col.number) / 8
		bitNum := uint(col.number) % 8
		col.buffer.isNull = !(byteNum < len(nullmask) && nullmask[byteNum]&(1<<bitNum) != 0)

		switch {
		case col.isFixed && fixedColumnsFound < rowFixedCols:
			colStart := int(col.fixedOffset) + colCountSize
			col.buffer.start = rowStartI + colStart
			end := col.buffer.start + int(col.Size)
			if end > len(mdb.pageBuffer) {
				return ErrInvalidDataLocation
			}
			col.buffer.value = append([]byte(nil), mdb.pageBuffer[col.buffer.start:end]...)
			fixedColumnsFound++

		case !col.isFixed && int(col.varColNum) < rowVarCols:
			colStart := int(varColOffsets[col.varColNum])
			size := int(varColOffsets[col.varColNum+1]) - colStart
			if size < 0 {
				return ErrInvalidDataLocation
			}
			col.buffer.start = rowStartI + colStart
			end := col.buffer.start + size
			if end > len(mdb.pageBuffer) {
				return ErrInvalidDataLocation
			}
			col.buffer.value = append([]byte(nil), mdb.pageBuffer[col.buffer.start:end]...)

		default:
			col.buffer.value = nil
			col.buffer.start = 0
			col.buffer.isNull = true
		}

		if col.buffer.start+len(col.buffer.value) > rowStartI+rowSizeI {
			return ErrInvalidDataLocation
		}
	}

	return nil
}

// crackJet3Row recovers the variable-offset table for a JET3 row,
// whose offsets are single bytes with an extra "jump" scheme kicking
// in once a row exceeds 256 bytes: a jump position byte marks where
// the 256s digit increments. The num_jumps-- correction below
// reconciles an off-by-one between the page's declared jump count and
// the column-pointer arithmetic; it is load-bearing and was arrived
// at empirically against real JET3 files, not derived from the format
// documentation.
func crackJet3Row(mdb *File, rowStart, rowEnd, bitmaskSize, rowVarCols int, offsets []uint32) error {
	rowLen := rowEnd - rowStart + 1
	numJumps := (rowLen - 1) / 256
	colPtr := rowEnd - bitmaskSize - numJumps - 1
	if (colPtr-rowStart-rowVarCols)/256 < numJumps {
		numJumps--
	}

	if bitmaskSize+numJumps+1 > rowEnd {
		return ErrInvalidRowBuffer
	}
	if colPtr >= mdb.constants.pageSize || colPtr < rowVarCols {
		return ErrInvalidRowBuffer
	}

	jumpsUsed := 0
	jumpMarker := int(mdb.pageBuffer[rowEnd-bitmaskSize-1])
	for i := 0; i <= rowVarCols; i++ {
		for jumpsUsed < numJumps && i == jumpMarker {
			jumpsUsed++
		}
		offsets[i] = uint32(mdb.pageBuffer[colPtr-i]) + uint32(jumpsUsed*256)
	}
	return nil
}

// crackJet4Row recovers the variable-offset table for a JET4+ row,
// whose offsets are plain 2-byte little-endian values - no jump scheme
// is needed since the 16-bit range covers the whole 4 KiB page.
func crackJet4Row(mdb *File, rowEnd, bitmaskSize, rowVarCols int, offsets []uint32) error {
	if bitmaskSize+3+rowVarCols*2+2 > rowEnd {
		return ErrInvalidRowBuffer
	}
	for i := 0; i <= rowVarCols; i++ {
		offsets[i] = uint32(mdb.getU16(rowEnd - bitmaskSize - 3 - i*2))
	}
	return nil
}
