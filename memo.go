// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// memoOverhead is the 4-byte length/flags header, the 4-byte packed
// page-row pointer at offset 4, and 4 further bytes that precede any
// inline data in a MEMO column's row value.
const memoOverhead = 12

// loadMemoText resolves a MEMO column's off-row text, caching it on c
// for the lifetime of the current row. The chain walk runs on an
// excursion clone of the table's file handle so it never disturbs the
// table's current page.
func (c *Column) loadMemoText() error {
	if c.Type != ColumnTypeMemo {
		return ErrUnhandledColumnType
	}
	empty := ""
	if c.buffer.isNull || len(c.buffer.value) == 0 || len(c.buffer.value) < memoOverhead {
		c.memoText = &empty
		return nil
	}

	f := c.ownerFile
	memoLength := getU32(c.buffer.value, 0)
	excursion := f.clone()

	var text string
	var err error

	switch {
	case memoLength&0x80000000 != 0: // inline
		text, err = excursion.decodeString(c.buffer.value[memoOverhead:])

	case memoLength&0x40000000 != 0: // single overflow page
		pageRow := getU32(c.buffer.value, 4)
		page, rowIdx := packedPageRow(pageRow)
		r, ferr := excursion.findPageRow(page, rowIdx)
		if ferr != nil {
			return ferr
		}
		start := int(r.start())
		text, err = excursion.decodeString(excursion.pageBuffer[start : start+int(r.length)])

	case memoLength&0xff000000 == 0: // multi-page chain
		length := int(memoLength)
		pageRow := getU32(c.buffer.value, 4)
		buffer := make([]byte, length)
		recovered := 0

		for {
			page, rowIdx := packedPageRow(pageRow)
			r, ferr := excursion.findPageRow(page, rowIdx)
			if ferr != nil {
				return ferr
			}
			if recovered+int(r.length)-4 > length {
				break
			}
			if r.length < 4 {
				break
			}
			start := int(r.start())
			copy(buffer[recovered:recovered+int(r.length)-4], excursion.pageBuffer[start+4:start+int(r.length)])
			recovered += int(r.length) - 4

			pageRow = excursion.getU32(start)
			if pageRow == 0 {
				break
			}
		}

		if recovered < length {
			f.warnf("memo column %s: recovered %d of %d declared bytes", c.Name, recovered, length)
		}
		text, err = excursion.decodeString(buffer[:recovered])

	default:
		return ErrUnhandledColumnType
	}

	if err != nil {
		return err
	}
	c.memoText = &text
	return nil
}

// Text returns a MEMO column's decoded value for the current row,
// empty until loadMemoText has run.
func (c *Column) Text() string {
	if c.memoText == nil {
		return ""
	}
	return *c.memoText
}
