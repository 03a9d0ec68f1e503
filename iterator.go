// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "fmt"

const pageTypeData = 1

// Next advances the table to its next row, cracking it into Columns
// and resolving any MEMO column's text. It returns ErrNoMoreRows once
// the table's data pages are exhausted; any other error also ends the
// scan and should not be retried.
func (t *Table) Next() error {
	if t.currentPageNumber == 0 {
		t.currentPageNumber = 1
		t.currentRow = 0
		if err := t.readNextDataPage(); err != nil {
			return noMoreRows(err)
		}
	}

	for {
		rows := t.mdb.getU16(t.mdb.constants.usageRowCountOffset)
		if t.currentRow >= rows {
			t.currentRow = 0
			if err := t.readNextDataPage(); err != nil {
				return noMoreRows(err)
			}
		}

		err := t.readRow(t.currentRow)
		t.currentRow++

		if err == nil {
			for i := range t.Columns {
				col := &t.Columns[i]
				switch col.Type {
				case ColumnTypeMemo:
					if merr := col.loadMemoText(); merr != nil {
						t.mdb.warnf("table %s: %v", t.Name, merr)
					}
				case ColumnTypeText:
					if t.mdb.opts.StrictText && !col.IsNull() {
						if _, terr := col.decodedText(); terr != nil {
							return fmt.Errorf("table %s: %w", t.Name, terr)
						}
					}
				}
			}
			return nil
		}
	}
}

// noMoreRows maps a readNextDataPage failure at end-of-scan (usually
// the usage map's ErrNoFreePages, or an unreadable page) to ErrNoMoreRows,
// the public "scan is done" signal, while still surfacing a genuine
// corruption signal (ErrNextDataPageCycle) as itself.
func noMoreRows(err error) error {
	if err == ErrNextDataPageCycle {
		return err
	}
	return ErrNoMoreRows
}

// readNextDataPage advances the page cursor to the table's next data
// page by repeatedly consulting its usage map rather than scanning the
// file page by page: each step asks the usage map for the next
// allocated page after the current one, loads it, and accepts it only
// if its type byte is data and its page-4 owner field matches the
// table's definition page, looping on any other page the usage map
// happens to allocate to another table. A usage map that ever answers
// with the same page twice in a row is corrupt; that's ErrNextDataPageCycle,
// not a silent retry.
func (t *Table) readNextDataPage() error {
	for {
		next, err := t.usageMap.nextAllocatedPageAfter(t.currentPageNumber)
		if err != nil {
			return err
		}
		if next == t.currentPageNumber {
			return ErrNextDataPageCycle
		}
		t.currentPageNumber = next

		if err := t.mdb.ReadPage(next); err != nil {
			return err
		}
		if t.mdb.getU8(0) == pageTypeData && t.mdb.getU32(4) == t.firstTableDefinitionPage {
			return nil
		}
	}
}

// readRow locates rowIndex on the table's current page and cracks it.
func (t *Table) readRow(rowIndex uint16) error {
	if t.ColumnCount == 0 || len(t.Columns) == 0 {
		return ErrInvalidRow
	}

	r, err := t.mdb.findRow(rowIndex)
	if err != nil {
		return err
	}
	if r.length == 0 {
		return ErrInvalidRow
	}
	if r.deleted() {
		return ErrDeletedRow
	}

	return crackRow(t, r.start(), r.length)
}
