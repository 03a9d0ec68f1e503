// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// Table is one user or system table's metadata plus the cursor state
// needed to scan its rows. Table.Next always walks rows page by page
// in table-definition order; this reader carries no index or leaf
// traversal, so there is nothing else for a cursor to pick between.
type Table struct {
	Name                string
	RowCount            uint32
	VariableColumnCount uint16
	ColumnCount         uint16
	FirstDataPage       uint16
	Columns             []Column

	realIndexCount uint32

	mdb                      *File
	firstTableDefinitionPage uint32
	usageMap                 *usageMap

	currentPageNumber uint32
	currentRow        uint16
}

// FindColumnIndex returns the index of the column named name, or -1.
func (t *Table) FindColumnIndex(name string) int {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// FromCatalogEntry loads a table's definition page and usage map from
// a catalog entry, on a private clone of mdb so the table owns an
// independent cursor.
func FromCatalogEntry(entry *TableCatalogEntry, mdb *File) (*Table, error) {
	tableMdb := mdb.clone()

	if err := tableMdb.ReadPage(entry.Page); err != nil {
		return nil, err
	}
	if tableMdb.getU8(0) != 2 {
		return nil, ErrInvalidTableDefinition
	}

	c := tableMdb.constants
	pageRow := tableMdb.getU32(c.tabUsageMapOffset)
	realIndexCount := tableMdb.getU32(c.realIndexCountOffset)
	variableColumnCount := tableMdb.getU16(c.tableColumnCountOffset - 2)
	columnCount := tableMdb.getU16(c.tableColumnCountOffset)
	firstDataPage := tableMdb.getU16(c.tableFirstDataPageOffset)
	rowCount := tableMdb.getU32(c.rowCountOffset)

	usageMapMdb := tableMdb.clone()
	page, rowIdx := packedPageRow(pageRow)
	usageMapRow, err := usageMapMdb.findPageRow(page, rowIdx)
	if err != nil {
		return nil, err
	}
	start := int(usageMapRow.start())
	rawUsageMap := append([]byte(nil), usageMapMdb.pageBuffer[start:start+int(usageMapRow.length)]...)
	um, err := loadUsageMap(usageMapMdb, rawUsageMap)
	if err != nil {
		return nil, err
	}

	return &Table{
		Name:                     entry.Name,
		RowCount:                 rowCount,
		VariableColumnCount:      variableColumnCount,
		ColumnCount:              columnCount,
		FirstDataPage:            firstDataPage,
		Columns:                  nil,
		realIndexCount:           realIndexCount,
		mdb:                      tableMdb,
		firstTableDefinitionPage: entry.Page,
		usageMap:                 um,
	}, nil
}

// ReadColumns parses every column's attributes and name from the
// table-definition page, in two passes: a fixed-size attribute record
// per column, then the length-prefixed names (1-byte length under
// JET3, 2-byte otherwise), both following a cursor that may span onto
// continuation pages.
func (t *Table) ReadColumns() error {
	if err := t.mdb.ReadPage(t.firstTableDefinitionPage); err != nil {
		return err
	}

	c := t.mdb.constants
	cursor := uint16(c.tabColsStartOffset) + uint16(t.realIndexCount)*uint16(c.tabRidxEntrySize)

	entrySize := uint16(c.tabColEntrySize)
	columnBuf := make([]byte, entrySize)

	t.Columns = make([]Column, t.ColumnCount)

	for i := range t.Columns {
		col := &t.Columns[i]
		col.ownerFile = t.mdb

		if err := t.mdb.readSpanning(&cursor, columnBuf, int(entrySize)); err != nil {
			return err
		}

		colType, err := parseColumnType(columnBuf[0])
		if err != nil {
			return err
		}
		col.Type = colType
		col.number = columnBuf[c.columnNumberOffset]
		col.rowColumnNumber = getU16(columnBuf, c.tableRowColumnNumberOffset)

		switch colType {
		case ColumnTypeNumeric, ColumnTypeMoney, ColumnTypeFloat, ColumnTypeDouble:
			col.Scale = columnBuf[c.columnScaleOffset]
			col.Precision = columnBuf[c.columnPrecisionOffset]
		}

		flags := columnBuf[c.colFlagsOffset]
		col.isFixed = flags&0x01 != 0
		col.isLongAuto = flags&0x04 == 0
		col.isUUIDAuto = flags&0x40 == 0
		col.IsHyperlink = flags&0x80 != 0

		col.fixedOffset = getU16(columnBuf, c.tableColumnOffsetFixed)
		col.varColNum = getU16(columnBuf, c.tabColOffsetVar)

		if colType != ColumnTypeBool {
			col.Size = getU16(columnBuf, c.columnSizeOffset)
		} else {
			col.Size = 0
		}
	}

	for i := range t.Columns {
		col := &t.Columns[i]

		var nameSize int
		if t.mdb.variant == VariantJET3 {
			b, err := t.mdb.readSpanningU8(&cursor)
			if err != nil {
				return err
			}
			nameSize = int(b)
		} else {
			n, err := t.mdb.readSpanningU16(&cursor)
			if err != nil {
				return err
			}
			nameSize = int(n)
		}

		nameBuf := make([]byte, nameSize)
		if err := t.mdb.readSpanning(&cursor, nameBuf, nameSize); err != nil {
			return err
		}

		name, err := t.mdb.decodeString(nameBuf)
		if err != nil {
			return err
		}
		col.Name = name
	}

	return nil
}
