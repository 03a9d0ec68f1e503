// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"fmt"
	"math"
	"strconv"
)

// ColumnType identifies a column's on-disk value encoding, read from
// the single type byte at the start of a column-definition entry.
type ColumnType uint8

const (
	ColumnTypeBool             ColumnType = 0x01
	ColumnTypeByte             ColumnType = 0x02
	ColumnTypeInt              ColumnType = 0x03
	ColumnTypeLongInt          ColumnType = 0x04
	ColumnTypeMoney            ColumnType = 0x05
	ColumnTypeFloat            ColumnType = 0x06
	ColumnTypeDouble           ColumnType = 0x07
	ColumnTypeDatetime         ColumnType = 0x08
	ColumnTypeBinary           ColumnType = 0x09
	ColumnTypeText             ColumnType = 0x0a
	ColumnTypeOLE              ColumnType = 0x0b
	ColumnTypeMemo             ColumnType = 0x0c
	ColumnTypeReplicationID    ColumnType = 0x0f
	ColumnTypeNumeric          ColumnType = 0x10
	ColumnTypeComplex          ColumnType = 0x12
	ColumnTypeExtendedDatetime ColumnType = 0x14
)

func (t ColumnType) String() string {
	switch t {
	case ColumnTypeBool:
		return "bool"
	case ColumnTypeByte:
		return "byte"
	case ColumnTypeInt:
		return "int"
	case ColumnTypeLongInt:
		return "long int"
	case ColumnTypeMoney:
		return "money"
	case ColumnTypeFloat:
		return "float"
	case ColumnTypeDouble:
		return "double"
	case ColumnTypeDatetime:
		return "datetime"
	case ColumnTypeBinary:
		return "binary"
	case ColumnTypeText:
		return "text"
	case ColumnTypeOLE:
		return "ole"
	case ColumnTypeMemo:
		return "memo"
	case ColumnTypeReplicationID:
		return "replication id"
	case ColumnTypeNumeric:
		return "numeric"
	case ColumnTypeComplex:
		return "complex"
	case ColumnTypeExtendedDatetime:
		return "extended datetime"
	default:
		return "unknown"
	}
}

func parseColumnType(raw byte) (ColumnType, error) {
	switch ColumnType(raw) {
	case ColumnTypeBool, ColumnTypeByte, ColumnTypeInt, ColumnTypeLongInt, ColumnTypeMoney,
		ColumnTypeFloat, ColumnTypeDouble, ColumnTypeDatetime, ColumnTypeBinary, ColumnTypeText,
		ColumnTypeOLE, ColumnTypeMemo, ColumnTypeReplicationID, ColumnTypeNumeric,
		ColumnTypeComplex, ColumnTypeExtendedDatetime:
		return ColumnType(raw), nil
	default:
		return 0, ErrUnhandledColumnType
	}
}

// columnBuffer holds a single row's raw bytes for one column, set fresh
// by crackRow on every row fetch.
type columnBuffer struct {
	value  []byte
	start  int
	isNull bool
}

// Column describes one field of a Table: its on-disk type, its
// position in the fixed or variable portion of a row, and (after a row
// is fetched) that row's raw bytes for it.
type Column struct {
	Name      string
	Type      ColumnType
	Scale     uint8
	Precision uint8
	Size      uint16

	IsHyperlink bool
	isFixed     bool
	isLongAuto  bool
	isUUIDAuto  bool

	number          uint8
	rowColumnNumber uint16
	fixedOffset     uint16
	varColNum       uint16

	buffer columnBuffer

	// memoText caches a Memo column's decoded text for the current
	// row; populated by the table iterator after crackRow, since memo
	// data lives off-row and is comparatively expensive to fetch.
	memoText *string

	// ownerFile is the table's file handle, needed to decode TEXT
	// values and to walk a MEMO column's page chain. Set once by
	// Table.ReadColumns.
	ownerFile *File
}

// IsNull reports whether the current row's value is absent, per the
// row's null bitmap.
func (c *Column) IsNull() bool { return c.buffer.isNull }

// Raw returns the current row's undecoded bytes for this column.
func (c *Column) Raw() []byte { return c.buffer.value }

// String renders the current row's value the way the collaborating
// CLI export tools (out of scope here) would print a cell: numeric
// types in decimal, MONEY/NUMERIC/DATETIME/REPLICATION ID through
// their dedicated decoders, TEXT/MEMO decoded to UTF-8, and BOOL as
// whether the value is present at all (the format has no reserved
// false sentinel; BOOL columns are carried entirely in the null
// bitmap). BINARY/OLE/COMPLEX values are returned as-is; callers that
// need the raw bytes should use Raw instead.
func (c *Column) String() string {
	if c.buffer.isNull && c.Type != ColumnTypeBool {
		return ""
	}

	switch c.Type {
	case ColumnTypeByte:
		if len(c.buffer.value) < 1 {
			return ""
		}
		return formatSignedDecimal(int64(c.buffer.value[0]))
	case ColumnTypeInt:
		if len(c.buffer.value) < 2 {
			return ""
		}
		return formatSignedDecimal(int64(getI16(c.buffer.value, 0)))
	case ColumnTypeLongInt:
		if len(c.buffer.value) < 4 {
			return ""
		}
		return formatSignedDecimal(int64(getI32(c.buffer.value, 0)))
	case ColumnTypeFloat:
		if len(c.buffer.value) < 4 {
			return ""
		}
		return formatFloat32(getU32(c.buffer.value, 0))
	case ColumnTypeDouble:
		if len(c.buffer.value) < 8 {
			return ""
		}
		return formatFloat64(getU64(c.buffer.value, 0))
	case ColumnTypeText:
		return c.decodedTextOrEmpty()
	case ColumnTypeMemo:
		return c.Text()
	case ColumnTypeExtendedDatetime:
		s, err := formatExtendedDatetime(c.buffer.value)
		if err != nil {
			return ""
		}
		return s
	case ColumnTypeDatetime:
		s, err := formatDatetime(c.buffer.value)
		if err != nil {
			return ""
		}
		return s
	case ColumnTypeReplicationID:
		s, err := formatReplicationID(c.buffer.value)
		if err != nil {
			return ""
		}
		return s
	case ColumnTypeNumeric:
		s, err := formatNumeric(c.buffer.value, c.Scale)
		if err != nil {
			return ""
		}
		return s
	case ColumnTypeMoney:
		s, err := formatMoney(c.buffer.value)
		if err != nil {
			return ""
		}
		return s
	case ColumnTypeBool:
		return formatBool(!c.buffer.isNull)
	default:
		return string(c.buffer.value)
	}
}

// decodedText decodes the current row's raw TEXT bytes using the
// owning file's configured encoding. Shared by String (lazy, logging
// path) and the table iterator's eager StrictText check.
func (c *Column) decodedText() (string, error) {
	if c.ownerFile == nil {
		return "", nil
	}
	return c.ownerFile.decodeString(c.buffer.value)
}

func (c *Column) decodedTextOrEmpty() string {
	s, err := c.decodedText()
	if err != nil {
		if c.ownerFile != nil {
			c.ownerFile.warnf("text column %s: %v", c.Name, err)
		}
		return ""
	}
	return s
}

func formatSignedDecimal(v int64) string {
	return fmt.Sprintf("%d", v)
}

func formatFloat32(bits uint32) string {
	return strconv.FormatFloat(float64(math.Float32frombits(bits)), 'g', -1, 32)
}

func formatFloat64(bits uint64) string {
	return strconv.FormatFloat(math.Float64frombits(bits), 'g', -1, 64)
}

func formatBool(present bool) string {
	return strconv.FormatBool(present)
}
