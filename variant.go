// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// Variant identifies the on-disk format generation, read from the raw
// byte at header offset 0x14.
type Variant uint8

const (
	VariantJET3       Variant = 0x00
	VariantJET4       Variant = 0x01
	VariantAccdb2007  Variant = 0x02 // ACE12
	VariantAccdb2010  Variant = 0x03 // ACE14
	VariantAccdb2013  Variant = 0x04 // ACE15
	VariantAccdb2016  Variant = 0x05 // ACE16
	VariantAccdb2019  Variant = 0x06 // ACE17
)

// String renders the variant the way the collaborating CLI tools
// (out of scope here) would print it: JET3, JET4, or ACE12/14/15/16/17
// for the successor family, per spec.md's explicit naming.
func (v Variant) String() string {
	switch v {
	case VariantJET3:
		return "JET3"
	case VariantJET4:
		return "JET4"
	case VariantAccdb2007:
		return "ACE12"
	case VariantAccdb2010:
		return "ACE14"
	case VariantAccdb2013:
		return "ACE15"
	case VariantAccdb2016:
		return "ACE16"
	case VariantAccdb2019:
		return "ACE17"
	default:
		return "unknown"
	}
}

// parseVariant maps the raw header byte to a Variant, rejecting
// anything the format doesn't define.
func parseVariant(raw byte) (Variant, error) {
	switch Variant(raw) {
	case VariantJET3, VariantJET4, VariantAccdb2007, VariantAccdb2010,
		VariantAccdb2013, VariantAccdb2016, VariantAccdb2019:
		return Variant(raw), nil
	default:
		return 0, ErrUnknownVariant
	}
}

// formatConstants holds the byte-offset layout that depends only on
// whether a database is JET3 or one of the newer variants. Field names
// follow spec.md §6 verbatim.
type formatConstants struct {
	pageSize                     int
	usageRowCountOffset          int
	rowCountOffset               int
	tableColumnCountOffset       int
	realIndexCountOffset         int
	tabUsageMapOffset            int
	tableFirstDataPageOffset     int
	tabColsStartOffset           int
	tabRidxEntrySize             int
	columnScaleOffset            int
	columnPrecisionOffset        int
	colFlagsOffset               int
	columnSizeOffset             int
	columnNumberOffset           int
	tabColEntrySize              int
	tabColOffsetVar              int
	tableColumnOffsetFixed       int
	tableRowColumnNumberOffset   int
}

var jet3Constants = formatConstants{
	pageSize:                   2048,
	usageRowCountOffset:        0x08,
	rowCountOffset:             12,
	tableColumnCountOffset:     25,
	realIndexCountOffset:       31,
	tabUsageMapOffset:          35,
	tableFirstDataPageOffset:   36,
	tabColsStartOffset:         43,
	tabRidxEntrySize:           8,
	columnScaleOffset:          9,
	columnPrecisionOffset:      10,
	colFlagsOffset:             13,
	columnSizeOffset:           16,
	columnNumberOffset:         1,
	tabColEntrySize:            18,
	tabColOffsetVar:            3,
	tableColumnOffsetFixed:     14,
	tableRowColumnNumberOffset: 5,
}

var jet4Constants = formatConstants{
	pageSize:                   4096,
	usageRowCountOffset:        0x0C,
	rowCountOffset:             16,
	tableColumnCountOffset:     45,
	realIndexCountOffset:       51,
	tabUsageMapOffset:          55,
	tableFirstDataPageOffset:   56,
	tabColsStartOffset:         63,
	tabRidxEntrySize:           12,
	columnScaleOffset:          11,
	columnPrecisionOffset:      12,
	colFlagsOffset:             15,
	columnSizeOffset:           23,
	columnNumberOffset:         5,
	tabColEntrySize:            25,
	tabColOffsetVar:            7,
	tableColumnOffsetFixed:     21,
	tableRowColumnNumberOffset: 9,
}

// formatConstantsFor returns the layout table for a variant: JET3 gets
// its own (smaller, 2 KiB-paged) layout, every newer variant shares the
// 4 KiB-paged JET4 layout.
func formatConstantsFor(v Variant) *formatConstants {
	if v == VariantJET3 {
		return &jet3Constants
	}
	return &jet4Constants
}

// headerObfuscationEnd returns the exclusive end of the byte range
// [0x18, end) that the fixed-seed cipher unmasks in the page-0 header.
func headerObfuscationEnd(v Variant) int {
	if v == VariantJET3 {
		return 126
	}
	return 128
}
