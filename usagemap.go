// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// usageMap is a bitmap of allocated pages, recovered from a table's
// usage-map row. Bit order within each byte is least-significant-bit
// first, matching how the on-disk bitmap is laid out.
type usageMap struct {
	startPage uint32
	pages     []bool
}

// loadUsageMap parses buf (the raw bytes of a usage-map row) into a
// usageMap. excursion is used to chase indirect (type-1) usage-map
// page pointers without disturbing the caller's own page cursor.
func loadUsageMap(excursion *File, buf []byte) (*usageMap, error) {
	if len(buf) == 0 {
		return nil, ErrUsageMapEmpty
	}

	switch buf[0] {
	case 0: // inline: an explicit start page followed by a flat bitmap
		if len(buf) < 5 {
			return nil, ErrUsageMapEmpty
		}
		start := getU32(buf, 1)
		return &usageMap{startPage: start, pages: bitsFromBytesLSB(buf[5:])}, nil

	case 1: // indirect: a sequence of page pointers, each page
		// contributing (page_size - 4) bytes of bitmap data
		bitmapSize := excursion.constants.pageSize - 4
		entries := (len(buf) - 1) / 4
		pages := make([]bool, 0, entries*bitmapSize*8)
		for i := 0; i < entries; i++ {
			page := getU32(buf, 1+i*4)
			if page == 0 {
				pages = append(pages, make([]bool, bitmapSize*8)...)
				continue
			}
			if err := excursion.ReadPage(page); err != nil {
				return nil, err
			}
			pages = append(pages, bitsFromBytesLSB(excursion.pageBuffer[4:4+bitmapSize])...)
		}
		return &usageMap{startPage: 0, pages: pages}, nil

	case 5:
		return nil, ErrUnsupportedPartitionMap

	default:
		return nil, ErrUnknownMapType
	}
}

// bitsFromBytesLSB expands buf into one bool per bit, least-significant
// bit of buf[0] first.
func bitsFromBytesLSB(buf []byte) []bool {
	bits := make([]bool, len(buf)*8)
	for i, b := range buf {
		for bit := 0; bit < 8; bit++ {
			bits[i*8+bit] = b&(1<<uint(bit)) != 0
		}
	}
	return bits
}

// nextAllocatedPageAfter returns the first page at or after
// currentPage+1 that the usage map marks allocated.
func (m *usageMap) nextAllocatedPageAfter(currentPage uint32) (uint32, error) {
	start := int(currentPage) - int(m.startPage) + 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(m.pages); i++ {
		if m.pages[i] {
			return uint32(i) + m.startPage, nil
		}
	}
	return 0, ErrNoFreePages
}
