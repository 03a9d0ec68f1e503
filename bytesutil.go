// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// Little-endian integer extraction helpers, used everywhere the reader
// pulls a multi-byte value out of a page buffer or a standalone byte
// slice. All on-disk integers in this format are little-endian.

func getU16(buf []byte, offset int) uint16 {
	return uint16(buf[offset]) | uint16(buf[offset+1])<<8
}

func getU32(buf []byte, offset int) uint32 {
	return uint32(buf[offset]) |
		uint32(buf[offset+1])<<8 |
		uint32(buf[offset+2])<<16 |
		uint32(buf[offset+3])<<24
}

func getU64(buf []byte, offset int) uint64 {
	return uint64(buf[offset]) |
		uint64(buf[offset+1])<<8 |
		uint64(buf[offset+2])<<16 |
		uint64(buf[offset+3])<<24 |
		uint64(buf[offset+4])<<32 |
		uint64(buf[offset+5])<<40 |
		uint64(buf[offset+6])<<48 |
		uint64(buf[offset+7])<<56
}

func getI16(buf []byte, offset int) int16 {
	return int16(getU16(buf, offset))
}

func getI32(buf []byte, offset int) int32 {
	return int32(getU32(buf, offset))
}

// packedPageRow unpacks a 32-bit "page-row" pointer as stored in
// table-definition records, usage-map pointers, and memo overflow
// headers: the page number occupies the top 24 bits, the row slot the
// bottom 8.
func packedPageRow(packed uint32) (page uint32, row uint8) {
	return packed >> 8, uint8(packed & 0xFF)
}
