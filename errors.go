// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "errors"

// Errors returned by the reader. Every one is fatal only to the
// operation in progress; callers may keep using the File or Table
// afterwards unless the doc comment says otherwise.
var (
	// ErrCannotOpen is returned when the underlying file can't be opened
	// or memory-mapped.
	ErrCannotOpen = errors.New("jetdb: cannot open database file")

	// ErrReadPastEOF is returned when a page index is beyond the end of
	// the file.
	ErrReadPastEOF = errors.New("jetdb: read past end of file")

	// ErrUnknownVariant is returned when the byte at header offset 0x14
	// does not match a known JET/ACE format variant.
	ErrUnknownVariant = errors.New("jetdb: unknown database format variant")

	// ErrNotADatabase is returned when the decrypted header's page-type
	// byte is not 0 (header).
	ErrNotADatabase = errors.New("jetdb: not a JET/ACE database, or file is corrupt")

	// ErrPageBufferOverflow is returned when a spanning read would
	// write past the caller-supplied buffer.
	ErrPageBufferOverflow = errors.New("jetdb: spanning read overflowed destination buffer")

	// ErrInvalidRowBounds is returned when a row slot's start/length
	// fall outside the page.
	ErrInvalidRowBounds = errors.New("jetdb: invalid row bounds")

	// ErrRowOutOfRange is returned when a requested row-slot index is
	// larger than any table is expected to carry on one page.
	ErrRowOutOfRange = errors.New("jetdb: row slot index out of range")

	// ErrDeletedRow is returned by the row locator for a row whose
	// deletion flag is set. Iteration treats this as "skip", not as a
	// reportable error.
	ErrDeletedRow = errors.New("jetdb: row is deleted")

	// ErrInvalidRow is returned when a located row has zero length.
	ErrInvalidRow = errors.New("jetdb: invalid (zero-length) row")

	// ErrInvalidDataLocation is returned when a cracked column's byte
	// range escapes the row's bounds.
	ErrInvalidDataLocation = errors.New("jetdb: column data location outside row bounds")

	// ErrInvalidRowBuffer is returned when the row header (column
	// count / null bitmap / variable-offset table) doesn't fit the row.
	ErrInvalidRowBuffer = errors.New("jetdb: invalid row buffer layout")

	// ErrUnknownMapType is returned for a usage-map encoding byte other
	// than 0 (inline) or 1 (indirect).
	ErrUnknownMapType = errors.New("jetdb: unknown usage map type")

	// ErrUnsupportedPartitionMap is returned for usage-map type 5.
	ErrUnsupportedPartitionMap = errors.New("jetdb: partition usage maps are not supported")

	// ErrUsageMapEmpty is returned when the usage map's source bytes
	// are empty.
	ErrUsageMapEmpty = errors.New("jetdb: usage map buffer is empty")

	// ErrNoFreePages is returned by the usage map when no further
	// allocated page exists after the requested page.
	ErrNoFreePages = errors.New("jetdb: no further allocated pages")

	// ErrNextDataPageCycle is returned when the usage map's "next
	// allocated page" resolves back to the current page.
	ErrNextDataPageCycle = errors.New("jetdb: cycle detected in table's free-page map")

	// ErrInvalidTableDefinition is returned when a table-definition
	// page doesn't start with the expected type tag (2).
	ErrInvalidTableDefinition = errors.New("jetdb: invalid table definition page")

	// ErrCatalogColumnNotFound is returned when MSysObjects is missing
	// one of the required bootstrap columns (Id, Name, Type, Flags).
	ErrCatalogColumnNotFound = errors.New("jetdb: required system catalog column not found")

	// ErrTableNotFound is returned when a table name isn't present in
	// the catalog.
	ErrTableNotFound = errors.New("jetdb: table not found")

	// ErrStringDecode is returned when the configured text encoding
	// rejects a byte sequence as malformed.
	ErrStringDecode = errors.New("jetdb: string decode error")

	// ErrUnhandledColumnType is returned for a column-type byte outside
	// the known set.
	ErrUnhandledColumnType = errors.New("jetdb: unhandled column type")

	// ErrNoMoreRows is returned by the table iterator once every
	// allocated data page has been exhausted.
	ErrNoMoreRows = errors.New("jetdb: no more rows")
)
