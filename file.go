// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"fmt"
	"os"

	mmap "github.com/edsrzf/mmap-go"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	jetlog "github.com/jetformat/jetdb/log"
)

// headerCipherSeed is the fixed 4-byte key that unmasks the page-0
// header region, per spec.md §3.
var headerCipherSeed = []byte{0xC7, 0xDA, 0x39, 0x6B}

// headerBootstrapSize is large enough to hold a page-0 header under
// either variant's page size; it's only used before the real variant
// (and therefore the real page size) is known.
const headerBootstrapSize = 4096

// defaultMaxRowScan bounds how many row-slot indices the locator will
// probe for, matching spec.md §7's "row slot out of range (> 1000)".
const defaultMaxRowScan = 1000

// Options configures Open/OpenBytes.
type Options struct {
	// Logger receives warnings and debug traces emitted while reading.
	// A filtered stderr logger at Warn level is used when nil.
	Logger jetlog.Logger

	// MaxRowScan caps the row-slot index the row locator will accept;
	// defaults to 1000.
	MaxRowScan int

	// StrictText makes a text-decode failure (§4.8) abort the row
	// instead of being logged and leaving the field empty.
	StrictText bool
}

// File is an open JET/ACE database. It owns the memory-mapped file
// contents, the current decrypted page buffer, and the format/encoding
// chosen for this file. Zero value is not usable; construct with Open
// or OpenBytes.
type File struct {
	f     *os.File
	data  mmap.MMap
	owner bool

	pageBuffer  []byte
	currentPage int64 // -1 once constructed if nothing has been loaded

	variant   Variant
	constants *formatConstants
	codepage  uint16
	dbKey     uint32
	encoding  encoding.Encoding

	opts   Options
	logger *jetlog.Helper

	warnings *int64
}

// Open memory-maps path read-only and parses its page-0 header.
func Open(path string, opts *Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrCannotOpen, err)
	}
	file, err := newFile(f, data, true, opts)
	if err != nil {
		data.Unmap()
		f.Close()
		return nil, err
	}
	return file, nil
}

// OpenBytes parses an already in-memory copy of a database file, e.g.
// for tests or for embedding the legacy go-fuzz harness (fuzz.go).
func OpenBytes(data []byte, opts *Options) (*File, error) {
	return newFile(nil, mmap.MMap(data), false, opts)
}

func newFile(f *os.File, data mmap.MMap, owner bool, opts *Options) (*File, error) {
	o := Options{}
	if opts != nil {
		o = *opts
	}
	if o.MaxRowScan == 0 {
		o.MaxRowScan = defaultMaxRowScan
	}

	var logger *jetlog.Helper
	if o.Logger == nil {
		logger = jetlog.NewHelper(jetlog.NewFilter(
			jetlog.NewStdLogger(os.Stderr), jetlog.FilterLevel(jetlog.LevelWarn)))
	} else {
		logger = jetlog.NewHelper(o.Logger)
	}

	file := &File{
		f:           f,
		data:        data,
		owner:       owner,
		currentPage: -1,
		opts:        o,
		logger:      logger,
		warnings:    new(int64),
	}

	if len(data) == 0 || data[0] != 0 {
		return nil, ErrNotADatabase
	}
	variant, err := parseVariant(data[0x14])
	if err != nil {
		return nil, err
	}
	constants := formatConstantsFor(variant)

	header := make([]byte, headerBootstrapSize)
	copy(header, data[:min(len(data), headerBootstrapSize)])
	cryptWithKey(headerCipherSeed, header[0x18:headerObfuscationEnd(variant)])

	file.variant = variant
	file.constants = constants
	file.dbKey = getU32(header, 0x3e)
	file.codepage = getU16(header, 0x3c)
	if variant == VariantJET3 {
		file.encoding = charmap.Windows1252
	} else {
		file.encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	}

	// Page 0 is now fully decrypted in header; cache it as the current
	// page instead of re-reading (and re-masking) it from the mmap.
	file.pageBuffer = header[:constants.pageSize]
	file.currentPage = 0

	return file, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Close releases the primary handle's resources. Excursion clones
// (see clone) are no-ops on Close; only the handle returned by Open or
// OpenBytes owns the mapping.
func (f *File) Close() error {
	if !f.owner {
		return nil
	}
	var firstErr error
	if f.data != nil {
		if err := f.data.Unmap(); err != nil {
			firstErr = err
		}
	}
	if f.f != nil {
		if err := f.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Variant reports the database's format generation.
func (f *File) Variant() Variant { return f.variant }

// Codepage reports the raw codepage field read from the header.
func (f *File) Codepage() uint16 { return f.codepage }

// Protected reports whether the database carries a non-zero database
// key, i.e. every page beyond the header is page-crypted.
func (f *File) Protected() bool { return f.dbKey != 0 }

// PageSize reports the variant's fixed page size in bytes.
func (f *File) PageSize() int { return f.constants.pageSize }

// Warnings reports the number of recoverable problems (truncated
// memos, decode anomalies) logged since the file was opened. Mirrors
// the teacher's pe.File.Anomalies, adapted to a counter because
// warnings are produced on a hot per-row path rather than once per
// parse. See SPEC_FULL.md §5.
func (f *File) Warnings() int { return int(*f.warnings) }

// maxRowScan returns the configured row-slot index ceiling, falling
// back to defaultMaxRowScan for a File built without going through
// Open/OpenBytes (e.g. a File literal in a test).
func (f *File) maxRowScan() int {
	if f.opts.MaxRowScan > 0 {
		return f.opts.MaxRowScan
	}
	return defaultMaxRowScan
}

func (f *File) warnf(format string, args ...any) {
	*f.warnings++
	f.logger.Warnf(format, args...)
}

// clone returns an excursion handle: an independent page cursor over
// the same underlying mapping, used to walk a memo chain or read a
// usage map's bytes off their own page without disturbing the caller's
// primary cursor. Mirrors Mdb::clone in the original source, whose
// Clone impl duplicates the file descriptor and the page buffer; mmap
// makes duplicating the descriptor unnecessary; the page buffer and
// cursor still need independent copies.
func (f *File) clone() *File {
	c := *f
	c.pageBuffer = append([]byte(nil), f.pageBuffer...)
	c.owner = false
	return &c
}

// ReadPage loads page into the current page buffer, decrypting it in
// place when the database is password-protected and page is not the
// header. Repeated requests for the already-loaded page are no-ops.
func (f *File) ReadPage(page uint32) error {
	if int64(page) == f.currentPage {
		return nil
	}
	return f.loadPage(page)
}

func (f *File) loadPage(page uint32) error {
	pageSize := f.constants.pageSize
	offset := int64(page) * int64(pageSize)
	if offset >= int64(len(f.data)) {
		return fmt.Errorf("%w: page %d", ErrReadPastEOF, page)
	}

	buf := make([]byte, pageSize)
	end := offset + int64(pageSize)
	if end > int64(len(f.data)) {
		end = int64(len(f.data))
	}
	copy(buf, f.data[offset:end])

	if page != 0 && f.dbKey != 0 {
		keyInt := f.dbKey ^ page
		key := []byte{byte(keyInt), byte(keyInt >> 8), byte(keyInt >> 16), byte(keyInt >> 24)}
		cryptWithKey(key, buf)
	}

	f.pageBuffer = buf
	f.currentPage = int64(page)
	return nil
}

func (f *File) getU8(offset int) byte    { return f.pageBuffer[offset] }
func (f *File) getU16(offset int) uint16 { return getU16(f.pageBuffer, offset) }
func (f *File) getU32(offset int) uint32 { return getU32(f.pageBuffer, offset) }

// readSpanning reads length bytes starting at *cursor within the
// current page into out, following the "next page" pointer at page
// offset 4 whenever the read crosses a page boundary; after a boundary
// the cursor resets to 8 (skipping the per-page header). If out is
// nil, pages are still advanced and the cursor still updated, but
// nothing is copied — used to skip over data without materialising it.
func (f *File) readSpanning(cursor *uint16, out []byte, length int) error {
	pageSize := f.constants.pageSize

	for int(*cursor) >= pageSize {
		next := f.getU32(4)
		if err := f.ReadPage(next); err != nil {
			return err
		}
		*cursor -= uint16(pageSize) - 8
	}

	outOffset := 0
	remaining := length
	for int(*cursor)+remaining >= pageSize {
		pieceLen := pageSize - int(*cursor)
		if out != nil {
			if outOffset+pieceLen > length {
				return ErrPageBufferOverflow
			}
			copy(out[outOffset:], f.pageBuffer[int(*cursor):int(*cursor)+pieceLen])
			outOffset += pieceLen
		}
		remaining -= pieceLen
		next := f.getU32(4)
		if err := f.ReadPage(next); err != nil {
			return err
		}
		*cursor = 8
	}

	if remaining > 0 {
		if out != nil {
			if outOffset+remaining > length {
				return ErrPageBufferOverflow
			}
			copy(out[outOffset:outOffset+remaining], f.pageBuffer[int(*cursor):int(*cursor)+remaining])
		}
	}
	*cursor += uint16(remaining)
	return nil
}

func (f *File) readSpanningU8(cursor *uint16) (byte, error) {
	var b [1]byte
	if err := f.readSpanning(cursor, b[:], 1); err != nil {
		return 0, err
	}
	return b[0], nil
}

func (f *File) readSpanningU16(cursor *uint16) (uint16, error) {
	var b [2]byte
	if err := f.readSpanning(cursor, b[:], 2); err != nil {
		return 0, err
	}
	return getU16(b[:], 0), nil
}
