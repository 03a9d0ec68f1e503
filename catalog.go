// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// systemTableFlags marks a catalog entry as a system table, whether
// because it's one of the MSys* bootstrap tables or because the
// database author set the hidden-system bit on their own table.
const systemTableFlags = 0x80000002

// TableCatalogEntry is one row of the MSysObjects catalog describing a
// table: its display name, the page its table-definition record starts
// on, and the raw object flags. RawType is the catalog's own Type
// column value; ReadCatalog returns only table rows, so it is always
// 1 (catalogObjectTypeTable) here. Forms, macros, queries, reports,
// modules and other object kinds are skipped and never returned.
type TableCatalogEntry struct {
	Name    string
	Page    uint32
	Flags   uint32
	RawType uint16
}

// IsSystemTable reports whether the entry is a built-in MSys* table or
// has been flagged hidden/system by the database author.
func (e *TableCatalogEntry) IsSystemTable() bool {
	return e.Flags&systemTableFlags != 0
}

// catalogObjectTypeTable is the MSysObjects.Type value identifying a
// table entry; every other value names a form, macro, query, report,
// module, linked table, or relationship, none of which this reader
// interprets.
const catalogObjectTypeTable = 1

// ReadCatalog loads MSysObjects (the format's bootstrap catalog, fixed
// at page 2) and returns every table it lists. mdb must not have any
// table cursor open; ReadCatalog parses MSysObjects using the same
// Table/Column machinery as any user table.
func ReadCatalog(mdb *File) ([]*TableCatalogEntry, error) {
	if err := mdb.ReadPage(2); err != nil {
		return nil, err
	}

	sysObjects, err := FromCatalogEntry(&TableCatalogEntry{Name: "MSysObjects", Page: 2}, mdb)
	if err != nil {
		return nil, err
	}
	if err := sysObjects.ReadColumns(); err != nil {
		return nil, err
	}

	idIndex := sysObjects.FindColumnIndex("Id")
	nameIndex := sysObjects.FindColumnIndex("Name")
	typeIndex := sysObjects.FindColumnIndex("Type")
	flagsIndex := sysObjects.FindColumnIndex("Flags")
	if idIndex < 0 || nameIndex < 0 || typeIndex < 0 || flagsIndex < 0 {
		return nil, ErrCatalogColumnNotFound
	}

	var entries []*TableCatalogEntry
	for {
		if err := sysObjects.Next(); err != nil {
			break
		}

		idCol := &sysObjects.Columns[idIndex]
		nameCol := &sysObjects.Columns[nameIndex]
		typeCol := &sysObjects.Columns[typeIndex]
		flagsCol := &sysObjects.Columns[flagsIndex]

		entryType := getU16(typeCol.Raw(), 0)
		if entryType != catalogObjectTypeTable {
			continue
		}

		name, err := mdb.decodeString(nameCol.Raw())
		if err != nil {
			continue
		}
		id := getU32(idCol.Raw(), 0)
		flags := getU32(flagsCol.Raw(), 0)

		entries = append(entries, &TableCatalogEntry{
			Name:    name,
			Page:    id & 0x00FFFFFF,
			Flags:   flags,
			RawType: entryType,
		})
	}

	return entries, nil
}

// Tables returns every table the database's catalog lists, system
// tables included.
func (f *File) Tables() ([]*TableCatalogEntry, error) {
	return ReadCatalog(f)
}

// OpenTable loads and parses the named table's columns, ready for
// Table.Next. It re-reads the catalog on every call; callers scanning
// many tables from one file should cache Tables() themselves.
func (f *File) OpenTable(name string) (*Table, error) {
	entries, err := ReadCatalog(f)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Name != name {
			continue
		}
		table, err := FromCatalogEntry(entry, f)
		if err != nil {
			return nil, err
		}
		if err := table.ReadColumns(); err != nil {
			return nil, err
		}
		return table, nil
	}

	return nil, ErrTableNotFound
}
