// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

//go:build gofuzz

package jetdb

// Fuzz is a github.com/dvyukov/go-fuzz entry point: it opens data as
// an in-memory database, walks every catalog table, and scans each
// one's rows, returning 1 for any input the reader accepts far enough
// to produce at least one table. Anything that reaches a panic here
// is a bug in the reader, not in the fuzz corpus.
func Fuzz(data []byte) int {
	f, err := OpenBytes(data, nil)
	if err != nil {
		return 0
	}
	defer f.Close()

	entries, err := f.Tables()
	if err != nil {
		return 0
	}

	interesting := 0
	for _, entry := range entries {
		table, err := FromCatalogEntry(entry, f)
		if err != nil {
			continue
		}
		if err := table.ReadColumns(); err != nil {
			continue
		}
		interesting = 1

		for i := 0; i < 10000; i++ {
			if err := table.Next(); err != nil {
				break
			}
		}
	}

	return interesting
}
