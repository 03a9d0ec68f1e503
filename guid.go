// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"strings"

	"github.com/google/uuid"
)

// guidByteOrder reorders a 16-byte REPLICATION ID field from the
// format's mixed-endian on-disk layout (the first three groups stored
// little-endian, the last two big-endian) into the canonical
// big-endian GUID byte order that google/uuid expects.
var guidByteOrder = [16]int{3, 2, 1, 0, 5, 4, 7, 6, 8, 9, 10, 11, 12, 13, 14, 15}

// formatReplicationID renders a 16-byte REPLICATION ID field as an
// uppercase, brace-wrapped GUID string: "{XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX}".
func formatReplicationID(buf []byte) (string, error) {
	if len(buf) < 16 {
		return "", ErrInvalidDataLocation
	}
	var reordered [16]byte
	for i, src := range guidByteOrder {
		reordered[i] = buf[src]
	}
	id := uuid.UUID(reordered)
	return "{" + strings.ToUpper(id.String()) + "}", nil
}
