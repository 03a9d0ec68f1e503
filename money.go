// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"fmt"
)

// formatMoney renders an 8-byte little-endian fixed-point value scaled
// by 10000 as "whole.fraction", where fraction is the absolute
// remainder modulo 10000 printed without zero padding (70000 renders
// as "7.0", 10050 as "1.50").
func formatMoney(buf []byte) (string, error) {
	if len(buf) < 8 {
		return "", ErrInvalidDataLocation
	}
	val := int64(getU64(buf, 0))
	whole := val / 10000
	fraction := val - whole*10000
	if fraction < 0 {
		fraction = -fraction
	}
	return fmt.Sprintf("%d.%d", whole, fraction), nil
}
