// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import (
	"fmt"
	"math"
	"time"
)

var nonLeapCalendar = [13]int32{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}
var leapCalendar = [13]int32{0, 31, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335, 366}

// calendarDateTime is the broken-down form of the DATETIME type's raw
// float64, expressed as days-and-fraction since 1899-12-30.
type calendarDateTime struct {
	second, minute, hour int32
	monthDay, month      int32
	year                 int32
}

// dateTimeFromF64 converts a serial date (whole days since 1899-12-30,
// fractional part a portion of a day) into its calendar fields using
// the same 400/100/4/1-year decomposition as the classic C library
// gmtime, rather than calling into a generic calendar library. Values
// outside [0, 1e6] (1e6 days is roughly the year 4637) are rejected by returning the
// zero value, matching the format's practical range.
func dateTimeFromF64(raw float64) calendarDateTime {
	var dt calendarDateTime
	if raw < 0.0 || raw > 1e6 {
		return dt
	}

	year := int32(1)
	day := int32(raw)
	timeOfDay := int32((raw-math.Trunc(raw))*86400.0 + 0.5)
	dt.hour = timeOfDay / 3600
	dt.minute = (timeOfDay / 60) % 60
	dt.second = timeOfDay % 60

	day += 693593 // days from 1/1/1 to 12/30/1899

	q := day / 146097 // 146097 days in 400 years
	year += 400 * q
	day -= q * 146097

	q = day / 36524 // 36524 days in 100 years
	if q > 3 {
		q = 3
	}
	year += 100 * q
	day -= q * 36524

	q = day / 1461 // 1461 days in 4 years
	year += 4 * q
	day -= q * 1461

	q = day / 365 // 365 days in 1 year
	if q > 3 {
		q = 3
	}
	year += q
	day -= q * 365

	cal := nonLeapCalendar
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		cal = leapCalendar
	}
	dt.month = 0
	for dt.month < 12 {
		if day < cal[dt.month+1] {
			break
		}
		dt.month++
	}
	dt.year = year - 1900
	dt.monthDay = day - cal[dt.month] + 1

	return dt
}

// formatDatetime renders an 8-byte little-endian float64 DATETIME
// field as "MM/DD/YYYY HH:MM:SS".
func formatDatetime(buf []byte) (string, error) {
	if len(buf) < 8 {
		return "", ErrInvalidDataLocation
	}
	raw := math.Float64frombits(getU64(buf, 0))
	dt := dateTimeFromF64(raw)
	return fmt.Sprintf("%02d/%02d/%d %02d:%02d:%02d",
		dt.month+1, dt.monthDay, 1900+dt.year, dt.hour, dt.minute, dt.second), nil
}

// asciiDigitsToInt64 reads a run of ASCII digit bytes ('0'-'9') as a
// big-endian base-10 integer.
func asciiDigitsToInt64(b []byte) int64 {
	var v int64
	for _, c := range b {
		v = v*10 + int64(c-'0')
	}
	return v
}

// formatExtendedDatetime renders the ACE17 EXTENDED DATETIME encoding:
// ASCII-digit day/second/100-nanosecond counts since 0001-01-01T00:00:00Z
// at fixed byte offsets, rendered as RFC 3339.
func formatExtendedDatetime(buf []byte) (string, error) {
	if len(buf) < 39 {
		return "", ErrInvalidDataLocation
	}
	days := asciiDigitsToInt64(buf[12:19])
	seconds := asciiDigitsToInt64(buf[27:32])
	nanoseconds := asciiDigitsToInt64(buf[32:39]) * 100

	base := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	t := base.AddDate(0, 0, int(days)).Add(
		time.Duration(seconds)*time.Second + time.Duration(nanoseconds)*time.Nanosecond)
	return t.Format(time.RFC3339Nano), nil
}
