// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

import "testing"

func TestParseVariant(t *testing.T) {
	tests := []struct {
		raw     byte
		want    Variant
		wantErr bool
	}{
		{0x00, VariantJET3, false},
		{0x01, VariantJET4, false},
		{0x02, VariantAccdb2007, false},
		{0x03, VariantAccdb2010, false},
		{0x04, VariantAccdb2013, false},
		{0x05, VariantAccdb2016, false},
		{0x06, VariantAccdb2019, false},
		{0x07, 0, true},
		{0xFF, 0, true},
	}

	for _, tt := range tests {
		got, err := parseVariant(tt.raw)
		if tt.wantErr {
			if err != ErrUnknownVariant {
				t.Errorf("parseVariant(0x%02x) err = %v, want ErrUnknownVariant", tt.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseVariant(0x%02x) unexpected error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("parseVariant(0x%02x) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestVariantString(t *testing.T) {
	tests := []struct {
		v    Variant
		want string
	}{
		{VariantJET3, "JET3"},
		{VariantJET4, "JET4"},
		{VariantAccdb2007, "ACE12"},
		{VariantAccdb2010, "ACE14"},
		{VariantAccdb2013, "ACE15"},
		{VariantAccdb2016, "ACE16"},
		{VariantAccdb2019, "ACE17"},
		{Variant(0x7F), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Variant(%d).String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFormatConstantsFor(t *testing.T) {
	if c := formatConstantsFor(VariantJET3); c.pageSize != 2048 {
		t.Errorf("JET3 page size = %d, want 2048", c.pageSize)
	}
	for _, v := range []Variant{VariantJET4, VariantAccdb2007, VariantAccdb2019} {
		if c := formatConstantsFor(v); c.pageSize != 4096 {
			t.Errorf("%v page size = %d, want 4096", v, c.pageSize)
		}
	}
}

func TestHeaderObfuscationEnd(t *testing.T) {
	if got := headerObfuscationEnd(VariantJET3); got != 126 {
		t.Errorf("JET3 obfuscation end = %d, want 126", got)
	}
	if got := headerObfuscationEnd(VariantJET4); got != 128 {
		t.Errorf("JET4 obfuscation end = %d, want 128", got)
	}
}
