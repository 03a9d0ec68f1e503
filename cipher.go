// Copyright 2024 The jetdb Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can
// be found in the LICENSE file.

package jetdb

// A byte-permutation stream cipher (the well-known "RC4" construction)
// used to obfuscate the page-0 header region and, for password
// protected databases, every other page. Encryption and decryption are
// the same operation: XOR the plaintext against a keystream derived
// from a byte-permutation table seeded by the key.
type streamCipher struct {
	state [256]byte
	x, y  byte
}

// setupKey seeds the permutation table from key. key may be any
// non-empty length; the stream cipher cycles through it modulo its
// length while mixing it into the table.
func (c *streamCipher) setupKey(key []byte) {
	for i := 0; i < 256; i++ {
		c.state[i] = byte(i)
	}

	c.x, c.y = 0, 0
	var index1, index2 int
	for counter := 0; counter < 256; counter++ {
		index2 = (int(key[index1]) + int(c.state[counter]) + index2) % 256
		c.state[counter], c.state[index2] = c.state[index2], c.state[counter]
		index1 = (index1 + 1) % len(key)
	}
}

// crypt XORs buf in place using one keystream byte per input byte.
func (c *streamCipher) crypt(buf []byte) {
	for i := range buf {
		c.x++
		c.y = c.state[c.x] + c.y
		c.state[c.x], c.state[c.y] = c.state[c.y], c.state[c.x]
		xorIndex := c.state[c.x] + c.state[c.y]
		buf[i] ^= c.state[xorIndex]
	}
}

// cryptWithKey seeds a fresh cipher from key and crypts buf in place.
// Used both for the fixed header seed and for the per-page
// db-key-xor-page-index seed; a fresh cipher per call matches the
// source's "create key and encrypt" entry point, which never reuses
// keystream state across buffers.
func cryptWithKey(key []byte, buf []byte) {
	var c streamCipher
	c.setupKey(key)
	c.crypt(buf)
}
