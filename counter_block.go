// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"encoding/binary"

	"github.com/pion/transport/v3/utils/xor"
)

// BlockSize is the size of an AES block and of a counter block.
const BlockSize = 16

// counterBlock is a big-endian 128 bit counter:
//
//	+------+------+------+------+------+------+------+------+
//	|           salt / nonce (112 bits)              |  ctr |
//	+------+------+------+------+------+------+------+------+
//
// ctr counts keystream blocks within one packet and starts at zero.
type counterBlock [BlockSize]byte

func (b *counterBlock) zero() {
	*b = counterBlock{}
}

// loadSalt copies the salt into the salt/nonce region. The block counter
// field is cleared afterwards so key material never lands in it.
func (b *counterBlock) loadSalt(salt []byte) {
	copy(b[:SaltLen], salt)
	b.clearBlockCounter()
}

// xor sets b to x ^ y across all 16 bytes.
func (b *counterBlock) xor(x, y *counterBlock) {
	xor.XorBytes(b[:], x[:], y[:])
}

func (b *counterBlock) clearBlockCounter() {
	b[SaltLen] = 0
	b[SaltLen+1] = 0
}

func (b *counterBlock) blockCounter() uint16 {
	return binary.BigEndian.Uint16(b[SaltLen:])
}
