// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterBlockLoadSalt(t *testing.T) {
	var b counterBlock
	for i := range b {
		b[i] = 0xff
	}

	b.zero()
	assert.Equal(t, counterBlock{}, b)

	salt := make([]byte, SaltLen+2)
	for i := range salt {
		salt[i] = byte(i + 1)
	}
	b.loadSalt(salt)

	assert.Equal(t, salt[:SaltLen], b[:SaltLen])
	assert.Equal(t, uint16(0), b.blockCounter())
}

func TestCounterBlockXOR(t *testing.T) {
	x := counterBlock{0x0f, 0xf0, 0xaa}
	y := counterBlock{0xff, 0xff, 0x55}
	x[15], y[15] = 0x01, 0x03

	var b counterBlock
	b.xor(&x, &y)

	assert.Equal(t, counterBlock{0xf0, 0x0f, 0xff, 15: 0x02}, b)
	assert.Equal(t, uint16(2), b.blockCounter())

	b.clearBlockCounter()
	assert.Equal(t, uint16(0), b.blockCounter())
	assert.Equal(t, byte(0xff), b[2])
}
