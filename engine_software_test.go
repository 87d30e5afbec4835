// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"crypto/aes"
	"crypto/cipher"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSoftwareHandle(t *testing.T) Handle {
	t.Helper()

	h, err := SoftwareEngine{}.NewHandle()
	require.NoError(t, err)

	return h
}

func TestSoftwareHandleConfigure(t *testing.T) {
	h := newSoftwareHandle(t)
	key := make([]byte, 16)

	assert.ErrorIs(t, h.Configure(EngineConfig{Algorithm: 9, KeyType: KeyTypeAES128, Mode: ModeCounter, Key: key}), errUnsupportedAlgorithm)
	assert.ErrorIs(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, KeyType: KeyTypeAES128, Mode: 9, Key: key}), errUnsupportedMode)
	assert.ErrorIs(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, KeyType: KeyTypeAES256, Mode: ModeCounter, Key: key}), errKeyTypeMismatch)
	assert.ErrorIs(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, Mode: ModeCounter, Key: key}), errKeyTypeMismatch)

	assert.ErrorIs(t, h.EncryptBuffer(make([]byte, 4), make([]byte, 4)), errHandleNotConfigured)

	require.NoError(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, KeyType: KeyTypeAES128, Mode: ModeCounter, Key: key}))
	assert.ErrorIs(t, h.EncryptBuffer(make([]byte, 3), make([]byte, 4)), errShortOutput)

	require.NoError(t, h.Destroy())
	assert.ErrorIs(t, h.Destroy(), errHandleDestroyed)
	assert.ErrorIs(t, h.EncryptBuffer(make([]byte, 4), make([]byte, 4)), errHandleDestroyed)
	assert.ErrorIs(t, h.Configure(EngineConfig{}), errHandleDestroyed)
}

func TestSoftwareHandleRestartsAtIV(t *testing.T) {
	h := newSoftwareHandle(t)
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	var iv [BlockSize]byte
	iv[3] = 0x42
	require.NoError(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, KeyType: KeyTypeAES256, Mode: ModeCounter, Key: key, IV: iv}))

	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	expected := make([]byte, 100)
	cipher.NewCTR(block, iv[:]).XORKeyStream(expected, expected)

	for i := 0; i < 2; i++ {
		out := make([]byte, 100)
		require.NoError(t, h.EncryptBuffer(out, make([]byte, 100)))
		assert.Equal(t, expected, out)
	}
}

func TestSoftwareHandleBufferOverlap(t *testing.T) {
	h := newSoftwareHandle(t)
	require.NoError(t, h.Configure(EngineConfig{Algorithm: AlgorithmAES, KeyType: KeyTypeAES128, Mode: ModeCounter, Key: make([]byte, 16)}))

	buf := make([]byte, 64)
	assert.ErrorIs(t, h.EncryptBuffer(buf[1:33], buf[:32]), errBufferOverlap)
	assert.ErrorIs(t, h.EncryptBuffer(buf[:32], buf[16:48]), errBufferOverlap)

	// Exact overlap transforms in place.
	expected := make([]byte, 32)
	require.NoError(t, h.EncryptBuffer(expected, make([]byte, 32)))
	inPlace := make([]byte, 32)
	require.NoError(t, h.EncryptBuffer(inPlace, inPlace))
	assert.Equal(t, expected, inPlace)
}
