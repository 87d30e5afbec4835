// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// flipEngine corrupts the first output byte of every EncryptBuffer call.
type flipEngine struct{}

func (flipEngine) NewHandle() (Handle, error) {
	h, err := SoftwareEngine{}.NewHandle()

	return &flipHandle{h}, err
}

type flipHandle struct {
	Handle
}

func (h *flipHandle) EncryptBuffer(dst, src []byte) error {
	if err := h.Handle.EncryptBuffer(dst, src); err != nil {
		return err
	}
	dst[0] ^= 0x01

	return nil
}

func TestSelfTest(t *testing.T) {
	assert.NoError(t, SelfTest())

	for _, cipherType := range CipherTypes() {
		assert.NoError(t, cipherType.SelfTest(), cipherType.Description)
	}
}

func TestSelfTestDetectsMismatch(t *testing.T) {
	err := AESICM192.SelfTest(WithEngine(flipEngine{}))
	assert.ErrorIs(t, err, ErrSelfTestFailed)

	var stErr *selfTestError
	if assert.True(t, errors.As(err, &stErr)) {
		assert.Equal(t, KeyVariantAES192, stErr.Variant)
		assert.Equal(t, "encrypt", stErr.Stage)
		assert.Equal(t, AESICM192.TestCase.Ciphertext[0]^0x01, stErr.Got[0])
	}
	assert.Contains(t, err.Error(), "AES-192 encrypt mismatch")
}

func TestSelfTestPropagatesEngineFailure(t *testing.T) {
	err := SelfTest(WithEngine(&faultEngine{failEncrypt: true}))
	assert.ErrorIs(t, err, ErrCipherFailure)
	assert.False(t, errors.Is(err, ErrSelfTestFailed))

	err = AESICM256.SelfTest(WithEngine(&faultEngine{failCreate: true}))
	assert.ErrorIs(t, err, ErrAllocationFailed)
}
