// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidKeyVariant(t *testing.T) {
	var invalidKeyVariant KeyVariant

	_, err := invalidKeyVariant.keyLen()
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = invalidKeyVariant.KeyLenWithSalt()
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = invalidKeyVariant.keyType()
	assert.ErrorIs(t, err, ErrInvalidState)

	assert.Equal(t, "KeyVariant(0)", invalidKeyVariant.String())
}

func TestKeyVariantLengths(t *testing.T) {
	for _, tc := range []struct {
		variant        KeyVariant
		keyLen         int
		keyLenWithSalt int
		keyType        KeyType
	}{
		{KeyVariantAES128, 16, 30, KeyTypeAES128},
		{KeyVariantAES192, 24, 38, KeyTypeAES192},
		{KeyVariantAES256, 32, 46, KeyTypeAES256},
	} {
		t.Run(tc.variant.String(), func(t *testing.T) {
			keyLen, err := tc.variant.keyLen()
			assert.NoError(t, err)
			assert.Equal(t, tc.keyLen, keyLen)

			keyLenWithSalt, err := tc.variant.KeyLenWithSalt()
			assert.NoError(t, err)
			assert.Equal(t, tc.keyLenWithSalt, keyLenWithSalt)

			keyType, err := tc.variant.keyType()
			assert.NoError(t, err)
			assert.Equal(t, tc.keyType, keyType)
			assert.Equal(t, tc.keyLen, keyType.keyLen())

			v, err := variantForKeyLenWithSalt(tc.keyLenWithSalt)
			assert.NoError(t, err)
			assert.Equal(t, tc.variant, v)

			v, err = variantForKeyLen(tc.keyLen)
			assert.NoError(t, err)
			assert.Equal(t, tc.variant, v)
		})
	}
}

func TestVariantForKeyLenWithSaltRejectsOtherLengths(t *testing.T) {
	for n := -1; n <= 64; n++ {
		if n == 30 || n == 38 || n == 46 {
			continue
		}
		_, err := variantForKeyLenWithSalt(n)
		assert.ErrorIs(t, err, ErrInvalidParameter, "length %d", n)
	}

	_, err := variantForKeyLen(14)
	assert.ErrorIs(t, err, ErrInvalidState)
}
