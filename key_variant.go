// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import "fmt"

// SaltLen is the length of the 112 bit salt that trails every key.
const SaltLen = 14

// KeyVariant selects the AES key length, similar to a TLS cipher suite.
type KeyVariant uint8

// Supported key variants.
const (
	KeyVariantAES128 KeyVariant = iota + 1
	KeyVariantAES192
	KeyVariantAES256
)

// KeyType identifies the key length to an Engine.
type KeyType uint8

// Engine key types.
const (
	KeyTypeAES128 KeyType = iota + 1
	KeyTypeAES192
	KeyTypeAES256
)

func (v KeyVariant) keyLen() (int, error) {
	switch v {
	case KeyVariantAES128:
		return 16, nil
	case KeyVariantAES192:
		return 24, nil
	case KeyVariantAES256:
		return 32, nil
	default:
		return 0, fmt.Errorf("%w: %#v", errNoSuchKeyVariant, v)
	}
}

// KeyLenWithSalt returns the length of the key material Init expects,
// the raw AES key followed by the salt.
func (v KeyVariant) KeyLenWithSalt() (int, error) {
	keyLen, err := v.keyLen()
	if err != nil {
		return 0, err
	}

	return keyLen + SaltLen, nil
}

func (v KeyVariant) keyType() (KeyType, error) {
	switch v {
	case KeyVariantAES128:
		return KeyTypeAES128, nil
	case KeyVariantAES192:
		return KeyTypeAES192, nil
	case KeyVariantAES256:
		return KeyTypeAES256, nil
	default:
		return 0, fmt.Errorf("%w: %#v", errNoSuchKeyVariant, v)
	}
}

func (v KeyVariant) String() string {
	switch v {
	case KeyVariantAES128:
		return "AES-128"
	case KeyVariantAES192:
		return "AES-192"
	case KeyVariantAES256:
		return "AES-256"
	default:
		return fmt.Sprintf("KeyVariant(%d)", uint8(v))
	}
}

// variantForKeyLenWithSalt maps the allocation parameter onto a variant.
func variantForKeyLenWithSalt(keyLenWithSalt int) (KeyVariant, error) {
	for _, v := range []KeyVariant{KeyVariantAES128, KeyVariantAES192, KeyVariantAES256} {
		if n, _ := v.KeyLenWithSalt(); n == keyLenWithSalt {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: %d", errNoSuchKeyLen, keyLenWithSalt)
}

// variantForKeyLen maps a raw AES key length onto a variant.
func variantForKeyLen(keyLen int) (KeyVariant, error) {
	switch keyLen {
	case 16:
		return KeyVariantAES128, nil
	case 24:
		return KeyVariantAES192, nil
	case 32:
		return KeyVariantAES256, nil
	default:
		return 0, fmt.Errorf("%w: key size %d", errNoSuchKeyVariant, keyLen)
	}
}

func (t KeyType) keyLen() int {
	switch t {
	case KeyTypeAES128:
		return 16
	case KeyTypeAES192:
		return 24
	case KeyTypeAES256:
		return 32
	default:
		return 0
	}
}
