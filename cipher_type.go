// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import "fmt"

// CipherTypeID identifies a cipher type to a host library. The values
// match the libsrtp cipher identifiers.
type CipherTypeID uint32

// Cipher type identifiers.
const (
	CipherTypeAESICM128 CipherTypeID = 1
	CipherTypeAESICM192 CipherTypeID = 4
	CipherTypeAESICM256 CipherTypeID = 5
)

// CipherType describes one key variant of the cipher to a host: how to
// allocate it, what to call it and which known-answer test validates it.
type CipherType struct {
	ID          CipherTypeID
	Variant     KeyVariant
	Description string
	TestCase    *TestCase
}

// Cipher types for the three AES key lengths.
var (
	AESICM128 = &CipherType{ //nolint:gochecknoglobals
		ID:          CipherTypeAESICM128,
		Variant:     KeyVariantAES128,
		Description: "AES-128 counter mode",
		TestCase:    &aesICM128TestCase,
	}
	AESICM192 = &CipherType{ //nolint:gochecknoglobals
		ID:          CipherTypeAESICM192,
		Variant:     KeyVariantAES192,
		Description: "AES-192 counter mode",
		TestCase:    &aesICM192TestCase,
	}
	AESICM256 = &CipherType{ //nolint:gochecknoglobals
		ID:          CipherTypeAESICM256,
		Variant:     KeyVariantAES256,
		Description: "AES-256 counter mode",
		TestCase:    &aesICM256TestCase,
	}
)

// CipherTypes returns every supported cipher type.
func CipherTypes() []*CipherType {
	return []*CipherType{AESICM128, AESICM192, AESICM256}
}

// CipherTypeForKeyLen returns the cipher type allocated by keyLenWithSalt.
func CipherTypeForKeyLen(keyLenWithSalt int) (*CipherType, error) {
	variant, err := variantForKeyLenWithSalt(keyLenWithSalt)
	if err != nil {
		return nil, err
	}

	for _, t := range CipherTypes() {
		if t.Variant == variant {
			return t, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", errNoSuchKeyVariant, variant)
}

// KeyLenWithSalt returns the allocation parameter for this type.
func (t *CipherType) KeyLenWithSalt() int {
	n, _ := t.Variant.KeyLenWithSalt()

	return n
}

// New allocates a Cipher of this type.
func (t *CipherType) New(opts ...CipherOption) (*Cipher, error) {
	return New(t.KeyLenWithSalt(), opts...)
}

func (t *CipherType) String() string {
	return t.Description
}
