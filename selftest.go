// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"bytes"
	"errors"
)

// TestCase is a known-answer test for one key variant.
type TestCase struct {
	Variant    KeyVariant
	Key        []byte // raw key followed by salt
	Nonce      []byte
	Plaintext  []byte
	Ciphertext []byte
}

// AES-128-ICM, from the legacy libsrtp code (RFC 3711, Appendix B.2).
var aesICM128TestCase = TestCase{ //nolint:gochecknoglobals
	Variant: KeyVariantAES128,
	Key: []byte{
		0x2b, 0x7e, 0x15, 0x16, 0x28, 0xae, 0xd2, 0xa6,
		0xab, 0xf7, 0x15, 0x88, 0x09, 0xcf, 0x4f, 0x3c,
		0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
		0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd,
	},
	Nonce:     make([]byte, BlockSize),
	Plaintext: make([]byte, 32),
	Ciphertext: []byte{
		0xe0, 0x3e, 0xad, 0x09, 0x35, 0xc9, 0x5e, 0x80,
		0xe1, 0x66, 0xb1, 0x6d, 0xd9, 0x2b, 0x4e, 0xb4,
		0xd2, 0x35, 0x13, 0x16, 0x2b, 0x02, 0xd0, 0xf7,
		0x2a, 0x43, 0xa2, 0xfe, 0x4a, 0x5f, 0x97, 0xab,
	},
}

// AES-192-ICM, RFC 6188, Section 7.
var aesICM192TestCase = TestCase{ //nolint:gochecknoglobals
	Variant: KeyVariantAES192,
	Key: []byte{
		0xea, 0xb2, 0x34, 0x76, 0x4e, 0x51, 0x7b, 0x2d,
		0x3d, 0x16, 0x0d, 0x58, 0x7d, 0x8c, 0x86, 0x21,
		0x97, 0x40, 0xf6, 0x5f, 0x99, 0xb6, 0xbc, 0xf7,
		0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
		0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd,
	},
	Nonce:     make([]byte, BlockSize),
	Plaintext: make([]byte, 32),
	Ciphertext: []byte{
		0x35, 0x09, 0x6c, 0xba, 0x46, 0x10, 0x02, 0x8d,
		0xc1, 0xb5, 0x75, 0x03, 0x80, 0x4c, 0xe3, 0x7c,
		0x5d, 0xe9, 0x86, 0x29, 0x1d, 0xcc, 0xe1, 0x61,
		0xd5, 0x16, 0x5e, 0xc4, 0x56, 0x8f, 0x5c, 0x9a,
	},
}

// AES-256-ICM, RFC 6188, Section 7.
var aesICM256TestCase = TestCase{ //nolint:gochecknoglobals
	Variant: KeyVariantAES256,
	Key: []byte{
		0x57, 0xf8, 0x2f, 0xe3, 0x61, 0x3f, 0xd1, 0x70,
		0xa8, 0x5e, 0xc9, 0x3c, 0x40, 0xb1, 0xf0, 0x92,
		0x2e, 0xc4, 0xcb, 0x0d, 0xc0, 0x25, 0xb5, 0x82,
		0x72, 0x14, 0x7c, 0xc4, 0x38, 0x94, 0x4a, 0x98,
		0xf0, 0xf1, 0xf2, 0xf3, 0xf4, 0xf5, 0xf6, 0xf7,
		0xf8, 0xf9, 0xfa, 0xfb, 0xfc, 0xfd,
	},
	Nonce:     make([]byte, BlockSize),
	Plaintext: make([]byte, 32),
	Ciphertext: []byte{
		0x92, 0xbd, 0xd2, 0x8a, 0x93, 0xc3, 0xf5, 0x25,
		0x11, 0xc6, 0x77, 0xd0, 0x8b, 0x55, 0x15, 0xa4,
		0x9d, 0xa7, 0x1b, 0x23, 0x78, 0xa8, 0x54, 0xf6,
		0x70, 0x50, 0x75, 0x6d, 0xed, 0x16, 0x5b, 0xac,
	},
}

// SelfTest runs the known-answer test of the type: the ciphertext must be
// reproduced exactly and decrypt back to the plaintext.
func (t *CipherType) SelfTest(opts ...CipherOption) (err error) {
	c, err := t.New(opts...)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, c.Close())
	}()

	return runTestCase(c, t.TestCase)
}

// SelfTest runs the known-answer tests of every cipher type.
func SelfTest(opts ...CipherOption) error {
	for _, t := range CipherTypes() {
		if err := t.SelfTest(opts...); err != nil {
			return err
		}
	}

	return nil
}

func runTestCase(c *Cipher, tc *TestCase) error {
	if err := c.Init(tc.Key); err != nil {
		return err
	}
	if err := c.SetIV(tc.Nonce, DirectionEncrypt); err != nil {
		return err
	}

	buf := append([]byte{}, tc.Plaintext...)
	if err := c.Encrypt(buf); err != nil {
		return err
	}
	if !bytes.Equal(buf, tc.Ciphertext) {
		return &selfTestError{Variant: tc.Variant, Stage: "encrypt", Got: buf, Want: tc.Ciphertext}
	}

	if err := c.SetIV(tc.Nonce, DirectionDecrypt); err != nil {
		return err
	}
	if err := c.Decrypt(buf); err != nil {
		return err
	}
	if !bytes.Equal(buf, tc.Plaintext) {
		return &selfTestError{Variant: tc.Variant, Stage: "decrypt", Got: buf, Want: tc.Plaintext}
	}

	return nil
}
