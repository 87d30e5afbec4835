// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Error kinds returned by the cipher. Every error returned by this package
// matches exactly one of them with errors.Is.
var (
	// ErrInvalidParameter is returned for a bad key length, a nil cipher or
	// an IV set before a key is present.
	ErrInvalidParameter = errors.New("aesicm: invalid parameter")
	// ErrAllocationFailed is returned when an engine handle could not be obtained.
	ErrAllocationFailed = errors.New("aesicm: allocation failed")
	// ErrCipherFailure is returned when the engine rejects a configuration or a transform.
	ErrCipherFailure = errors.New("aesicm: cipher failure")
	// ErrInvalidState is returned when an internal invariant does not hold.
	ErrInvalidState = errors.New("aesicm: invalid state")
	// ErrSelfTestFailed is returned when a known-answer test does not reproduce its ciphertext.
	ErrSelfTestFailed = errors.New("aesicm: self test failed")
)

var (
	errNilCipher           = fmt.Errorf("%w: cipher is nil", ErrInvalidParameter)
	errNoSuchKeyLen        = fmt.Errorf("%w: no such key length", ErrInvalidParameter)
	errBadKeyMaterialLen   = fmt.Errorf("%w: key material has wrong length", ErrInvalidParameter)
	errNoKey               = fmt.Errorf("%w: cipher has no key", ErrInvalidParameter)
	errBadNonceLen         = fmt.Errorf("%w: nonce must be 16 bytes", ErrInvalidParameter)
	errTransformTooLong    = fmt.Errorf("%w: buffer exceeds maximum transform length", ErrInvalidParameter)
	errBadRTPPacket        = fmt.Errorf("%w: malformed rtp packet", ErrInvalidParameter)
	errBadRTCPPacket       = fmt.Errorf("%w: malformed rtcp packet", ErrInvalidParameter)
	errTooShortRTCP        = fmt.Errorf("%w: packet is too short to be rtcp packet", ErrInvalidParameter)
	errNoSuchKeyVariant    = fmt.Errorf("%w: no such key variant", ErrInvalidState)
	errIVNotSet            = fmt.Errorf("%w: transform before iv was set", ErrInvalidState)
	errCipherClosed        = fmt.Errorf("%w: cipher is closed", ErrInvalidState)
	errHandleDestroyFailed = fmt.Errorf("%w: engine handle could not be destroyed", ErrInvalidState)

	errUnsupportedAlgorithm = errors.New("unsupported algorithm")
	errUnsupportedMode      = errors.New("unsupported mode")
	errKeyTypeMismatch      = errors.New("key length does not match key type")
	errHandleNotConfigured  = errors.New("handle is not configured")
	errHandleDestroyed      = errors.New("handle is destroyed")
	errShortOutput          = errors.New("output smaller than input")
	errBufferOverlap        = errors.New("invalid buffer overlap")
)

// engineError is returned when a call into the Engine fails.
type engineError struct {
	Op   string // create, configure, encrypt or destroy
	Kind error
	Err  error
}

func (e *engineError) Error() string {
	return fmt.Sprintf("%v: engine %s: %v", e.Kind, e.Op, e.Err)
}

func (e *engineError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// selfTestError reports a known-answer test whose output did not match.
type selfTestError struct {
	Variant KeyVariant
	Stage   string // encrypt or decrypt
	Got     []byte
	Want    []byte
}

func (e *selfTestError) Error() string {
	return fmt.Sprintf("%v: %s %s mismatch\ngot:\n%swant:\n%s",
		ErrSelfTestFailed, e.Variant, e.Stage, hex.Dump(e.Got), hex.Dump(e.Want))
}

func (e *selfTestError) Unwrap() error {
	return ErrSelfTestFailed
}
