// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package aesicm implements AES Integer Counter Mode as used by SRTP
// (RFC 3711, RFC 6188) on top of a pluggable block encryption Engine.
//
// A Cipher is allocated for a key length, initialized once with a key and
// salt, and then driven once per packet with SetIV followed by Encrypt or
// Decrypt:
//
//	+------+------+------+------+------+------+------+------+
//	|           nonce           |    packet index    |  ctr |---+
//	+------+------+------+------+------+------+------+------+   |
//	                                                            |
//	+------+------+------+------+------+------+------+------+   v
//	|                      salt                      |000000|->(+)
//	+------+------+------+------+------+------+------+------+   |
//	                                                            |
//	                                                       +---------+
//	                                                       | encrypt |
//	                                                       +---------+
//	                                                            |
//	+------+------+------+------+------+------+------+------+   |
//	|                    keystream block                    |<--+
//	+------+------+------+------+------+------+------+------+
//
// All fields are big-endian. ctr counts 16 byte blocks within a packet.
package aesicm

import (
	"fmt"

	"github.com/pion/logging"
)

// MaxTransformLen is the largest buffer a single Encrypt or Decrypt call
// accepts. Larger payloads must be split across packets.
const MaxTransformLen = 8192

// Direction is the direction a packet is processed in. Counter mode
// ignores it since the keystream operation is its own inverse.
type Direction uint8

// Directions.
const (
	DirectionEncrypt Direction = iota
	DirectionDecrypt
)

func (d Direction) String() string {
	switch d {
	case DirectionEncrypt:
		return "encrypt"
	case DirectionDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Cipher is an AES-ICM cipher instance. It owns its key material and its
// engine handle. A Cipher is not safe for concurrent use; distinct ciphers
// may be used from different goroutines.
type Cipher struct {
	variant KeyVariant
	keySize int
	key     []byte

	// offset is derived from the salt at Init and fixed afterwards.
	// counter is recomputed by every SetIV.
	offset  counterBlock
	counter counterBlock
	ivSet   bool

	engine  Engine
	handle  Handle
	scratch []byte
	closed  bool

	loggerFactory logging.LoggerFactory
	log           logging.LeveledLogger
}

// New allocates a Cipher. keyLenWithSalt is the raw AES key length plus
// SaltLen, so one of 30, 38 or 46.
func New(keyLenWithSalt int, opts ...CipherOption) (*Cipher, error) {
	variant, err := variantForKeyLenWithSalt(keyLenWithSalt)
	if err != nil {
		return nil, err
	}

	keySize, err := variant.keyLen()
	if err != nil {
		return nil, err
	}

	c := &Cipher{
		variant: variant,
		keySize: keySize,
	}

	for _, o := range append(
		[]CipherOption{ // Default options
			WithEngine(SoftwareEngine{}),
			WithLoggerFactory(logging.NewDefaultLoggerFactory()),
		},
		opts..., // User specified options
	) {
		if errOpt := o(c); errOpt != nil {
			return nil, errOpt
		}
	}

	c.log = c.loggerFactory.NewLogger("aesicm")
	c.log.Tracef("allocating cipher with key length %d", keyLenWithSalt)

	handle, err := c.engine.NewHandle()
	if err != nil {
		return nil, &engineError{Op: "create", Kind: ErrAllocationFailed, Err: err}
	}
	if handle == nil {
		return nil, &engineError{Op: "create", Kind: ErrAllocationFailed, Err: errHandleNotConfigured}
	}

	c.handle = handle
	c.scratch = make([]byte, MaxTransformLen)

	return c, nil
}

// KeyVariant returns the key length variant chosen at allocation.
func (c *Cipher) KeyVariant() KeyVariant {
	return c.variant
}

// Description returns a human readable name for the cipher.
func (c *Cipher) Description() string {
	return fmt.Sprintf("%s counter mode", c.variant)
}

// Init sets the key. keyMaterial is the raw AES key followed by the
// 14 byte salt. A previously held key is zeroed and replaced.
func (c *Cipher) Init(keyMaterial []byte) error {
	if c == nil {
		return errNilCipher
	}
	if c.closed {
		return errCipherClosed
	}
	if len(keyMaterial) != c.keySize+SaltLen {
		return fmt.Errorf("%w: got %d, want %d", errBadKeyMaterialLen, len(keyMaterial), c.keySize+SaltLen)
	}

	variant, err := variantForKeyLen(c.keySize)
	if err != nil {
		return err
	}

	salt := keyMaterial[c.keySize:]
	c.offset.zero()
	c.counter.zero()
	c.offset.loadSalt(salt)
	c.counter.loadSalt(salt)
	c.ivSet = false

	c.log.Tracef("key length: %d", c.keySize)
	c.log.Tracef("offset: %x", c.offset[:])

	c.releaseKey()
	c.key = make([]byte, c.keySize)
	copy(c.key, keyMaterial[:c.keySize])
	c.variant = variant

	return nil
}

// SetIV prepares the cipher for one packet: the working counter becomes
// offset XOR nonce across all 16 bytes and is pushed into the engine
// together with the key. The offset's block counter field is zero, so the
// nonce's low 16 bits select the block the packet's keystream starts at.
func (c *Cipher) SetIV(nonce []byte, dir Direction) error {
	if c == nil {
		return errNilCipher
	}
	if c.closed {
		return errCipherClosed
	}
	if c.key == nil {
		return errNoKey
	}
	if len(nonce) != BlockSize {
		return fmt.Errorf("%w: got %d", errBadNonceLen, len(nonce))
	}

	var n counterBlock
	copy(n[:], nonce)

	c.log.Tracef("setting iv (%s): %x", dir, n[:])

	c.counter.xor(&c.offset, &n)
	c.ivSet = false

	c.log.Tracef("set_counter: %x", c.counter[:])

	keyType, err := c.variant.keyType()
	if err != nil {
		return err
	}

	if err := c.handle.Configure(EngineConfig{
		Algorithm: AlgorithmAES,
		KeyType:   keyType,
		Mode:      ModeCounter,
		Key:       c.key,
		IV:        c.counter,
	}); err != nil {
		return &engineError{Op: "configure", Kind: ErrCipherFailure, Err: err}
	}

	c.ivSet = true

	return nil
}

// Encrypt transforms buf in place with the keystream of the current IV.
func (c *Cipher) Encrypt(buf []byte) error {
	return c.transform(buf)
}

// Decrypt is identical to Encrypt.
func (c *Cipher) Decrypt(buf []byte) error {
	return c.transform(buf)
}

// transform runs the engine over buf and copies the result back. On
// failure buf is left untouched and must not be trusted by the caller.
func (c *Cipher) transform(buf []byte) error {
	if c == nil {
		return errNilCipher
	}
	if c.closed {
		return errCipherClosed
	}
	if len(buf) > MaxTransformLen {
		return fmt.Errorf("%w: %d > %d", errTransformTooLong, len(buf), MaxTransformLen)
	}
	if len(buf) == 0 {
		return nil
	}
	if !c.ivSet {
		return errIVNotSet
	}

	c.log.Tracef("rs0: %x", c.counter[:])

	out := c.scratch[:len(buf)]
	if err := c.handle.EncryptBuffer(out, buf); err != nil {
		return &engineError{Op: "encrypt", Kind: ErrCipherFailure, Err: err}
	}
	copy(buf, out)

	return nil
}

// Close releases the engine handle and zeroes all key material. Closing a
// nil or already closed Cipher is a no-op. A handle that cannot be
// destroyed may still hold key material, so that case panics.
func (c *Cipher) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true

	c.releaseKey()
	c.offset.zero()
	c.counter.zero()
	c.ivSet = false
	for i := range c.scratch {
		c.scratch[i] = 0
	}
	c.scratch = nil

	handle := c.handle
	c.handle = nil
	if handle == nil {
		return nil
	}
	if err := handle.Destroy(); err != nil {
		c.log.Errorf("failed to destroy engine handle: %v", err)
		panic(&engineError{Op: "destroy", Kind: errHandleDestroyFailed, Err: err})
	}

	return nil
}

// releaseKey zeroes and drops the key.
func (c *Cipher) releaseKey() {
	for i := range c.key {
		c.key[i] = 0
	}
	c.key = nil
}
