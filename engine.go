// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

// Algorithm selects the block cipher an Engine runs.
type Algorithm uint8

// Supported algorithms.
const (
	AlgorithmAES Algorithm = iota + 1
)

// Mode selects the block cipher mode an Engine runs.
type Mode uint8

// Supported modes.
const (
	ModeCounter Mode = iota + 1
)

// EngineConfig is the per-packet configuration pushed into a Handle by SetIV.
type EngineConfig struct {
	Algorithm Algorithm
	KeyType   KeyType
	Mode      Mode
	Key       []byte
	IV        [BlockSize]byte
}

// Engine is a keyed AES block encryption primitive, in hardware or software.
// Each Cipher owns exactly one Handle, so handles must not share
// configuration with each other.
type Engine interface {
	NewHandle() (Handle, error)
}

// Handle is a single configured instance of an Engine.
type Handle interface {
	// Configure replaces the key and IV used by later EncryptBuffer calls.
	// The handle must not retain cfg.Key after Destroy.
	Configure(cfg EngineConfig) error

	// EncryptBuffer writes len(src) bytes of src XOR keystream to dst.
	// The keystream starts at the configured IV and the 16 bit block
	// counter field advances once per 16 byte block. dst and src must
	// overlap entirely or not at all.
	EncryptBuffer(dst, src []byte) error

	// Destroy releases the handle and any key material it holds.
	Destroy() error
}
