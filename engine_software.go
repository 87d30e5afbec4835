// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pion/aesicm/internal/aesctr"
)

// SoftwareEngine is an Engine backed by crypto/aes.
type SoftwareEngine struct{}

// NewHandle returns an unconfigured handle.
func (SoftwareEngine) NewHandle() (Handle, error) {
	return &softwareHandle{}, nil
}

type softwareHandle struct {
	block     cipher.Block
	iv        [BlockSize]byte
	destroyed bool
}

func (h *softwareHandle) Configure(cfg EngineConfig) error {
	switch {
	case h.destroyed:
		return errHandleDestroyed
	case cfg.Algorithm != AlgorithmAES:
		return errUnsupportedAlgorithm
	case cfg.Mode != ModeCounter:
		return errUnsupportedMode
	case cfg.KeyType.keyLen() == 0 || cfg.KeyType.keyLen() != len(cfg.Key):
		return errKeyTypeMismatch
	}

	block, err := aes.NewCipher(cfg.Key)
	if err != nil {
		return err
	}

	h.block = block
	h.iv = cfg.IV

	return nil
}

func (h *softwareHandle) EncryptBuffer(dst, src []byte) error {
	switch {
	case h.destroyed:
		return errHandleDestroyed
	case h.block == nil:
		return errHandleNotConfigured
	case len(dst) < len(src):
		return errShortOutput
	case aesctr.InexactOverlap(dst[:len(src)], src):
		return errBufferOverlap
	}

	aesctr.New(h.block, h.iv[:]).XORKeyStream(dst, src)

	return nil
}

func (h *softwareHandle) Destroy() error {
	if h.destroyed {
		return errHandleDestroyed
	}

	h.block = nil
	h.iv = [BlockSize]byte{}
	h.destroyed = true

	return nil
}
