// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"fmt"

	"github.com/pion/logging"
)

// CipherOption represents option of Cipher using the functional options pattern.
type CipherOption func(*Cipher) error

// WithEngine sets the block encryption engine. SoftwareEngine is used by default.
func WithEngine(engine Engine) CipherOption {
	return func(c *Cipher) error {
		if engine == nil {
			return fmt.Errorf("%w: nil engine", ErrInvalidParameter)
		}
		c.engine = engine

		return nil
	}
}

// WithLoggerFactory sets the factory the cipher creates its logger from.
func WithLoggerFactory(loggerFactory logging.LoggerFactory) CipherOption {
	return func(c *Cipher) error {
		if loggerFactory == nil {
			return fmt.Errorf("%w: nil logger factory", ErrInvalidParameter)
		}
		c.loggerFactory = loggerFactory

		return nil
	}
}
