// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package aesicm

import (
	"encoding/binary"
	"fmt"

	"github.com/pion/rtcp"
	"github.com/pion/rtp"
)

const (
	rtcpHeaderLength = 4
	srtcpHeaderSize  = 8
	maxSRTCPIndex    = 0x7fffffff
)

// SRTPNonce returns the per-packet nonce of an SRTP packet, RFC 3711
// section 4.1.1. XORed with the salt offset it yields
// IV = (k_s * 2^16) XOR (SSRC * 2^64) XOR (i * 2^16).
func SRTPNonce(ssrc, rolloverCounter uint32, sequenceNumber uint16) (nonce [BlockSize]byte) {
	binary.BigEndian.PutUint32(nonce[4:], ssrc)
	binary.BigEndian.PutUint32(nonce[8:], rolloverCounter)
	binary.BigEndian.PutUint16(nonce[12:], sequenceNumber)

	return nonce
}

// SRTCPNonce returns the per-packet nonce of an SRTCP packet. The 31 bit
// SRTCP index takes the place of the packet index; the E flag bit is ignored.
func SRTCPNonce(ssrc, index uint32) [BlockSize]byte {
	index &= maxSRTCPIndex

	return SRTPNonce(ssrc, index>>16, uint16(index&0xffff))
}

// TransformRTP encrypts or decrypts the payload of an RTP packet, writing
// the header unchanged followed by the transformed payload to dst.
// If dst does not have the capacity to hold len(packet) bytes a new buffer
// is allocated. No authentication tag is added or checked.
func (c *Cipher) TransformRTP(dst, packet []byte, rolloverCounter uint32) ([]byte, error) {
	if c == nil {
		return nil, errNilCipher
	}

	header := &rtp.Header{}
	headerSize, err := header.Unmarshal(packet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRTPPacket, err)
	}

	nonce := SRTPNonce(header.SSRC, rolloverCounter, header.SequenceNumber)

	return c.transformPacket(dst, packet, headerSize, nonce)
}

// TransformRTCP encrypts or decrypts everything after the first 8 bytes of
// an RTCP packet. The E flag, SRTCP index and authentication tag are left
// to the caller.
func (c *Cipher) TransformRTCP(dst, packet []byte, index uint32) ([]byte, error) {
	if c == nil {
		return nil, errNilCipher
	}
	if len(packet) < srtcpHeaderSize {
		return nil, errTooShortRTCP
	}

	var header rtcp.Header
	if err := header.Unmarshal(packet); err != nil {
		return nil, fmt.Errorf("%w: %v", errBadRTCPPacket, err)
	}

	ssrc := binary.BigEndian.Uint32(packet[rtcpHeaderLength:])
	nonce := SRTCPNonce(ssrc, index)

	return c.transformPacket(dst, packet, srtcpHeaderSize, nonce)
}

func (c *Cipher) transformPacket(dst, packet []byte, headerSize int, nonce [BlockSize]byte) ([]byte, error) {
	if len(packet)-headerSize > MaxTransformLen {
		return nil, errTransformTooLong
	}

	dst = growBufferSize(dst, len(packet))
	copy(dst, packet)

	if err := c.SetIV(nonce[:], DirectionEncrypt); err != nil {
		return nil, err
	}
	if err := c.Encrypt(dst[headerSize:]); err != nil {
		return nil, err
	}

	return dst, nil
}
