// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package common

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// HashLength is the expected length of the common.Hash type
	HashLength = 32
)

// ErrInvalidHashLength is returned when decoding a hex string
// whose byte length is not HashLength.
var ErrInvalidHashLength = errors.New("invalid hash length")

// EmptyHash is the zero value of the Hash type.
var EmptyHash = Hash{}

// Hash is a blake2b-256 hash.
type Hash [HashLength]byte

// NewHash casts a byte slice to a Hash.
// If the input is longer than 32 bytes, it takes the first 32 bytes.
func NewHash(in []byte) (res Hash) {
	copy(res[:], in)
	return res
}

// Blake2bHash returns the blake2b-256 hash of the input data.
func Blake2bHash(data []byte) (Hash, error) {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		return Hash{}, err
	}

	_, err = hasher.Write(data)
	if err != nil {
		return Hash{}, err
	}

	return NewHash(hasher.Sum(nil)), nil
}

// MustBlake2bHash returns the blake2b-256 hash of the input data.
// It panics if the hasher fails, which cannot happen for a keyless hasher.
func MustBlake2bHash(data []byte) Hash {
	h, err := Blake2bHash(data)
	if err != nil {
		panic(err)
	}
	return h
}

// HexToHash turns a 0x prefixed hex string into a Hash.
func HexToHash(in string) (Hash, error) {
	if strings.Compare(in[:2], "0x") != 0 {
		return Hash{}, errors.New("could not byteify non 0x prefixed string")
	}

	out, err := hex.DecodeString(in[2:])
	if err != nil {
		return Hash{}, err
	}

	if len(out) != HashLength {
		return Hash{}, fmt.Errorf("%w: %d bytes", ErrInvalidHashLength, len(out))
	}

	var buf Hash
	copy(buf[:], out)
	return buf, nil
}

// MustHexToHash turns a 0x prefixed hex string into a Hash.
// It panics if it cannot decode the string.
func MustHexToHash(in string) Hash {
	h, err := HexToHash(in)
	if err != nil {
		panic(err)
	}
	return h
}

// ToBytes turns a hash to a byte slice.
func (h Hash) ToBytes() []byte {
	b := [HashLength]byte(h)
	return b[:]
}

// IsEmpty returns true if the hash is the zero value.
func (h Hash) IsEmpty() bool {
	return h == EmptyHash
}

// String returns the hex string for the hash.
func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Short returns the first 4 bytes and the last 4 bytes of the hex string for the hash.
func (h Hash) Short() string {
	const nBytes = 4
	return fmt.Sprintf("0x%x...%x", h[:nBytes], h[len(h)-nBytes:])
}
