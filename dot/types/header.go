// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"encoding/binary"
	"fmt"

	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

// Header is a state block header
type Header struct {
	ParentHash     common.Hash
	Number         uint
	StateRoot      common.Hash
	ExtrinsicsRoot common.Hash
	Digest         [][]byte
	hash           common.Hash
}

// NewHeader creates a new block header and sets its hash field
func NewHeader(parentHash, stateRoot, extrinsicsRoot common.Hash,
	number uint, digest [][]byte) *Header {
	bh := &Header{
		ParentHash:     parentHash,
		Number:         number,
		StateRoot:      stateRoot,
		ExtrinsicsRoot: extrinsicsRoot,
		Digest:         digest,
	}

	bh.Hash()
	return bh
}

// Encode returns the canonical binary encoding of the header,
// used as the hashing pre-image.
func (bh *Header) Encode() []byte {
	enc := make([]byte, 0, 3*common.HashLength+8)
	enc = append(enc, bh.ParentHash.ToBytes()...)
	enc = binary.BigEndian.AppendUint64(enc, uint64(bh.Number))
	enc = append(enc, bh.StateRoot.ToBytes()...)
	enc = append(enc, bh.ExtrinsicsRoot.ToBytes()...)
	for _, item := range bh.Digest {
		enc = append(enc, item...)
	}
	return enc
}

// Hash returns the hash of the block header.
// If the internal hash field is nil, it hashes the header
// and sets the hash field. Headers are immutable once built,
// so mutating an already hashed header is a logic error.
func (bh *Header) Hash() common.Hash {
	if bh.hash.IsEmpty() {
		bh.hash = common.MustBlake2bHash(bh.Encode())
	}

	return bh.hash
}

func (bh *Header) String() string {
	return fmt.Sprintf("ParentHash=%s Number=%d StateRoot=%s ExtrinsicsRoot=%s",
		bh.ParentHash, bh.Number, bh.StateRoot, bh.ExtrinsicsRoot)
}
