// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

import (
	"fmt"

	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

// ImportedState is a precomputed state for a block, downloaded out of
// band during state sync. When set on an IncomingBlock, importing the
// block applies this state instead of executing the block.
type ImportedState struct {
	Block common.Hash
	State []byte
}

// IncomingBlock is a block ready to be scheduled for import.
// All fields other than Hash are optionals and thus are represented
// as pointers where the zero value is meaningful.
type IncomingBlock struct {
	// Hash is the hash of the block header.
	Hash common.Hash
	// Header of the block, if requested.
	Header *Header
	// Body of the block, if requested.
	Body *Body
	// IndexedBody holds the transactions to be indexed, if requested.
	IndexedBody *[][]byte
	// Justifications attached to the block, if any.
	Justifications *Justifications
	// Origin is the peer the block was received from, if any.
	Origin *peer.ID
	// AllowMissingState allows importing the block on top of a parent
	// whose state is not available.
	AllowMissingState bool
	// ImportExisting re-imports the block even if it is already in chain.
	ImportExisting bool
	// SkipExecution skips block execution during import.
	SkipExecution bool
	// State is a precomputed state to apply instead of execution.
	State *ImportedState
}

func (b *IncomingBlock) String() string {
	str := fmt.Sprintf("Hash=%s ", b.Hash)

	if b.Header != nil {
		str += fmt.Sprintf("Header=%s ", b.Header)
	}

	if b.Body != nil {
		str += fmt.Sprintf("Body=%s ", b.Body)
	}

	if b.Origin != nil {
		str += fmt.Sprintf("Origin=%s ", *b.Origin)
	}

	return str
}
