// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package types

// BlockOrigin describes where a block (or batch of blocks) came from.
type BlockOrigin byte

const (
	// BlockOriginGenesis means the block is part of the initial chain state.
	BlockOriginGenesis BlockOrigin = iota
	// BlockOriginNetworkInitialSync means the block was received while
	// catching up with the network.
	BlockOriginNetworkInitialSync
	// BlockOriginNetworkBroadcast means the block was announced by a peer
	// while we are at the tip of the chain.
	BlockOriginNetworkBroadcast
	// BlockOriginConsensusBroadcast means the block was produced and
	// broadcast by the consensus engine.
	BlockOriginConsensusBroadcast
	// BlockOriginOwn means the block was authored by this node.
	BlockOriginOwn
	// BlockOriginFile means the block was read from a chain export.
	BlockOriginFile
)

func (o BlockOrigin) String() string {
	switch o {
	case BlockOriginGenesis:
		return "genesis"
	case BlockOriginNetworkInitialSync:
		return "network initial sync"
	case BlockOriginNetworkBroadcast:
		return "network broadcast"
	case BlockOriginConsensusBroadcast:
		return "consensus broadcast"
	case BlockOriginOwn:
		return "own"
	case BlockOriginFile:
		return "file"
	default:
		return "unknown"
	}
}
