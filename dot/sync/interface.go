// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/ChainSafe/polkadot-sdk/dot/types"
	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Verifier,BlockImport,JustificationImport,Link

// Verifier verifies a block before it is imported. It receives the
// import parameters built from the incoming block and returns them,
// possibly adjusted, for the actual import. It may block for the
// duration of the verification.
type Verifier interface {
	VerifyBlock(block *BlockImportParams) (*BlockImportParams, error)
}

// BlockImport checks and commits blocks to the chain.
// Both methods may block while the underlying state is accessed.
type BlockImport interface {
	CheckBlock(block BlockCheckParams) (ImportResult, error)
	ImportBlock(block *BlockImportParams) (ImportResult, error)
}

// JustificationRequest identifies a block a justification is wanted for.
type JustificationRequest struct {
	Hash   common.Hash
	Number uint
}

// JustificationImport verifies and applies finality justifications.
type JustificationImport interface {
	// OnStart is called once when the import queue worker starts and
	// returns the blocks the importer still wants a justification for.
	OnStart() []JustificationRequest
	ImportJustification(hash common.Hash, number uint,
		justification types.Justification) error
}

// Link is the consumer-facing callback interface receiving the
// outcomes produced by the import queue.
type Link interface {
	BlocksProcessed(imported, count int, results []BlockImportResult)
	JustificationImported(who peer.ID, hash common.Hash, number uint,
		result JustificationImportResult)
	RequestJustification(hash common.Hash, number uint)
}

// ImportQueueService is the handle used by the synchronisation layer to
// schedule work on the import queue. All methods are fire and forget:
// they never block and report nothing back; outcomes are delivered
// through the Link. The handle is safe for concurrent use and cheap to
// share between callers.
type ImportQueueService interface {
	// ImportBlocks schedules one ordered batch of blocks for import.
	// It is a no-op if blocks is empty.
	ImportBlocks(origin types.BlockOrigin, blocks []*types.IncomingBlock)
	// ImportJustifications schedules one import per justification in
	// the given set, all for the same block.
	ImportJustifications(who peer.ID, hash common.Hash, number uint,
		justifications types.Justifications)
	// Close closes the input queues. It is idempotent. Once closed,
	// the background worker terminates after draining pending work.
	Close()
}
