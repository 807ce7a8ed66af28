// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"github.com/ChainSafe/polkadot-sdk/dot/types"
	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

// ImportResult is the answer of the BlockImport collaborator for a
// single check or import call.
type ImportResult byte

const (
	// BlockImported means the block is not in chain yet (for CheckBlock)
	// or was committed to the chain (for ImportBlock).
	BlockImported ImportResult = iota
	// BlockAlreadyInChain means the block is already fully imported.
	BlockAlreadyInChain
	// BlockKnownBad means the block is known to be bad.
	BlockKnownBad
	// BlockUnknownParent means the parent of the block is not in chain.
	BlockUnknownParent
	// BlockMissingState means the parent state is not available.
	BlockMissingState
)

func (r ImportResult) String() string {
	switch r {
	case BlockImported:
		return "imported"
	case BlockAlreadyInChain:
		return "already in chain"
	case BlockKnownBad:
		return "known bad"
	case BlockUnknownParent:
		return "unknown parent"
	case BlockMissingState:
		return "missing state"
	default:
		return "unknown"
	}
}

// BlockImportStatus describes how a successfully processed block
// entered the chain.
type BlockImportStatus byte

const (
	// ImportedUnknown means the block was newly imported.
	ImportedUnknown BlockImportStatus = iota
	// ImportedKnown means the block was already in chain.
	ImportedKnown
)

func (s BlockImportStatus) String() string {
	switch s {
	case ImportedUnknown:
		return "imported unknown"
	case ImportedKnown:
		return "imported known"
	default:
		return "unknown"
	}
}

// JustificationImportResult classifies the outcome of importing one
// justification.
type JustificationImportResult byte

const (
	// JustificationImportSuccess means the justification was imported.
	JustificationImportSuccess JustificationImportResult = iota
	// JustificationImportOutdated means the justification targets an
	// already finalised block.
	JustificationImportOutdated
	// JustificationImportFailure means the import failed or no
	// JustificationImport collaborator is configured.
	JustificationImportFailure
)

func (r JustificationImportResult) String() string {
	switch r {
	case JustificationImportSuccess:
		return "success"
	case JustificationImportOutdated:
		return "outdated justification"
	case JustificationImportFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// BlockCheckParams is the parameter set for BlockImport.CheckBlock.
type BlockCheckParams struct {
	Hash              common.Hash
	Number            uint
	ParentHash        common.Hash
	AllowMissingState bool
	ImportExisting    bool
}

// BlockImportParams is built from an incoming block, handed to the
// Verifier, and then (possibly adjusted by the Verifier) given to
// BlockImport.ImportBlock.
type BlockImportParams struct {
	Origin            types.BlockOrigin
	Header            *types.Header
	Body              *types.Body
	IndexedBody       *[][]byte
	Justifications    types.Justifications
	State             *types.ImportedState
	AllowMissingState bool
	ImportExisting    bool
	SkipExecution     bool
}

func newBlockImportParams(origin types.BlockOrigin,
	block *types.IncomingBlock) *BlockImportParams {
	params := &BlockImportParams{
		Origin:            origin,
		Header:            block.Header,
		Body:              block.Body,
		IndexedBody:       block.IndexedBody,
		State:             block.State,
		AllowMissingState: block.AllowMissingState,
		ImportExisting:    block.ImportExisting,
		SkipExecution:     block.SkipExecution,
	}

	if block.Justifications != nil {
		params.Justifications = *block.Justifications
	}

	return params
}

// BlockImportResult is the outcome for one block of a batch.
// Status is meaningful only when Err is nil.
type BlockImportResult struct {
	Hash   common.Hash
	Number uint // zero when the incoming block had no header
	Status BlockImportStatus
	Err    error
}
