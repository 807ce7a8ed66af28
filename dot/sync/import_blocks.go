// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"fmt"
	"runtime"
	"time"

	"github.com/ChainSafe/polkadot-sdk/dot/types"
)

// importBlocks verifies and imports one batch of blocks strictly in
// the order given. The first failure cancels the rest of the batch.
// Between blocks the justification queue is drained and the scheduler
// is yielded to, so a long batch cannot starve finality work.
// It returns false when the worker must terminate.
func (w *worker) importBlocks(origin types.BlockOrigin, blocks []*types.IncomingBlock) bool {
	count := len(blocks)

	var blocksRange string
	if count > 0 && blocks[0].Header != nil && blocks[count-1].Header != nil {
		first := blocks[0].Header.Number
		last := blocks[count-1].Header.Number
		if first != last {
			blocksRange = fmt.Sprintf(" (%d..%d)", first, last)
		} else {
			blocksRange = fmt.Sprintf(" (%d)", first)
		}
	}

	logger.Tracef("starting import of %d blocks%s", count, blocksRange)

	var imported int
	results := make([]BlockImportResult, 0, count)
	hasError := false

	for _, block := range blocks {
		result := BlockImportResult{Hash: block.Hash}
		if block.Header != nil {
			result.Number = block.Header.Number
		}

		if hasError {
			result.Err = ErrCancelled
		} else {
			result.Status, result.Err = w.verifyAndImportBlock(origin, block)
		}

		if w.metrics != nil {
			w.metrics.reportImport(result)
		}

		if result.Err == nil {
			logger.Tracef("block imported successfully #%d (%s)", result.Number, block.Hash)
			imported++
		} else {
			hasError = true
		}

		results = append(results, result)

		// scheduling opportunity between blocks: queued justifications
		// are handled before the next block is touched
		if !w.drainJustifications() {
			return false
		}
		if w.resultSender.isClosed() {
			return false
		}
		runtime.Gosched()
	}

	w.resultSender.blocksProcessed(imported, count, results)
	return true
}

// verifyAndImportBlock processes a single block: the chain is asked
// whether the block can be imported at all, the verifier adjusts the
// import parameters, and the block is committed. The check may report
// the block as already fully imported, in which case neither
// verification nor import run.
func (w *worker) verifyAndImportBlock(origin types.BlockOrigin,
	block *types.IncomingBlock) (status BlockImportStatus, err error) {
	if block.Header == nil {
		if block.Origin != nil {
			logger.Debugf("peer %s sent block %s with no header", *block.Origin, block.Hash)
		}
		return 0, fmt.Errorf("%w: %s", ErrIncompleteHeader, block.Hash)
	}

	header := block.Header
	number := header.Number
	hash := block.Hash

	result, err := w.blockImport.CheckBlock(BlockCheckParams{
		Hash:              hash,
		Number:            number,
		ParentHash:        header.ParentHash,
		AllowMissingState: block.AllowMissingState,
		ImportExisting:    block.ImportExisting,
	})
	if err != nil {
		return 0, fmt.Errorf("checking block %s: %w", hash, err)
	}

	switch result {
	case BlockAlreadyInChain:
		logger.Tracef("block already in chain #%d (%s)", number, hash)
		return ImportedKnown, nil
	case BlockKnownBad:
		return 0, fmt.Errorf("%w: #%d (%s)", ErrBadBlock, number, hash)
	case BlockUnknownParent:
		return 0, fmt.Errorf("%w: block #%d (%s), parent %s",
			ErrUnknownParent, number, hash, header.ParentHash)
	case BlockMissingState:
		return 0, fmt.Errorf("%w: block #%d (%s)", ErrMissingState, number, hash)
	case BlockImported:
		// not in chain yet, verify and import below
	}

	started := time.Now()
	params, err := w.verifier.VerifyBlock(newBlockImportParams(origin, block))
	if err != nil {
		logger.Debugf("verification of block #%d (%s) failed: %s", number, hash, err)
		return 0, fmt.Errorf("%w: %s", ErrVerificationFailed, err)
	}
	if w.metrics != nil {
		w.metrics.blockVerificationTime.Observe(time.Since(started).Seconds())
	}

	started = time.Now()
	result, err = w.blockImport.ImportBlock(params)
	if w.metrics != nil {
		w.metrics.blockImportTime.Observe(time.Since(started).Seconds())
	}
	if err != nil {
		return 0, fmt.Errorf("importing block %s: %w", hash, err)
	}

	switch result {
	case BlockImported:
		return ImportedUnknown, nil
	case BlockAlreadyInChain:
		return ImportedKnown, nil
	case BlockKnownBad:
		return 0, fmt.Errorf("%w: #%d (%s)", ErrBadBlock, number, hash)
	case BlockUnknownParent:
		return 0, fmt.Errorf("%w: block #%d (%s), parent %s",
			ErrUnknownParent, number, hash, header.ParentHash)
	case BlockMissingState:
		return 0, fmt.Errorf("%w: block #%d (%s)", ErrMissingState, number, hash)
	default:
		return 0, fmt.Errorf("importing block %s: unexpected result %s", hash, result)
	}
}
