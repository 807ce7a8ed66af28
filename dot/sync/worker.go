// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"errors"
	"time"

	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/ChainSafe/polkadot-sdk/dot/types"
	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

type importBlocksMessage struct {
	origin types.BlockOrigin
	blocks []*types.IncomingBlock
}

type importJustificationMessage struct {
	who           peer.ID
	hash          common.Hash
	number        uint
	justification types.Justification
}

// worker drains the two input queues and produces outcomes on the
// result channel. There is exactly one worker goroutine per queue
// instance; it exclusively owns all its state.
type worker struct {
	resultSender        *bufferedLinkSender
	verifier            Verifier
	blockImport         BlockImport
	justificationImport JustificationImport // optional
	justifications      *messageQueue[importJustificationMessage]
	blocks              *messageQueue[importBlocksMessage]
	metrics             *queueMetrics // optional
}

// run is the worker loop. Every iteration checks consumer liveness,
// drains the justification queue to exhaustion, then advances block
// import by at most one batch. It terminates when the consumer closes
// the result channel or when either input queue is closed and drained.
func (w *worker) run() {
	defer func() {
		w.justifications.close()
		w.blocks.close()
		w.resultSender.close()
	}()

	if w.justificationImport != nil {
		for _, request := range w.justificationImport.OnStart() {
			w.resultSender.requestJustification(request.Hash, request.Number)
		}
	}

	for {
		if w.resultSender.isClosed() {
			logger.Debug("stopping block import because result channel was closed")
			return
		}

		// justifications always go first
		if !w.drainJustifications() {
			logger.Debug("stopping block import because justification channel was closed")
			return
		}

		message, ok, closed := w.blocks.popFront()
		if closed {
			logger.Debug("stopping block import because the import channel was closed")
			return
		}

		if ok {
			if !w.importBlocks(message.origin, message.blocks) {
				return
			}
			continue
		}

		// no work on either queue, park until something arrives
		select {
		case <-w.justifications.wait():
		case <-w.blocks.wait():
		case <-w.resultSender.done():
		}
	}
}

// drainJustifications processes every queued justification in arrival
// order. It returns false when the justification queue is closed and
// drained, which is fatal to the worker.
func (w *worker) drainJustifications() bool {
	for {
		message, ok, closed := w.justifications.popFront()
		if closed {
			return false
		}
		if !ok {
			return true
		}

		w.importJustification(message.who, message.hash,
			message.number, message.justification)
	}
}

func (w *worker) importJustification(who peer.ID, hash common.Hash,
	number uint, justification types.Justification) {
	started := time.Now()

	result := JustificationImportFailure
	if w.justificationImport != nil {
		err := w.justificationImport.ImportJustification(hash, number, justification)
		switch {
		case err == nil:
			result = JustificationImportSuccess
		case errors.Is(err, ErrOutdatedJustification):
			result = JustificationImportOutdated
		default:
			logger.Debugf(
				"justification import failed for block %s (#%d) from peer %s: %s",
				hash, number, who, err)
		}
	}

	if w.metrics != nil {
		w.metrics.justificationImportTime.Observe(time.Since(started).Seconds())
	}

	w.resultSender.justificationImported(who, hash, number, result)
}
