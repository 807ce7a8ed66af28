// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"context"

	"github.com/libp2p/go-libp2p/core/peer"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ChainSafe/polkadot-sdk/dot/types"
	"github.com/ChainSafe/polkadot-sdk/internal/log"
	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "sync"))

// Config holds the collaborators of an import queue.
type Config struct {
	// Verifier verifies blocks before import. Required.
	Verifier Verifier
	// BlockImport commits blocks to the chain. Required.
	BlockImport BlockImport
	// JustificationImport applies finality justifications. Optional;
	// without it every justification import reports a failure outcome.
	JustificationImport JustificationImport
	// Registerer registers the queue metrics. Optional; metrics are
	// disabled when nil or when registration fails.
	Registerer prometheus.Registerer
}

// ImportQueue imports blocks and justifications sequentially in a
// background worker, with pluggable verification. Work is scheduled
// through the handle returned by Service and outcomes are delivered
// to the consumer's Link, either by polling or through Run.
type ImportQueue struct {
	handle     *queueHandle
	resultPort *BufferedLinkReceiver
}

// NewImportQueue creates an import queue and starts its background
// worker. If a JustificationImport is configured, its OnStart hook
// runs inside the worker before any queued work, and a justification
// request is emitted for every block it reports.
func NewImportQueue(cfg Config) (*ImportQueue, error) {
	if cfg.Verifier == nil {
		return nil, errNilVerifier
	}
	if cfg.BlockImport == nil {
		return nil, errNilBlockImport
	}

	resultSender, resultPort := newBufferedLink()

	justifications := newMessageQueue[importJustificationMessage]()
	blocks := newMessageQueue[importBlocksMessage]()

	w := &worker{
		resultSender:        resultSender,
		verifier:            cfg.Verifier,
		blockImport:         cfg.BlockImport,
		justificationImport: cfg.JustificationImport,
		justifications:      justifications,
		blocks:              blocks,
		metrics:             newQueueMetrics(cfg.Registerer),
	}
	go w.run()

	return &ImportQueue{
		handle: &queueHandle{
			justifications: justifications,
			blocks:         blocks,
		},
		resultPort: resultPort,
	}, nil
}

// Service returns the handle used to schedule work on the queue.
func (q *ImportQueue) Service() ImportQueueService {
	return q.handle
}

// PollActions dispatches every pending outcome to the link without
// blocking.
func (q *ImportQueue) PollActions(link Link) {
	if !q.resultPort.PollActions(link) {
		logger.Error("poll actions: background import task is no longer alive")
	}
}

// Run dispatches outcomes to the link until the context is cancelled
// or the queue terminates.
func (q *ImportQueue) Run(ctx context.Context, link Link) {
	q.resultPort.Run(ctx, link)
}

// Stop flushes the input queues and closes the result channel, which
// terminates the background worker. It is idempotent.
func (q *ImportQueue) Stop() {
	q.handle.Close()
	q.resultPort.Close()
}

// queueHandle implements ImportQueueService on top of the two
// unbounded input queues. It holds no other state, so it can be
// shared freely.
type queueHandle struct {
	justifications *messageQueue[importJustificationMessage]
	blocks         *messageQueue[importBlocksMessage]
}

func (h *queueHandle) ImportBlocks(origin types.BlockOrigin, blocks []*types.IncomingBlock) {
	if len(blocks) == 0 {
		return
	}

	logger.Tracef("scheduling %d blocks for import", len(blocks))

	if !h.blocks.push(importBlocksMessage{origin: origin, blocks: blocks}) {
		logger.Error("import blocks: background import task is no longer alive")
	}
}

func (h *queueHandle) ImportJustifications(who peer.ID, hash common.Hash,
	number uint, justifications types.Justifications) {
	for _, justification := range justifications {
		message := importJustificationMessage{
			who:           who,
			hash:          hash,
			number:        number,
			justification: justification,
		}
		if !h.justifications.push(message) {
			logger.Error("import justification: background import task is no longer alive")
		}
	}
}

func (h *queueHandle) Close() {
	h.justifications.close()
	h.blocks.close()
}
