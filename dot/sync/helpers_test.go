// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"fmt"
	"sync"
	"testing"

	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/ChainSafe/polkadot-sdk/dot/types"
	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

type testEventKind byte

const (
	eventBlockImported testEventKind = iota
	eventJustificationImported
	eventJustificationRequested
)

type testEvent struct {
	kind testEventKind
	hash common.Hash
}

// testLink records every outcome it receives, so tests can assert on
// the exact observed order.
type testLink struct {
	mu          sync.Mutex
	events      []testEvent
	batches     []blocksProcessedAction
	justResults []JustificationImportResult
}

func (l *testLink) BlocksProcessed(imported, count int, results []BlockImportResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.batches = append(l.batches, blocksProcessedAction{
		imported: imported, count: count, results: results})
	for _, result := range results {
		if result.Err == nil {
			l.events = append(l.events, testEvent{kind: eventBlockImported, hash: result.Hash})
		}
	}
}

func (l *testLink) JustificationImported(_ peer.ID, hash common.Hash,
	_ uint, result JustificationImportResult) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, testEvent{kind: eventJustificationImported, hash: hash})
	l.justResults = append(l.justResults, result)
}

func (l *testLink) RequestJustification(hash common.Hash, _ uint) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.events = append(l.events, testEvent{kind: eventJustificationRequested, hash: hash})
}

func (l *testLink) eventCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.events)
}

func (l *testLink) batchCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.batches)
}

func (l *testLink) snapshot() []testEvent {
	l.mu.Lock()
	defer l.mu.Unlock()
	events := make([]testEvent, len(l.events))
	copy(events, l.events)
	return events
}

// acceptAllVerifier passes every block through unchanged.
type acceptAllVerifier struct{}

func (acceptAllVerifier) VerifyBlock(block *BlockImportParams) (*BlockImportParams, error) {
	return block, nil
}

// acceptAllBlockImport reports every block as importable and imported.
type acceptAllBlockImport struct{}

func (acceptAllBlockImport) CheckBlock(BlockCheckParams) (ImportResult, error) {
	return BlockImported, nil
}

func (acceptAllBlockImport) ImportBlock(*BlockImportParams) (ImportResult, error) {
	return BlockImported, nil
}

// acceptAllJustificationImport accepts every justification.
type acceptAllJustificationImport struct{}

func (acceptAllJustificationImport) OnStart() []JustificationRequest {
	return nil
}

func (acceptAllJustificationImport) ImportJustification(common.Hash, uint, types.Justification) error {
	return nil
}

// newTestIncomingBlock builds a block with a unique hash for the
// given number and salt.
func newTestIncomingBlock(t *testing.T, number uint, salt string) *types.IncomingBlock {
	t.Helper()

	parentHash := common.MustBlake2bHash([]byte(fmt.Sprintf("parent-%s-%d", salt, number)))
	header := types.NewHeader(parentHash, common.Hash{}, common.Hash{}, number, nil)
	return &types.IncomingBlock{
		Hash:   header.Hash(),
		Header: header,
	}
}

// newTestWorker wires a worker without starting it, so tests can
// enqueue work before the first loop iteration.
func newTestWorker(t *testing.T, verifier Verifier, blockImport BlockImport,
	justificationImport JustificationImport) (*worker, *BufferedLinkReceiver) {
	t.Helper()

	resultSender, resultPort := newBufferedLink()
	return &worker{
		resultSender:        resultSender,
		verifier:            verifier,
		blockImport:         blockImport,
		justificationImport: justificationImport,
		justifications:      newMessageQueue[importJustificationMessage](),
		blocks:              newMessageQueue[importBlocksMessage](),
	}, resultPort
}
