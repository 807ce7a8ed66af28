// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"context"
	"sync"

	"github.com/libp2p/go-libp2p/core/peer"

	"github.com/ChainSafe/polkadot-sdk/lib/common"
)

// bufferedLinkCapacity is the number of pending outcomes the result
// channel holds before the worker blocks. Leaving the channel full is
// how the consumer applies backpressure to the import worker.
const bufferedLinkCapacity = 100_000

type linkAction interface {
	dispatch(link Link)
}

type blocksProcessedAction struct {
	imported int
	count    int
	results  []BlockImportResult
}

func (a blocksProcessedAction) dispatch(link Link) {
	link.BlocksProcessed(a.imported, a.count, a.results)
}

type justificationImportedAction struct {
	who    peer.ID
	hash   common.Hash
	number uint
	result JustificationImportResult
}

func (a justificationImportedAction) dispatch(link Link) {
	link.JustificationImported(a.who, a.hash, a.number, a.result)
}

type requestJustificationAction struct {
	hash   common.Hash
	number uint
}

func (a requestJustificationAction) dispatch(link Link) {
	link.RequestJustification(a.hash, a.number)
}

// newBufferedLink creates the bounded result channel pair between the
// worker (sender) and the consumer (receiver).
func newBufferedLink() (*bufferedLinkSender, *BufferedLinkReceiver) {
	actions := make(chan linkAction, bufferedLinkCapacity)
	closed := make(chan struct{})

	sender := &bufferedLinkSender{
		actions: actions,
		closed:  closed,
	}
	receiver := &BufferedLinkReceiver{
		actions: actions,
		closed:  closed,
	}
	return sender, receiver
}

// bufferedLinkSender is the worker-side endpoint. The worker is its
// only user, so sends are single-producer.
type bufferedLinkSender struct {
	actions chan linkAction
	closed  chan struct{}
}

// send delivers an action to the consumer. It blocks when the channel
// is full, and returns false once the receiver has been closed.
func (s *bufferedLinkSender) send(action linkAction) bool {
	select {
	case s.actions <- action:
		return true
	case <-s.closed:
		return false
	}
}

func (s *bufferedLinkSender) blocksProcessed(imported, count int, results []BlockImportResult) {
	s.send(blocksProcessedAction{imported: imported, count: count, results: results})
}

func (s *bufferedLinkSender) justificationImported(who peer.ID,
	hash common.Hash, number uint, result JustificationImportResult) {
	s.send(justificationImportedAction{who: who, hash: hash, number: number, result: result})
}

func (s *bufferedLinkSender) requestJustification(hash common.Hash, number uint) {
	s.send(requestJustificationAction{hash: hash, number: number})
}

// isClosed reports whether the receiver closed its endpoint.
func (s *bufferedLinkSender) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// done returns the channel closed when the receiver shuts down.
func (s *bufferedLinkSender) done() <-chan struct{} {
	return s.closed
}

// close marks the worker as terminated. Pending actions remain
// available to the receiver until drained.
func (s *bufferedLinkSender) close() {
	close(s.actions)
}

// BufferedLinkReceiver is the consumer-side endpoint of the result
// channel. The consumer either polls it or runs its async loop, and
// closes it to shut the import queue down.
type BufferedLinkReceiver struct {
	actions   chan linkAction
	closed    chan struct{}
	closeOnce sync.Once
}

// PollActions dispatches every pending outcome to the link without
// blocking. It returns false once the background worker is gone and
// all its outcomes have been consumed.
func (r *BufferedLinkReceiver) PollActions(link Link) (workerAlive bool) {
	for {
		select {
		case action, ok := <-r.actions:
			if !ok {
				return false
			}
			action.dispatch(link)
		default:
			return true
		}
	}
}

// Run dispatches outcomes to the link until the context is cancelled,
// the receiver is closed, or the background worker terminates.
func (r *BufferedLinkReceiver) Run(ctx context.Context, link Link) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.closed:
			return
		case action, ok := <-r.actions:
			if !ok {
				return
			}
			action.dispatch(link)
		}
	}
}

// Close closes the receiving end. This is the consumer-initiated
// shutdown signal: the worker notices at the top of its loop and
// terminates. Close is idempotent.
func (r *BufferedLinkReceiver) Close() {
	r.closeOnce.Do(func() {
		close(r.closed)
	})
}
