// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"container/list"
	"sync"
)

// messageQueue is an unbounded multi-producer single-consumer queue.
// Producers never block; the consumer parks on the wait channel when
// the queue is empty. Closing the queue still lets the consumer drain
// messages pushed before the close.
type messageQueue[M any] struct {
	mu     sync.Mutex
	queue  *list.List
	closed bool
	signal chan struct{} // one slot, wakeup for the consumer
}

func newMessageQueue[M any]() *messageQueue[M] {
	return &messageQueue[M]{
		queue:  list.New(),
		signal: make(chan struct{}, 1),
	}
}

// push enqueues the message and wakes the consumer.
// It returns false if the queue is closed.
func (q *messageQueue[M]) push(message M) (ok bool) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.queue.PushBack(message)
	q.mu.Unlock()

	q.wake()
	return true
}

// popFront pops the front message, if any. closed is only reported
// once the queue is both closed and fully drained.
func (q *messageQueue[M]) popFront() (value M, ok, closed bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	e := q.queue.Front()
	if e == nil {
		return value, false, q.closed
	}

	q.queue.Remove(e)
	return e.Value.(M), true, false
}

// close closes the queue for pushes and wakes the consumer.
// It is idempotent.
func (q *messageQueue[M]) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

func (q *messageQueue[M]) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

// wait returns the channel signalled on every push and on close.
// A received signal is only a hint; the consumer re-checks the queue.
func (q *messageQueue[M]) wait() <-chan struct{} {
	return q.signal
}
