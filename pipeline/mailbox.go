// Package pipeline implements the Active Object stages (C7) that sit
// between the acceptor pool and the client socket: one mailbox plus
// worker per algorithm, and a single sender stage that owns all writes.
package pipeline

import "sync"

// Mailbox is an unbounded FIFO queue with multi-producer/single-consumer
// semantics (§3, §5): one mutex and one condition variable protect the
// backing slice, adapted from the corpus's in-memory message queue to
// block the consumer instead of polling it.
type Mailbox[T any] struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []T
	closed bool
}

// NewMailbox returns an empty, open mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	m := &Mailbox[T]{}
	m.cond = sync.NewCond(&m.mu)
	return m
}

// Enqueue appends item to the tail and wakes the single waiting
// consumer, if any.
func (m *Mailbox[T]) Enqueue(item T) {
	m.mu.Lock()
	m.items = append(m.items, item)
	m.mu.Unlock()
	m.cond.Signal()
}

// Dequeue blocks until an item is available or the mailbox is closed. ok
// is false only once the mailbox is closed and drained.
func (m *Mailbox[T]) Dequeue() (item T, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for len(m.items) == 0 && !m.closed {
		m.cond.Wait()
	}
	if len(m.items) == 0 {
		return item, false
	}
	item = m.items[0]
	m.items = m.items[1:]
	return item, true
}

// Close marks the mailbox as shutting down and wakes the consumer so a
// pending Dequeue returns the zero value and false once drained. Safe to call more
// than once.
func (m *Mailbox[T]) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
	m.cond.Broadcast()
}
