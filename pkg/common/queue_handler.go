package common

import (
	"slices"
	"sync"
)

type QueueProcessor[V comparable] func(items []V)

// QueueHandler batches values and hands them to a processor on a background
// goroutine. A value already waiting in the queue is not added twice.
type QueueHandler[V comparable] struct {
	mu        sync.Mutex
	queue     []V
	processor QueueProcessor[V]
	chunkSize int
	wake      chan struct{}
	done      chan struct{}
	stopped   chan struct{}
	idle      *sync.Cond
	busy      bool
}

func NewQueueHandler[V comparable](processor QueueProcessor[V], chunkSize int) *QueueHandler[V] {
	q := &QueueHandler[V]{
		queue:     make([]V, 0),
		processor: processor,
		chunkSize: max(chunkSize, 1),
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	q.idle = sync.NewCond(&q.mu)
	go q.processQueue()
	return q
}

func (h *QueueHandler[V]) Add(items ...V) {
	h.mu.Lock()
	for _, item := range items {
		if !slices.Contains(h.queue, item) {
			h.queue = append(h.queue, item)
		}
	}
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

func (h *QueueHandler[V]) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.queue)
}

// Wait blocks until the queue is empty and nothing is being processed.
func (h *QueueHandler[V]) Wait() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for len(h.queue) > 0 || h.busy {
		h.idle.Wait()
	}
}

// Stop ends the background goroutine. Queued values are dropped.
func (h *QueueHandler[V]) Stop() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
	<-h.stopped
}

func (h *QueueHandler[V]) next() []V {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.queue) == 0 {
		h.busy = false
		h.idle.Broadcast()
		return nil
	}
	n := min(h.chunkSize, len(h.queue))
	items := slices.Clone(h.queue[:n])
	h.queue = h.queue[n:]
	h.busy = true
	return items
}

func (h *QueueHandler[V]) processQueue() {
	defer close(h.stopped)
	for {
		for items := h.next(); items != nil; items = h.next() {
			h.processor(items)
		}
		select {
		case <-h.done:
			h.mu.Lock()
			h.queue = nil
			h.busy = false
			h.idle.Broadcast()
			h.mu.Unlock()
			return
		case <-h.wake:
		}
	}
}
