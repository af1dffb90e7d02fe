package common

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueHandlerProcessesInChunks(t *testing.T) {
	var mu sync.Mutex
	var batches [][]int
	q := NewQueueHandler(func(items []int) {
		mu.Lock()
		batches = append(batches, items)
		mu.Unlock()
	}, 2)
	defer q.Stop()

	q.Add(1, 2, 3, 4, 5)
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	var all []int
	for _, b := range batches {
		assert.LessOrEqual(t, len(b), 2)
		all = append(all, b...)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, all)
	assert.Equal(t, 0, q.Len())
}

func TestQueueHandlerSkipsQueuedDuplicates(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	var seen []string
	q := NewQueueHandler(func(items []string) {
		if items[0] == "block" {
			close(started)
			<-release
		}
		mu.Lock()
		seen = append(seen, items...)
		mu.Unlock()
	}, 1)
	defer q.Stop()

	q.Add("block")
	<-started
	q.Add("products", "payments", "products")
	assert.Equal(t, 2, q.Len())
	close(release)
	q.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"block", "products", "payments"}, seen)
}

func TestQueueHandlerWaitWhenIdle(t *testing.T) {
	q := NewQueueHandler(func(items []int) {}, 1)
	q.Wait()
	q.Stop()
	q.Stop()
}
