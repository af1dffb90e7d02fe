package catalog

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/grochain/listing-finder/pkg/common"
	"github.com/grochain/listing-finder/pkg/types"
)

type Collection interface {
	Name() types.Collection
	Refresh(ctx context.Context) error
	LoadShared(ctx context.Context) error
	Len() int
}

// Catalog owns the collections and refreshes them in the background.
type Catalog struct {
	mu          sync.RWMutex
	collections map[types.Collection]Collection
	queue       *common.QueueHandler[types.Collection]
	ctx         context.Context
	cancel      context.CancelFunc
	timeout     time.Duration
}

func NewCatalog(fetchTimeout time.Duration) *Catalog {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Catalog{
		collections: make(map[types.Collection]Collection),
		ctx:         ctx,
		cancel:      cancel,
		timeout:     fetchTimeout,
	}
	c.queue = common.NewQueueHandler(c.processRefreshes, 1)
	return c
}

func (c *Catalog) Add(collection Collection) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collections[collection.Name()] = collection
}

func (c *Catalog) Get(name types.Collection) (Collection, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	col, ok := c.collections[name]
	return col, ok
}

func (c *Catalog) Names() []types.Collection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ret := make([]types.Collection, 0, len(c.collections))
	for _, name := range types.Collections {
		if _, ok := c.collections[name]; ok {
			ret = append(ret, name)
		}
	}
	return ret
}

func (c *Catalog) refresh(ctx context.Context, col Collection) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	s := time.Now()
	err := col.Refresh(ctx)
	log.Printf("Refreshed %s: %d listings in %v", col.Name(), col.Len(), time.Since(s))
	return err
}

func (c *Catalog) processRefreshes(names []types.Collection) {
	for _, name := range names {
		col, ok := c.Get(name)
		if !ok {
			log.Printf("Refresh requested for unregistered collection %s", name)
			continue
		}
		_ = c.refresh(c.ctx, col)
	}
}

// RefreshAll refreshes every collection now. Every collection gets a
// snapshot even when its fetch fails; the fetch errors are joined.
func (c *Catalog) RefreshAll(ctx context.Context) error {
	var errs []error
	for _, name := range c.Names() {
		col, _ := c.Get(name)
		errs = append(errs, c.refresh(ctx, col))
	}
	return errors.Join(errs...)
}

func (c *Catalog) RequestRefresh(names ...types.Collection) {
	c.queue.Add(names...)
}

// Wait blocks until every requested refresh is done.
func (c *Catalog) Wait() {
	c.queue.Wait()
}

func (c *Catalog) HandleChange(change types.ListingChange) {
	if _, ok := c.Get(change.Collection); !ok {
		log.Printf("Ignoring change for unknown collection %q", change.Collection)
		return
	}
	c.RequestRefresh(change.Collection)
}

// StartPeriodicRefresh queues a refresh of every collection each interval.
func (c *Catalog) StartPeriodicRefresh(interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-c.ctx.Done():
				return
			case <-ticker.C:
				c.RequestRefresh(c.Names()...)
			}
		}
	}()
}

// ListenShared picks up snapshots published by other replicas.
func (c *Catalog) ListenShared(cache SnapshotCache) error {
	return cache.Subscribe(c.ctx, func(name types.Collection) {
		col, ok := c.Get(name)
		if !ok {
			return
		}
		if err := col.LoadShared(c.ctx); err != nil {
			log.Printf("Failed to load shared %s snapshot: %v", name, err)
		}
	})
}

// Close stops background refreshes. It matches common.ShutdownHook.
func (c *Catalog) Close(_ context.Context) error {
	c.cancel()
	c.queue.Stop()
	return nil
}
