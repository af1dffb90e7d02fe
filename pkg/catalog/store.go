package catalog

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/grochain/listing-finder/pkg/discovery"
	"github.com/grochain/listing-finder/pkg/facet"
	"github.com/grochain/listing-finder/pkg/source"
	"github.com/grochain/listing-finder/pkg/storage"
	"github.com/grochain/listing-finder/pkg/types"
)

const (
	SourceNone     = "none"
	SourceApi      = "api"
	SourceReplica  = "replica"
	SourceStale    = "stale"
	SourceFallback = "fallback"
)

// Snapshot is a published collection. It is never modified after publish.
type Snapshot[T types.Listing] struct {
	Items     []T       `json:"items"`
	Source    string    `json:"source"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsFallback is true when the items are not the latest backend data.
func (s *Snapshot[T]) IsFallback() bool {
	return s.Source != SourceApi && s.Source != SourceReplica
}

type Store[T types.Listing] struct {
	name     types.Collection
	fetcher  source.Fetcher[T]
	fallback source.Fallback[T]
	cache    SnapshotCache
	disk     *storage.DiskStorage
	mu       sync.RWMutex
	current  *Snapshot[T]
}

func NewStore[T types.Listing](name types.Collection, fetcher source.Fetcher[T], fallback source.Fallback[T]) *Store[T] {
	if fallback == nil {
		fallback = source.EmptyFallback[T]()
	}
	return &Store[T]{
		name:     name,
		fetcher:  fetcher,
		fallback: fallback,
		current:  &Snapshot[T]{Items: []T{}, Source: SourceNone},
	}
}

// WithCache shares snapshots through cache.
func (s *Store[T]) WithCache(cache SnapshotCache) *Store[T] {
	s.cache = cache
	return s
}

// WithStorage keeps the last backend snapshot on disk as the fallback
// dataset of the collection.
func (s *Store[T]) WithStorage(disk *storage.DiskStorage) *Store[T] {
	s.disk = disk
	return s
}

func (s *Store[T]) Name() types.Collection {
	return s.name
}

func (s *Store[T]) Snapshot() *Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store[T]) Len() int {
	return len(s.Snapshot().Items)
}

func (s *Store[T]) publish(snap *Snapshot[T]) {
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
	listingCount.WithLabelValues(string(s.name)).Set(float64(len(snap.Items)))
	if snap.IsFallback() {
		fallbackActive.WithLabelValues(string(s.name)).Set(1)
	} else {
		fallbackActive.WithLabelValues(string(s.name)).Set(0)
	}
	refreshes.WithLabelValues(string(s.name), snap.Source).Inc()
}

// fallbackItems prefers the last good snapshot, then one shared by another
// replica, then the configured fallback.
func (s *Store[T]) fallbackItems(ctx context.Context) ([]T, string) {
	if current := s.Snapshot(); current.Source != SourceNone && current.Source != SourceFallback {
		return current.Items, SourceStale
	}
	if s.cache != nil {
		shared := &Snapshot[T]{}
		if err := s.cache.Get(ctx, s.name, shared); err == nil && !shared.IsFallback() {
			return shared.Items, SourceReplica
		}
	}
	return s.fallback(), SourceFallback
}

// validItems drops listings without an id and repeats of an id already seen.
func (s *Store[T]) validItems(items []T, from string) []T {
	kept, dropped := source.UniqueById(items)
	if dropped > 0 {
		log.Printf("Dropped %d %s listings with empty or duplicate ids from %s data", dropped, s.name, from)
	}
	return slices.Clip(kept)
}

// Refresh fetches the collection and publishes a new snapshot. The fetch
// error is returned but a usable snapshot is published either way.
func (s *Store[T]) Refresh(ctx context.Context) error {
	from := SourceApi
	res := source.Load(ctx, s.fetcher, func() []T {
		var items []T
		items, from = s.fallbackItems(ctx)
		return items
	})
	snap := &Snapshot[T]{
		Items:     s.validItems(res.Items, from),
		Source:    from,
		UpdatedAt: time.Now(),
	}
	if !res.Ok() {
		snap.Error = res.Err.Error()
		log.Printf("Failed to fetch %s, serving %s data: %v", s.name, from, res.Err)
	}
	s.publish(snap)
	if from == SourceApi {
		s.share(ctx, snap)
	}
	return res.Err
}

func (s *Store[T]) share(ctx context.Context, snap *Snapshot[T]) {
	if s.disk != nil {
		if err := s.disk.SaveDataset(s.name, snap.Items); err != nil {
			log.Printf("Failed to save %s dataset: %v", s.name, err)
		}
	}
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.name, snap); err != nil {
		log.Printf("Failed to cache %s snapshot: %v", s.name, err)
		return
	}
	if err := s.cache.Publish(ctx, s.name); err != nil {
		log.Printf("Failed to announce %s snapshot: %v", s.name, err)
	}
}

// LoadShared publishes the snapshot another replica put in the cache when it
// is newer than the one already published.
func (s *Store[T]) LoadShared(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	shared := &Snapshot[T]{}
	if err := s.cache.Get(ctx, s.name, shared); err != nil {
		return err
	}
	if current := s.Snapshot(); !shared.UpdatedAt.After(current.UpdatedAt) || shared.IsFallback() {
		return nil
	}
	shared.Items = s.validItems(shared.Items, SourceReplica)
	shared.Source = SourceReplica
	s.publish(shared)
	return nil
}

type Query struct {
	Filters  types.FilterState
	Sort     types.SortKey
	Page     int
	PageSize int
}

// Discover answers a query against the current snapshot.
func (s *Store[T]) Discover(q Query) (discovery.View[T], *Snapshot[T]) {
	snap := s.Snapshot()
	ctrl := discovery.NewControllerWith(snap.Items, q.Filters, q.Sort, q.PageSize)
	ctrl.GoToPage(q.Page)
	return ctrl.View(), snap
}

func (s *Store[T]) Facets() facet.FacetValues {
	return facet.GetFacetValues(s.Snapshot().Items)
}
