package source

import (
	"context"
	"errors"
	"log"
	"slices"

	"github.com/grochain/listing-finder/pkg/storage"
	"github.com/grochain/listing-finder/pkg/types"
)

type Fetcher[T types.Listing] interface {
	Fetch(ctx context.Context) ([]T, error)
}

type FetcherFunc[T types.Listing] func(ctx context.Context) ([]T, error)

func (f FetcherFunc[T]) Fetch(ctx context.Context) ([]T, error) { return f(ctx) }

// Fallback supplies the collection used when a fetch fails.
type Fallback[T types.Listing] func() []T

func EmptyFallback[T types.Listing]() Fallback[T] {
	return func() []T { return []T{} }
}

func StaticFallback[T types.Listing](items []T) Fallback[T] {
	return func() []T { return slices.Clone(items) }
}

// DatasetFallback reads the named dataset of the collection from disk and
// uses an empty collection when none is stored.
func DatasetFallback[T types.Listing](d *storage.DiskStorage, collection types.Collection) Fallback[T] {
	return func() []T {
		items := []T{}
		if err := d.LoadDataset(collection, &items); err != nil {
			if !errors.Is(err, storage.ErrNoDataset) {
				log.Printf("Failed to load %s dataset: %v", collection, err)
			}
			return []T{}
		}
		return items
	}
}

type Result[T types.Listing] struct {
	Items    []T
	Err      error
	Fallback bool
}

func (r Result[T]) Ok() bool { return r.Err == nil }

// Load fetches a collection. On failure the error is kept in the result and
// Items holds the fallback collection, so Items is always usable.
func Load[T types.Listing](ctx context.Context, fetcher Fetcher[T], fallback Fallback[T]) Result[T] {
	items, err := fetcher.Fetch(ctx)
	if err == nil {
		if items == nil {
			items = []T{}
		}
		return Result[T]{Items: items}
	}
	if fallback == nil {
		fallback = EmptyFallback[T]()
	}
	return Result[T]{Items: fallback(), Err: err, Fallback: true}
}

// FirstNonEmpty uses the first fallback that has any items.
func FirstNonEmpty[T types.Listing](fallbacks ...Fallback[T]) Fallback[T] {
	return func() []T {
		for _, fb := range fallbacks {
			if items := fb(); len(items) > 0 {
				return items
			}
		}
		return []T{}
	}
}

// UniqueById keeps the first listing of every non-empty id. The input is not
// modified; dropped is the number of listings left out.
func UniqueById[T types.Listing](items []T) (kept []T, dropped int) {
	seen := make(map[string]struct{}, len(items))
	kept = make([]T, 0, len(items))
	for _, item := range items {
		id := item.GetId()
		if id == "" {
			dropped++
			continue
		}
		if _, ok := seen[id]; ok {
			dropped++
			continue
		}
		seen[id] = struct{}{}
		kept = append(kept, item)
	}
	return kept, dropped
}
