package source

import (
	"context"
	"errors"
	"testing"

	"github.com/grochain/listing-finder/pkg/storage"
	"github.com/grochain/listing-finder/pkg/types"
)

func TestLoadSuccess(t *testing.T) {
	fetcher := FetcherFunc[*types.Product](func(ctx context.Context) ([]*types.Product, error) {
		return nil, nil
	})
	res := Load[*types.Product](context.Background(), fetcher, nil)
	if !res.Ok() || res.Fallback || res.Items == nil {
		t.Errorf("Expected empty successful result, got %+v", res)
	}
}

func TestLoadFailureUsesFallback(t *testing.T) {
	failure := errors.New("timeout")
	fetcher := FetcherFunc[*types.Product](func(ctx context.Context) ([]*types.Product, error) {
		return nil, failure
	})
	mock := types.MockProducts()
	res := Load(context.Background(), Fetcher[*types.Product](fetcher), StaticFallback(mock))
	if res.Ok() || !errors.Is(res.Err, failure) || !res.Fallback {
		t.Errorf("Expected failed result with fallback, got %+v", res)
	}
	if len(res.Items) != len(mock) {
		t.Errorf("Expected %d fallback items, got %d", len(mock), len(res.Items))
	}
	res.Items[0] = nil
	if mock[0] == nil {
		t.Errorf("Fallback items are shared with the caller")
	}

	res = Load[*types.Product](context.Background(), fetcher, nil)
	if res.Items == nil || len(res.Items) != 0 {
		t.Errorf("Expected empty fallback, got %v", res.Items)
	}
}

func TestDatasetFallback(t *testing.T) {
	disk := storage.NewDiskStorage(t.TempDir())
	fallback := DatasetFallback[*types.Payment](disk, types.Payments)
	if items := fallback(); items == nil || len(items) != 0 {
		t.Errorf("Expected empty collection without dataset, got %v", items)
	}
	amount := 10.0
	if err := disk.SaveDataset(types.Payments, []*types.Payment{{Id: "p1", Amount: &amount}}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	items := fallback()
	if len(items) != 1 || items[0].Id != "p1" || *items[0].Amount != 10 {
		t.Errorf("Expected stored payment, got %v", items)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	mock := types.MockProducts()
	disk := storage.NewDiskStorage(t.TempDir())
	fallback := FirstNonEmpty(DatasetFallback[*types.Product](disk, types.Products), StaticFallback(mock))
	if items := fallback(); len(items) != len(mock) {
		t.Errorf("Expected mock products without dataset, got %d", len(items))
	}
	if err := disk.SaveDataset(types.Products, mock[:2]); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if items := fallback(); len(items) != 2 {
		t.Errorf("Expected stored dataset, got %d", len(items))
	}
	if items := FirstNonEmpty[*types.Product]()(); items == nil || len(items) != 0 {
		t.Errorf("Expected empty collection, got %v", items)
	}
}

func TestUniqueById(t *testing.T) {
	items := []*types.Payment{{Id: "1", Payer: "first"}, {Id: "1", Payer: "second"}, {Id: ""}, {Id: "2"}}
	kept, dropped := UniqueById(items)
	if dropped != 2 || len(kept) != 2 {
		t.Fatalf("Expected 2 kept and 2 dropped, got %d and %d", len(kept), dropped)
	}
	if kept[0].Payer != "first" || kept[1].Id != "2" {
		t.Errorf("Expected first occurrences in order, got %+v %+v", kept[0], kept[1])
	}
	if len(items) != 4 {
		t.Errorf("Input was modified")
	}
	if kept, dropped := UniqueById([]*types.Payment(nil)); kept == nil || dropped != 0 {
		t.Errorf("Expected empty result, got %v %d", kept, dropped)
	}
}
