package server

import (
	"time"

	"github.com/grochain/listing-finder/pkg/discovery"
	"github.com/grochain/listing-finder/pkg/types"
)

type DiscoverResponse[T types.Listing] struct {
	discovery.View[T]
	Sort      types.SortKey `json:"sort"`
	Source    string        `json:"source"`
	Fallback  bool          `json:"fallback"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type CollectionInfo struct {
	Name  types.Collection `json:"name"`
	Count int              `json:"count"`
}

type RefreshResponse struct {
	Queued types.Collection `json:"queued"`
}
