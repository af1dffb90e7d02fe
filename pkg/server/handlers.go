package server

import (
	"net/http"
	"time"

	"github.com/grochain/listing-finder/pkg/catalog"
	"github.com/grochain/listing-finder/pkg/common"
	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noDiscoveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grochain_finder_discoveries_total",
		Help: "The total number of answered discover requests",
	}, []string{"collection"})
	noEmptyResults = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grochain_finder_empty_results_total",
		Help: "Discover requests that matched nothing",
	}, []string{"collection"})
	discoverDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "grochain_finder_discover_seconds",
		Help:    "Time spent answering discover requests",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"collection"})
)

func discoverHandler[T types.Listing](trk types.Tracking, store *catalog.Store[T]) common.JsonHandlerFunc {
	name := string(store.Name())
	return func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		s := time.Now()
		sr, err := GetDiscoverRequest(r)
		if err != nil {
			return common.BadRequest(err)
		}
		view, snap := store.Discover(sr.CatalogQuery())
		discoverDuration.WithLabelValues(name).Observe(time.Since(s).Seconds())
		noDiscoveries.WithLabelValues(name).Inc()
		if view.Shown == 0 {
			noEmptyResults.WithLabelValues(name).Inc()
		}
		if trk != nil {
			go trk.TrackDiscovery(sessionId, types.DiscoveryEvent{
				Collection: store.Name(),
				Filters:    sr.FilterState,
				Sort:       types.SortKey(sr.Sort),
				Page:       view.Page,
				Shown:      view.Shown,
				Total:      view.Total,
				Fallback:   snap.IsFallback(),
			}, r)
		}
		w.Header().Set("Cache-Control", "private, stale-while-revalidate=10")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(DiscoverResponse[T]{
			View:      view,
			Sort:      types.SortKey(sr.Sort),
			Source:    snap.Source,
			Fallback:  snap.IsFallback(),
			UpdatedAt: snap.UpdatedAt,
		})
	}
}

func facetsHandler[T types.Listing](store *catalog.Store[T]) common.JsonHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		w.Header().Set("Cache-Control", "private, stale-while-revalidate=60")
		w.WriteHeader(http.StatusOK)
		return enc.Encode(store.Facets())
	}
}

func (ws *WebServer) refreshHandler(name types.Collection) common.JsonHandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
		ws.Catalog.RequestRefresh(name)
		w.WriteHeader(http.StatusAccepted)
		return enc.Encode(RefreshResponse{Queued: name})
	}
}

func (ws *WebServer) collections(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error {
	ret := make([]CollectionInfo, 0)
	for _, name := range ws.Catalog.Names() {
		col, _ := ws.Catalog.Get(name)
		ret = append(ret, CollectionInfo{Name: name, Count: col.Len()})
	}
	w.WriteHeader(http.StatusOK)
	return enc.Encode(ret)
}
