package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	refreshes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grochain_finder_refreshes_total",
		Help: "Collection refreshes by outcome",
	}, []string{"collection", "source"})
	listingCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grochain_finder_listings",
		Help: "Listings in the published snapshot",
	}, []string{"collection"})
	fallbackActive = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "grochain_finder_fallback_active",
		Help: "1 while a collection is served from fallback data",
	}, []string{"collection"})
)
