package types

import (
	"net/http"
)

// DiscoveryEvent describes one answered discover request.
type DiscoveryEvent struct {
	Collection Collection  `json:"collection"`
	Filters    FilterState `json:"filters"`
	Sort       SortKey     `json:"sort"`
	Page       int         `json:"page"`
	Shown      int         `json:"shown"`
	Total      int         `json:"total"`
	Fallback   bool        `json:"fallback,omitempty"`
}

type Tracking interface {
	TrackSession(sessionId string, r *http.Request)
	TrackDiscovery(sessionId string, event DiscoveryEvent, r *http.Request)
	Close() error
}
