package tracking

import "github.com/grochain/listing-finder/pkg/types"

const (
	SessionEvent   uint16 = 0
	DiscoveryEvent uint16 = 1
)

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Context   string `json:"context,omitempty"`
	Event     uint16 `json:"event"`
	Timestamp int64  `json:"ts"`
}

type Session struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

type Discovery struct {
	*BaseEvent
	types.DiscoveryEvent
	Referer string `json:"referer,omitempty"`
}
