package messaging

type ChangeTopic string

const (
	ListingChanged ChangeTopic = "listing_changed"
	Tracking       ChangeTopic = "finder_tracking"
)
