package types

import "errors"

type Collection string

const (
	Products  Collection = "products"
	Partners  Collection = "partners"
	Payments  Collection = "payments"
	Shipments Collection = "shipments"
	Approvals Collection = "approvals"
)

var Collections = []Collection{Products, Partners, Payments, Shipments, Approvals}

var ErrUnknownCollection = errors.New("unknown collection")

func ParseCollection(s string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == s {
			return c, nil
		}
	}
	return "", ErrUnknownCollection
}

// ListingChange is published when the backend changes a collection.
type ListingChange struct {
	Collection Collection `json:"collection"`
	Ids        []string   `json:"ids,omitempty"`
}
