package server

import (
	"net/http"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/grochain/listing-finder/pkg/catalog"
	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/discovery"
	"github.com/grochain/listing-finder/pkg/types"
)

type DiscoverRequest struct {
	types.FilterState
	Sort     string `json:"sort" schema:"sort,default:newest"`
	Page     int    `json:"page" schema:"page,default:1"`
	PageSize int    `json:"pageSize" schema:"size,default:12"`
}

const maxPageSize = 200
const maxPage = 10000

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

func clamp[T int | float64](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func (s *DiscoverRequest) Sanitize() {
	s.Page = clamp(s.Page, 1, maxPage)
	if s.PageSize == 0 {
		s.PageSize = discovery.DefaultPageSize
	}
	s.PageSize = clamp(s.PageSize, 1, maxPageSize)
	key, _ := types.ParseSortKey(s.Sort)
	s.Sort = string(key)
}

func (s *DiscoverRequest) CatalogQuery() catalog.Query {
	return catalog.Query{
		Filters:  s.FilterState,
		Sort:     types.SortKey(s.Sort),
		Page:     s.Page,
		PageSize: s.PageSize,
	}
}

func makeBaseDiscoverRequest() *DiscoverRequest {
	return &DiscoverRequest{
		FilterState: types.DefaultFilterState(),
		Sort:        string(types.DefaultSort),
		Page:        1,
		PageSize:    discovery.DefaultPageSize,
	}
}

func queryFromRequestQuery(query url.Values, result *DiscoverRequest) error {
	return decoder.Decode(result, query)
}

// GetDiscoverRequest reads query parameters on GET and a json body otherwise.
func GetDiscoverRequest(r *http.Request) (*DiscoverRequest, error) {
	sr := makeBaseDiscoverRequest()
	var err error
	if r.Method == http.MethodGet {
		err = queryFromRequestQuery(r.URL.Query(), sr)
	} else {
		err = jsoncompat.NewDecoder(r.Body).Decode(sr)
	}
	sr.Sanitize()
	return sr, err
}
