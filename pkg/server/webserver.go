package server

import (
	"net/http"

	"github.com/grochain/listing-finder/pkg/catalog"
	"github.com/grochain/listing-finder/pkg/common"
	"github.com/grochain/listing-finder/pkg/types"
)

type WebServer struct {
	Catalog  *catalog.Catalog
	Tracking types.Tracking
	mux      *http.ServeMux
}

func NewWebServer(cat *catalog.Catalog, trk types.Tracking) *WebServer {
	ws := &WebServer{
		Catalog:  cat,
		Tracking: trk,
		mux:      http.NewServeMux(),
	}
	ws.mux.HandleFunc("GET /api/collections", common.JsonHandler(trk, ws.collections))
	return ws
}

// Register adds the store to the catalog and exposes it under
// /api/{collection}/.
func Register[T types.Listing](ws *WebServer, store *catalog.Store[T]) {
	ws.Catalog.Add(store)
	base := "/api/" + string(store.Name())
	discover := common.JsonHandler(ws.Tracking, discoverHandler(ws.Tracking, store))
	ws.mux.HandleFunc("GET "+base+"/discover", discover)
	ws.mux.HandleFunc("POST "+base+"/discover", discover)
	ws.mux.HandleFunc("OPTIONS "+base+"/discover", discover)
	ws.mux.HandleFunc("GET "+base+"/facets", common.JsonHandler(ws.Tracking, facetsHandler(store)))
	ws.mux.HandleFunc("POST "+base+"/refresh", common.JsonHandler(ws.Tracking, ws.refreshHandler(store.Name())))
}

func (ws *WebServer) Handler() http.Handler {
	return ws.mux
}
