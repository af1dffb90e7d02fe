package common

import (
	"errors"
	"log"
	"net/http"

	"github.com/grochain/listing-finder/pkg/common/jsoncompat"
	"github.com/grochain/listing-finder/pkg/types"
)

// HttpError lets a handler choose the status written for its error.
type HttpError struct {
	Status int
	Err    error
}

func (e *HttpError) Error() string { return e.Err.Error() }

func (e *HttpError) Unwrap() error { return e.Err }

func BadRequest(err error) error {
	return &HttpError{Status: http.StatusBadRequest, Err: err}
}

func NotFound(err error) error {
	return &HttpError{Status: http.StatusNotFound, Err: err}
}

type JsonHandlerFunc func(w http.ResponseWriter, r *http.Request, sessionId string, enc jsoncompat.Encoder) error

func JsonHandler(trk types.Tracking, fn JsonHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			RespondToOptions(w, r)
			return
		}
		sessionId := HandleSessionCookie(trk, w, r)
		genericHeaders(w, r)

		err := fn(w, r, sessionId, jsoncompat.NewEncoder(w))
		if err != nil {
			log.Printf("Error handling request %s: %v", r.URL.Path, err)
			var httpErr *HttpError
			if errors.As(err, &httpErr) {
				http.Error(w, httpErr.Error(), httpErr.Status)
			}
		}
	}
}

func genericHeaders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	if origin := r.Header.Get("Origin"); origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
}

func RespondToOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=3600")
	origin := r.Header.Get("Origin")
	if origin != "" {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
	w.Header().Set("Age", "0")
	w.WriteHeader(http.StatusAccepted)
}
