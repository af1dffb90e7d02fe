package common

import (
	"net"
	"net/http"

	"github.com/google/uuid"
	"github.com/grochain/listing-finder/pkg/types"
)

const sessionCookie = "gsid"

func cookieDomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func setSessionCookie(w http.ResponseWriter, r *http.Request, sessionId string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sessionId,
		Domain:   cookieDomain(r.Host),
		SameSite: http.SameSiteNoneMode,
		Secure:   true,
		HttpOnly: true,
		MaxAge:   30 * 24 * 60 * 60,
		Path:     "/",
	})
}

// HandleSessionCookie returns the caller's session id, issuing a new one
// when the cookie is missing or not a uuid.
func HandleSessionCookie(trk types.Tracking, w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if id, err := uuid.Parse(c.Value); err == nil {
			return id.String()
		}
	}
	sessionId := uuid.NewString()
	if trk != nil {
		go trk.TrackSession(sessionId, r)
	}
	setSessionCookie(w, r, sessionId)
	return sessionId
}
