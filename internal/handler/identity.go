package handler

import (
	"net/http"
	"time"

	"github.com/tmash55/Linkty/pkg/util"

	"github.com/gin-gonic/gin"
)

// Cookie names and lifetimes for the visitor/session round-trip
const (
	VisitorCookie = "visitorId"
	SessionCookie = "sessionId"

	VisitorCookieTTL = 365 * 24 * time.Hour
	SessionCookieTTL = 30 * time.Minute
)

// identity holds the request-scoped visitor/session identifiers. Identity is
// never cached across requests; the cookie round-trip is the only carrier.
type identity struct {
	VisitorID  string
	SessionID  string
	NewVisitor bool
}

// ensureIdentity reads the visitor/session cookies and mints tokens for the
// missing ones, scheduling them on the response. Existing values are reused
// verbatim and never overwritten. Callers must only invoke this once the
// short code has resolved, so unknown codes cause no cookie churn.
func ensureIdentity(c *gin.Context) identity {
	c.SetSameSite(http.SameSiteStrictMode)

	id := identity{}

	if v, err := c.Cookie(VisitorCookie); err == nil && v != "" {
		id.VisitorID = v
	} else {
		id.VisitorID = util.NewToken()
		id.NewVisitor = true
		c.SetCookie(VisitorCookie, id.VisitorID, int(VisitorCookieTTL.Seconds()), "/", "", false, true)
	}

	if s, err := c.Cookie(SessionCookie); err == nil && s != "" {
		id.SessionID = s
	} else {
		id.SessionID = util.NewToken()
		c.SetCookie(SessionCookie, id.SessionID, int(SessionCookieTTL.Seconds()), "/", "", false, true)
	}

	return id
}
