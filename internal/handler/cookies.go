package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the signed session token
const SessionCookieName = "auth"

// setSessionCookie attaches the session token as an HTTP-only, Lax,
// whole-application cookie. Secure is set in production only so local
// development over plain HTTP still works.
func setSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// clearSessionCookie logs the client out. There is no server-side
// revocation: a replayed token stays valid until its own expiry.
func clearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
