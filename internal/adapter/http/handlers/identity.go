package handlers

import (
	"net/http"
	"strings"

	"nimbushost/pkg"

	"github.com/gin-gonic/gin"
)

// Caller identity arrives as a header set by the fronting gateway; the
// service trusts it and scopes every user-facing read and write with it.
const userIDHeader = "X-User-ID"

var errMissingIdentity = pkg.NewDomainErrorSimple("MISSING_IDENTITY", "X-User-ID header is required", http.StatusUnauthorized)

func currentUserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(userIDHeader))
}

// requireUserID aborts with 401 when the identity header is absent.
func requireUserID(c *gin.Context) (string, bool) {
	userID := currentUserID(c)
	if userID == "" {
		c.JSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
		return "", false
	}
	return userID, true
}
