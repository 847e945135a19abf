// Package gateway hosts the edge server: it verifies access tokens, enforces
// route role requirements, and forwards requests to the downstream services.
package gateway

import (
	"net/http/httputil"
	"net/url"

	deliverycontext "estate/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// newProxyHandler builds an echo handler forwarding to the given downstream
// base URL. The request ID assigned at the edge rides along so downstream
// logs correlate with gateway logs.
func newProxyHandler(rawURL string) (echo.HandlerFunc, error) {
	target, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid downstream url %q", rawURL)
	}

	proxy := httputil.NewSingleHostReverseProxy(target)

	return func(c echo.Context) error {
		req := c.Request()
		req.Header.Set(deliverycontext.HeaderXRequestID, deliverycontext.GetRequestID(c))

		// Downstreams trust these headers; strip whatever the client sent
		// and set them from the verified identity only.
		req.Header.Del(headerUserID)
		req.Header.Del(headerUserRoles)
		if identity := deliverycontext.GetIdentity(c); identity != nil {
			req.Header.Set(headerUserID, identity.UserID.String())
			for _, role := range identity.Roles.ToStrings() {
				req.Header.Add(headerUserRoles, role)
			}
		}

		proxy.ServeHTTP(c.Response(), req)

		return nil
	}, nil
}

const (
	headerUserID    = "X-User-Id"
	headerUserRoles = "X-User-Roles"
)
