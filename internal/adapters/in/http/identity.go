package http

import (
	"context"
	"errors"
	"strconv"

	"shoplist/internal/core/domain/model/actor"
	"shoplist/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Trusted identity headers set by the gateway in front of this service.
// The workflow trusts these claims without re-validating credentials.
const (
	HeaderUserID     = "X-User-Id"
	HeaderUserRole   = "X-User-Role"
	HeaderUserActive = "X-User-Active"
)

// ErrUnauthenticated signals a request without a resolvable principal.
var ErrUnauthenticated = errors.New("request is not authenticated")

type actorContextKey struct{}

// HeaderIdentityProvider resolves the request principal from trusted
// gateway headers stashed in the request context by ActorMiddleware.
type HeaderIdentityProvider struct{}

// NewHeaderIdentityProvider creates the header-based identity provider.
func NewHeaderIdentityProvider() HeaderIdentityProvider {
	return HeaderIdentityProvider{}
}

// CurrentActor returns the principal carried by ctx, or ErrUnauthenticated
// when the request had no valid identity headers.
func (HeaderIdentityProvider) CurrentActor(ctx context.Context) (actor.Actor, error) {
	a, ok := ctx.Value(actorContextKey{}).(actor.Actor)
	if !ok {
		return actor.Actor{}, ErrUnauthenticated
	}
	return a, nil
}

// ActorMiddleware parses the identity headers into an Actor and stores it
// in the request context. Requests without valid headers pass through
// unauthenticated; handlers that need a principal fail on CurrentActor.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, err := actorFromHeaders(c)
			if err == nil {
				req := c.Request()
				c.SetRequest(req.WithContext(context.WithValue(req.Context(), actorContextKey{}, a)))
			}
			return next(c)
		}
	}
}

func actorFromHeaders(c echo.Context) (actor.Actor, error) {
	rawID := c.Request().Header.Get(HeaderUserID)
	if rawID == "" {
		return actor.Actor{}, ErrUnauthenticated
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return actor.Actor{}, ErrUnauthenticated
	}

	role, err := actor.RoleFromString(c.Request().Header.Get(HeaderUserRole))
	if err != nil {
		return actor.Actor{}, ErrUnauthenticated
	}

	// absent header means active: deactivation is the exceptional state
	active := true
	if raw := c.Request().Header.Get(HeaderUserActive); raw != "" {
		if active, err = strconv.ParseBool(raw); err != nil {
			return actor.Actor{}, ErrUnauthenticated
		}
	}

	return actor.NewActor(id, role, active)
}
