package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/rolegate"
	"github.com/talentpulse/backend/internal/service"
	"github.com/talentpulse/backend/internal/session"
	"github.com/talentpulse/backend/internal/util"
)

// SessionKey is the locals key the hydrated session snapshot lives under.
const SessionKey = "session"

// Authenticate builds a per-request session from the bearer token. Requests
// without a valid token still pass through with an unauthenticated snapshot;
// access decisions belong to RequireRoles.
func Authenticate(tokens service.TokenServiceInterface, loader session.Loader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store := session.NewStore(loader)

		if token := bearerToken(c); token != "" {
			if claims, err := tokens.Validate(token); err == nil {
				store.Begin(claims.UserID)
				if err := store.Hydrate(c.UserContext()); err != nil {
					// A failed hydration leaves an unauthenticated snapshot;
					// the request proceeds as anonymous.
					store.Teardown()
				}
			}
		}

		c.Locals(SessionKey, store.Snapshot())
		return c.Next()
	}
}

// RequireRoles gates a route group on the session snapshot. The gate decision
// carries the route the client should navigate to when access is denied.
func RequireRoles(allowed ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := Session(c)
		decision := rolegate.Decide(snap, allowed)
		switch decision.Outcome {
		case rolegate.Render:
			return c.Next()
		case rolegate.Pending:
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusServiceUnavailable,
				Message: "session still loading",
			})
		}

		code := fiber.StatusForbidden
		message := "you do not have access to this resource"
		if decision.Target == rolegate.LoginRoute {
			code = fiber.StatusUnauthorized
			message = "sign in to continue"
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    code,
			Message: message,
			Details: fiber.Map{"redirect": decision.Target},
		})
	}
}

// Session returns the snapshot stored by Authenticate, or an empty
// unauthenticated snapshot when the middleware did not run.
func Session(c *fiber.Ctx) session.Snapshot {
	if snap, ok := c.Locals(SessionKey).(session.Snapshot); ok {
		return snap
	}
	return session.Snapshot{}
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
