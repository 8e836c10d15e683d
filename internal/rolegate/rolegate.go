// Package rolegate decides whether a role-restricted view may render for a
// given session snapshot. The decision is a pure table over the snapshot and
// the view's allowed roles; no network calls occur here.
package rolegate

import (
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/session"
)

type Outcome int

const (
	// Pending means the session is still loading and no redirect decision
	// has been made yet.
	Pending Outcome = iota
	// Render means the protected view may render.
	Render
	// Redirect means the caller must navigate to Target instead.
	Redirect
)

type Decision struct {
	Outcome Outcome
	Target  string
}

const LoginRoute = "/login"

// Decide applies the access-control table:
//  1. loading -> Pending (avoids redirect flicker)
//  2. not authenticated -> redirect to /login
//  3. role allowed -> render
//  4. otherwise -> redirect to the role's own home route; an unset or
//     unknown role lands on the public home route.
func Decide(snap session.Snapshot, allowed []model.Role) Decision {
	if snap.IsLoading {
		return Decision{Outcome: Pending}
	}
	if !snap.IsAuthenticated || snap.Identity == nil {
		return Decision{Outcome: Redirect, Target: LoginRoute}
	}
	for _, role := range allowed {
		if snap.Identity.Role == role {
			return Decision{Outcome: Render}
		}
	}
	return Decision{Outcome: Redirect, Target: snap.Identity.Role.HomeRoute()}
}
