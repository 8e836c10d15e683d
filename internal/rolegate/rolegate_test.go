package rolegate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/talentpulse/backend/internal/model"
	"github.com/talentpulse/backend/internal/session"
)

func authenticated(role model.Role) session.Snapshot {
	return session.Snapshot{
		Identity:        &model.Identity{ID: uuid.New(), Role: role},
		IsAuthenticated: true,
	}
}

func TestDecide_LoadingNeverRedirects(t *testing.T) {
	// Even an unauthenticated snapshot must not redirect while loading.
	snap := session.Snapshot{IsLoading: true, IsAuthenticated: false}
	d := Decide(snap, []model.Role{model.RoleAdmin})
	if d.Outcome != Pending {
		t.Fatalf("expected Pending while loading, got %v (target %q)", d.Outcome, d.Target)
	}
}

func TestDecide_UnauthenticatedRedirectsToLogin(t *testing.T) {
	d := Decide(session.Snapshot{}, []model.Role{model.RoleCandidate})
	if d.Outcome != Redirect || d.Target != LoginRoute {
		t.Fatalf("expected redirect to %s, got %v %q", LoginRoute, d.Outcome, d.Target)
	}
}

func TestDecide_AllowedRoleRenders(t *testing.T) {
	cases := []struct {
		role    model.Role
		allowed []model.Role
	}{
		{model.RoleCandidate, []model.Role{model.RoleCandidate}},
		{model.RoleCompany, []model.Role{model.RoleCompany, model.RoleAdmin}},
		{model.RoleAdmin, []model.Role{model.RoleCompany, model.RoleAdmin}},
	}
	for _, tc := range cases {
		d := Decide(authenticated(tc.role), tc.allowed)
		if d.Outcome != Render {
			t.Fatalf("role %q allowed %v: expected Render, got %v", tc.role, tc.allowed, d.Outcome)
		}
	}
}

func TestDecide_ExcludedRoleRedirectsHome(t *testing.T) {
	roles := []model.Role{model.RoleCandidate, model.RoleCompany, model.RoleAdmin}
	allowedSets := [][]model.Role{
		{model.RoleCandidate},
		{model.RoleCompany},
		{model.RoleAdmin},
		{model.RoleCompany, model.RoleAdmin},
	}
	for _, role := range roles {
		for _, allowed := range allowedSets {
			if contains(allowed, role) {
				continue
			}
			d := Decide(authenticated(role), allowed)
			if d.Outcome != Render && d.Outcome != Redirect {
				t.Fatalf("unexpected outcome %v", d.Outcome)
			}
			if d.Outcome == Render {
				t.Fatalf("role %q must never render view allowing %v", role, allowed)
			}
			if d.Target != role.HomeRoute() {
				t.Fatalf("role %q: expected redirect to %s, got %s", role, role.HomeRoute(), d.Target)
			}
		}
	}
}

func TestDecide_UnknownRoleRedirectsToPublicHome(t *testing.T) {
	d := Decide(authenticated(model.RoleNone), []model.Role{model.RoleAdmin})
	if d.Outcome != Redirect || d.Target != "/" {
		t.Fatalf("expected redirect to /, got %v %q", d.Outcome, d.Target)
	}
}

func contains(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
