package model

// Role partitions every authenticated principal. An empty role is treated as
// unauthorized for all role-gated routes.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleCompany   Role = "company"
	RoleAdmin     Role = "admin"
	RoleNone      Role = ""
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// HomeRoute returns the client route a principal of this role lands on after
// login or when redirected away from a view it may not access.
func (r Role) HomeRoute() string {
	switch r {
	case RoleCandidate:
		return "/candidate/dashboard"
	case RoleCompany:
		return "/company/dashboard"
	case RoleAdmin:
		return "/admin/dashboard"
	}
	return "/"
}
