package domain

// RoleID identifies one of the planning roles. The set is data-driven
// (roles.csv), but the standard five appear throughout the constraint
// structure.
type RoleID string

const (
	RoleBackend   RoleID = "BE"
	RoleFrontend  RoleID = "FE"
	RoleQA        RoleID = "QA"
	RoleTeamLead  RoleID = "TL"
	RoleArchitect RoleID = "ARQ"
)

// DeveloperRoles is the set of roles eligible to own stories. Ownership,
// the per-owner points cap, and the mandatory-release rule apply to these
// roles only.
var DeveloperRoles = map[RoleID]bool{
	RoleBackend:  true,
	RoleFrontend: true,
}

// IsDeveloper reports whether the role can be designated story owner.
func (r RoleID) IsDeveloper() bool {
	return DeveloperRoles[r]
}
