package domain

// Decision is the outcome of an authorization check
type Decision string

const (
	DecisionAllow         Decision = "allow"
	DecisionDenyNoSession Decision = "deny_no_session"
	DecisionDenyWrongRole Decision = "deny_wrong_role"
)

// Authorize maps the current identity and a route's required role set to a
// decision. An empty role set means any authenticated identity passes.
// Membership is exact: admin does not imply member.
func Authorize(identity *Identity, requiredRoles []Role) Decision {
	if identity == nil {
		return DecisionDenyNoSession
	}

	if len(requiredRoles) == 0 {
		return DecisionAllow
	}

	for _, role := range requiredRoles {
		if identity.Role == role {
			return DecisionAllow
		}
	}

	return DecisionDenyWrongRole
}
