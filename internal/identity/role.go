package identity

// Role is the effective authorization level derived from an identity. It is
// computed on every check, never stored on the session.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "standard"
)

// ResolveRole derives the effective role from the identity's two metadata
// bags. Either bag alone carrying role "admin" is sufficient; a missing bag
// is treated as "no claim", not a fault. This is the only place the dual
// role claim is read.
func ResolveRole(id *Identity) Role {
	if id == nil {
		return RoleStandard
	}
	if bagRole(id.AppMetadata) == "admin" || bagRole(id.UserMetadata) == "admin" {
		return RoleAdmin
	}
	return RoleStandard
}

func bagRole(bag map[string]interface{}) string {
	if bag == nil {
		return ""
	}
	role, _ := bag["role"].(string)
	return role
}
