package user

type Role string

const (
	// RoleOwner lists machines and decides booking requests.
	RoleOwner Role = "owner"
	// RoleClient browses the catalog and requests bookings.
	RoleClient Role = "client"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleClient:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
