package domain

// Role identifies the kind of user performing an operation. Authentication
// itself happens upstream; this core only needs the resolved identity.
type Role string

const (
	RoleAdvertiser Role = "advertiser"
	RoleInfluencer Role = "influencer"
	RoleAdmin      Role = "admin"
)

// Actor is the authenticated caller of a usecase operation.
type Actor struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether the actor has administrator privileges.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
