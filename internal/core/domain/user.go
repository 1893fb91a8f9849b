package domain

import "time"

// Role names. The set is closed and seeded once by migrations.
const (
	RoleAdmin    = "admin"
	RoleAgent    = "agent"
	RoleCustomer = "customer"
	RoleGuest    = "guest"
)

// AllRoles lists every seeded role name.
var AllRoles = []string{RoleAdmin, RoleAgent, RoleCustomer, RoleGuest}

// Role is a named permission group.
type Role struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// User models an account in the credential store.
type User struct {
	ID           int64      `json:"id"`
	FirstName    string     `json:"firstName,omitempty"`
	LastName     string     `json:"lastName,omitempty"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Roles        []Role     `json:"roles"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty"`
}

// RoleNames returns the names of the roles held by u.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether u holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Principal is the identity resolved for a single request.
type Principal struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// NewPrincipal derives a Principal from a loaded user.
func NewPrincipal(u *User) *Principal {
	return &Principal{ID: u.ID, Email: u.Email, Roles: u.RoleNames()}
}

// HasRole reports whether the principal holds the named role.
func (p *Principal) HasRole(name string) bool {
	for _, r := range p.Roles {
		if r == name {
			return true
		}
	}
	return false
}

// TokenPayload is the data embedded in an access token.
type TokenPayload struct {
	UserID int64
	Email  string
}
