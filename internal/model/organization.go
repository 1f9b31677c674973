package model

import "time"

// MemberStatus is the lifecycle state of an organization membership.
type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusInvited   MemberStatus = "INVITED"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
)

// Organization is a tenant of the dashboard.
type Organization struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address,omitempty"`
	Description string    `json:"description,omitempty"`
	Members     []Member  `json:"members"`
	Roles       []Role    `json:"roles"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Member links a user to an organization through a role.
type Member struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	RoleID    string       `json:"roleId"`
	Status    MemberStatus `json:"status"`
	User      *User        `json:"user,omitempty"`
	Role      *Role        `json:"role,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// IsActive reports whether the membership grants any access.
func (m Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

// User is the public profile attached to a membership.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Role is a named, flat set of permission names.
type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Permissions []string `json:"permissions"`
}

// HasPermission reports whether perm is in the role's permission list.
func (r Role) HasPermission(perm string) bool {
	for _, p := range r.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// Invitation is a pending membership sent to an email address.
type Invitation struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	RoleID    string    `json:"roleId"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FindMember returns the membership of userID, if any.
func (o Organization) FindMember(userID string) (Member, bool) {
	for _, m := range o.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}

// FindRole returns the role with the given id, if any.
func (o Organization) FindRole(id string) (Role, bool) {
	for _, r := range o.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return Role{}, false
}
