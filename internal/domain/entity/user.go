package entity

import (
	"time"
)

// User represents a registered user in the system
type User struct {
	ID               string           `bson:"_id,omitempty" json:"id"`
	Username         string           `bson:"username" json:"username"`
	Email            string           `bson:"email" json:"email"`
	PasswordHash     string           `bson:"password_hash" json:"-"`
	Role             UserRole         `bson:"role" json:"role"`
	MembershipStatus MembershipStatus `bson:"membership_status" json:"membership_status"`
	CreatedAt        time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `bson:"updated_at" json:"updated_at"`
	FirstName        *string          `bson:"firstname,omitempty" json:"firstname,omitempty"`
	LastName         *string          `bson:"lastname,omitempty" json:"lastname,omitempty"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin  UserRole = "admin"
	UserRoleMember UserRole = "member"
	UserRoleUser   UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// MembershipStatus tracks where a user is in the admin-approval workflow.
// Role promotion from user to member happens only through an admin approving
// a pending membership, never through self-service.
type MembershipStatus string

const (
	MembershipPending  MembershipStatus = "pending"
	MembershipApproved MembershipStatus = "approved"
	MembershipRejected MembershipStatus = "rejected"
	MembershipExpired  MembershipStatus = "expired"
)

// Identity is the authenticated caller as seen by the authorization layer.
// It is resolved once by the auth middleware and passed explicitly into
// usecases instead of being read back out of the request object.
type Identity struct {
	ID               string
	Role             UserRole
	MembershipStatus MembershipStatus
}
