package models

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies one participant type an identity can hold. An identity may
// hold several roles at once; per-role password hashes are stored separately.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RolePreschool Role = "PRESCHOOL"
	RoleTeacher   Role = "TEACHER"
	RoleParent    Role = "PARENT"
	RoleFather    Role = "FATHER"
	RoleMother    Role = "MOTHER"
	RoleDoctor    Role = "DOCTOR"
	RoleClinic    Role = "CLINIC"
	RolePrincipal Role = "PRINCIPAL"
)

var knownRoles = map[Role]struct{}{
	RoleAdmin:     {},
	RolePreschool: {},
	RoleTeacher:   {},
	RoleParent:    {},
	RoleFather:    {},
	RoleMother:    {},
	RoleDoctor:    {},
	RoleClinic:    {},
	RolePrincipal: {},
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	_, ok := knownRoles[r]
	return ok
}

// StorageRoles expands the queried role into the role tags actually stored.
// PARENT is a query alias matching identities holding MOTHER or FATHER; it is
// never stored itself.
func (r Role) StorageRoles() []Role {
	if r == RoleParent {
		return []Role{RoleMother, RoleFather}
	}
	return []Role{r}
}

// User represents an identity keyed by mobile number
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	MobileNo       string     `json:"mobile_no" db:"mobile_no"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       string     `json:"last_name" db:"last_name"`
	Email          string     `json:"email,omitempty" db:"email"`
	IsActive       bool       `json:"is_active" db:"is_active"`
	RegisteredBy   *Role      `json:"registered_by,omitempty" db:"registered_by"`
	RegisteredByID *uuid.UUID `json:"registered_by_id,omitempty" db:"registered_by_id"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`

	Roles      []Role          `json:"roles" db:"-"`
	Preschools []PreschoolLink `json:"preschools,omitempty" db:"-"`
}

// HasRole reports whether the user holds the given stored role
func (u *User) HasRole(role Role) bool {
	for _, want := range role.StorageRoles() {
		for _, r := range u.Roles {
			if r == want {
				return true
			}
		}
	}
	return false
}

// PreschoolLink ties a teacher or parent identity to a preschool identity
type PreschoolLink struct {
	PreschoolID   uuid.UUID `json:"preschool_id" db:"preschool_id"`
	PreschoolName string    `json:"preschool_name" db:"preschool_name"`
}

// CreateUserInput is the payload for registering a new platform user
type CreateUserInput struct {
	MobileNo  string       `json:"mobile_no" validate:"required"`
	FirstName string       `json:"first_name" validate:"required"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Roles     []Role       `json:"roles" validate:"required"`
	CreatedBy string       `json:"created_by,omitempty"` // operator user id, if registered on someone's behalf
	Children  []ChildInput `json:"children,omitempty"`
}

// CreateTeacherInput is the payload for registering a teacher under a preschool
type CreateTeacherInput struct {
	PreschoolID string `json:"preschool_id" validate:"required"`
	MobileNo    string `json:"mobile_no" validate:"required"`
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date,omitempty"`
}

// UpdateProfileInput carries mutable profile fields
type UpdateProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}
