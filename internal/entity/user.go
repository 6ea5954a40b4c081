package entity

import (
	"github.com/gofrs/uuid/v5"
)

// User is the principal performing an operation.
type User struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Role      UserRole
}

type UserRole struct {
	ID          uuid.UUID    `json:"role_id"`
	Name        string       `json:"role_name"`
	Permissions []Permission `json:"permissions"`
}

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type Permission struct {
	ID   uuid.UUID `json:"permission_id"`
	Name string    `json:"permission_name"`
}

func (u User) IsAdmin() bool {
	return u.Role.Name == RoleAdmin
}

func (u User) String() string {
	return u.ID.String()
}
