package entities

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	Tel       string
	Image     string
	Role      UserRoleType
	CreatedAt time.Time
}

type UserRoleType string

const (
	RoleUser       UserRoleType = "user"
	RoleAdmin      UserRoleType = "admin"
	RoleSuperAdmin UserRoleType = "super_admin"
	RoleDelivery   UserRoleType = "delivery"
	RoleOther      UserRoleType = "other"
)

func (r UserRoleType) String() string {
	return string(r)
}

// Session связывает выданный токен с пользователем.
// Живет в Redis до logout или истечения TTL.
type Session struct {
	Token     string
	User      User
	IssuedAt  time.Time
	ExpiresAt time.Time
}
