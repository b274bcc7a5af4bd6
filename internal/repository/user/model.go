package user

import "time"

type UserDB struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Tel          *string
	Image        *string
	Role         string
	CreatedAt    time.Time
}
