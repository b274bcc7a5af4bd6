package user

import (
	"waterboys/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	userEntity := &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      entities.UserRoleType(u.Role),
		CreatedAt: u.CreatedAt,
	}
	if u.Tel != nil {
		userEntity.Tel = *u.Tel
	}
	if u.Image != nil {
		userEntity.Image = *u.Image
	}
	return userEntity
}
