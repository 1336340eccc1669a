package users

import "userpay-app/internal/domain/users"

// UserDTO is the public shape of an account. The credential never leaves
// the server.
type UserDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateUserRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{ID: u.ID, Name: u.Name, Email: u.Email}
}
