package response

import (
	"event-booking/internal/data/entity"
)

type UserResponse struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

type SignInResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}
