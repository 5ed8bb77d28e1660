package requestresponse

import "time"

// UserResponse : публичное представление пользователя
type UserResponse struct {
	UUID       string    `json:"uuid" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Email      string    `json:"email" example:"alice@example.com"`
	Username   string    `json:"username" example:"alice"`
	FullName   string    `json:"full_name,omitempty" example:"Alice Liddell"`
	Role       string    `json:"role" example:"user"`
	IsActive   bool      `json:"is_active" example:"true"`
	IsVerified bool      `json:"is_verified" example:"false"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserUpdateRequest : изменяемые поля пользователя
type UserUpdateRequest struct {
	Email    *string `json:"email,omitempty" example:"alice@example.com"`
	Username *string `json:"username,omitempty" example:"alice"`
	FullName *string `json:"full_name,omitempty" example:"Alice Liddell"`
}
