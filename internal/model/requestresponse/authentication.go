package requestresponse

// RegisterRequest : тело запроса на регистрацию
type RegisterRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Username string `json:"username" example:"alice"`
	FullName string `json:"full_name,omitempty" example:"Alice Liddell"`
	Password string `json:"password" example:"CorrectPass1!"`
}

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"CorrectPass1!"`
}

// TokenResponse : пара токенов после login/refresh
type TokenResponse struct {
	AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"6f2c1f9e-9f6d-4f3a-a1df-6f1f9f1a2b3c"`
	ExpiresIn    int64  `json:"expires_in" example:"1800"`
}

// RefreshTokenRequest : запрос на обновление пары токенов
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"6f2c1f9e-9f6d-4f3a-a1df-6f1f9f1a2b3c"`
}

// LogoutRequest : запрос на завершение сессии.
// Access токен берется из заголовка Authorization,
// refresh токен (если есть) отзывается дополнительно.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token,omitempty" example:"6f2c1f9e-9f6d-4f3a-a1df-6f1f9f1a2b3c"`
}

// ChangePasswordRequest : запрос на смену пароля
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" example:"CorrectPass1!"`
	NewPassword string `json:"new_password" example:"EvenBetter2@"`
}

// MessageResponse : универсальный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message" example:"Successfully logged out"`
}

// ErrorResponse : тело ошибки
type ErrorResponse struct {
	Detail string `json:"detail" example:"Invalid credentials"`
}
