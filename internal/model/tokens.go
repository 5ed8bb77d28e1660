package model

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (для получения новой пары)
	// example: 6f2c1f9e-9f6d-4f3a-a1df-6f1f9f1a2b3c
	RefreshToken string `json:"refresh_token"`

	// Время жизни access токена в секундах
	// example: 1800
	ExpiresIn int64 `json:"expires_in"`
}

// BlacklistEntry — запись черного списка access-токенов.
// Хранится в Redis по ключу blacklist:token:{jti} с TTL до момента
// естественного истечения токена.
type BlacklistEntry struct {
	Jti       string  `json:"jti"`
	UserID    string  `json:"user_id"`
	ExpiresAt float64 `json:"expires_at"` // unix timestamp
}

// RefreshTokenRecord — запись refresh-токена в Redis по ключу refresh:{token}.
// Токен либо присутствует и активен, либо отсутствует; других состояний нет.
type RefreshTokenRecord struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

// RateLimitResult — решение лимитера по одному запросу.
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	Reset     int64 // unix секунды, когда окно закончится
}
