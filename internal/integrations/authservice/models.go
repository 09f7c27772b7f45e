package authservice

// Identity данные владельца бизнеса из сервиса аутентификации
// Токен выпускается и проверяется внешним сервисом, здесь только результат
type Identity struct {
	BusinessID   int64  `json:"businessId"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
	Slug         string `json:"slug"`
}

// ErrorResponse модель ошибки от сервиса аутентификации
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
