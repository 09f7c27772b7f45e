package domain

import "time"

// Business represents a tenant account that owns services,
// working hours and appointments
type Business struct {
	ID           int64
	Slug         string // URL-safe идентификатор публичной страницы бронирования
	BusinessName string
	Email        string
	ContactInfo  *string
	Address      *string
	CreatedAt    time.Time
}

// Service represents a bookable offering of a business
type Service struct {
	ID         int64
	BusinessID int64
	Name       string
	Price      float64
	Duration   int // Длительность в минутах, всегда > 0
	CreatedAt  time.Time
}
