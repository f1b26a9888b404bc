package models

import "time"

// User merepresentasikan tabel 'users' di database (akun admin site).
type User struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"` // json:"-" biar hash TIDAK pernah ikut ke response
	CreatedAt    time.Time `json:"created_at"`
}

// Struct untuk menangkap Input Register
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Struct untuk menangkap Input Login
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
