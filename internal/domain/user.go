package domain

import "time"

// User Model
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`             // Primary key
	Email          string    `gorm:"unique;not null" json:"email"`     // Unique email, used as login identity
	HashedPassword string    `gorm:"not null" json:"-"`                // Hashed password, never the plaintext
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"` // Timestamp of registration, set once
}
