package model

import "time"

type User struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      *string   `json:"email" db:"email"`
	Role       *string   `json:"role" db:"role"`
	Department *string   `json:"department" db:"department"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
