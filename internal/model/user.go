package model

import "time"

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	LearnedLang  string    `json:"learned_language"`
	NativeLang   string    `json:"native_language"`
	CreatedAt    time.Time `json:"created_at"`
}
