// Package models contains the persistence-level data structures shared by
// repositories and services.
package models

import "time"

// User is an identity record. PasswordHash is the argon2id PHC string
// produced by the password package; the plaintext never reaches this struct.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
